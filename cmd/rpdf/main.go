// Command rpdf renders an HTML file into a PDF file, a thin CLI wrapper
// over pkg/api (input/output path, verbose/debug toggle).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcpeakdev/rpdf/pkg/api"
)

func main() {
	var (
		inputFile  string
		outputFile string
		verbose    bool
		landscape  bool
		title      string
	)

	flag.StringVar(&inputFile, "input", "", "Input HTML file path")
	flag.StringVar(&outputFile, "output", "", "Output PDF file path")
	flag.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&landscape, "landscape", false, "Render pages in landscape orientation")
	flag.StringVar(&title, "title", "", "PDF document title")
	flag.Parse()

	if inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -input is required")
		flag.Usage()
		os.Exit(1)
	}
	if outputFile == "" {
		ext := filepath.Ext(inputFile)
		outputFile = inputFile[:len(inputFile)-len(ext)] + ".pdf"
	}

	htmlBytes, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", inputFile, err)
		os.Exit(1)
	}

	cfg := api.Config{Title: title, Debug: verbose}
	if landscape {
		cfg.Orientation = api.Landscape
	}

	handle, err := api.Generate(htmlBytes, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", inputFile, err)
		os.Exit(1)
	}
	defer api.ReleaseBuffer(handle)

	if err := os.WriteFile(outputFile, handle.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outputFile, err)
		os.Exit(1)
	}

	if verbose {
		fmt.Printf("Successfully converted %s to %s\n", inputFile, outputFile)
	}
}
