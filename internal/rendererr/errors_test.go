package rendererr_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/mcpeakdev/rpdf/internal/rendererr"
)

func TestNewRecordsLastError(t *testing.T) {
	rendererr.ClearLastError()
	err := rendererr.New(rendererr.ImageError, "bad image: %s", "x.svg")

	if got, want := err.Kind, rendererr.ImageError; got != want {
		t.Errorf("Kind = %v, want %v", got, want)
	}
	if got := rendererr.LastError(); got != err.Error() {
		t.Errorf("LastError() = %q, want %q", got, err.Error())
	}
}

func TestClearLastError(t *testing.T) {
	rendererr.New(rendererr.EmptyInput, "empty")
	rendererr.ClearLastError()
	if got := rendererr.LastError(); got != "" {
		t.Errorf("LastError() after clear = %q, want empty", got)
	}
}

func TestErrorIsMatchesKind(t *testing.T) {
	err := rendererr.New(rendererr.LayoutError, "overflow")
	if !errors.Is(err, rendererr.LayoutError) {
		t.Error("errors.Is(err, LayoutError) = false, want true")
	}
	if errors.Is(err, rendererr.ImageError) {
		t.Error("errors.Is(err, ImageError) = true, want false")
	}
}

func TestLastErrorIsPerGoroutine(t *testing.T) {
	rendererr.ClearLastError()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		rendererr.New(rendererr.ParseError, "other goroutine failure")
	}()
	wg.Wait()

	if got := rendererr.LastError(); got != "" {
		t.Errorf("LastError() on unrelated goroutine = %q, want empty", got)
	}
}
