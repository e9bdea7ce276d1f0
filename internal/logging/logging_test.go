package logging_test

import (
	"strings"
	"testing"

	"github.com/mcpeakdev/rpdf/internal/logging"
)

func TestIgnoreAccumulatesWarnings(t *testing.T) {
	log := logging.New(false)
	if log.Warnings() != nil {
		t.Fatalf("Warnings() before any Ignore call = %v, want nil", log.Warnings())
	}

	log.Ignore("unknown tag <foo>")
	log.Ignore("unknown class bar-baz")

	warn := log.Warnings()
	if warn == nil {
		t.Fatal("Warnings() is nil after two Ignore calls")
	}
	if !strings.Contains(warn.Error(), "unknown tag <foo>") || !strings.Contains(warn.Error(), "unknown class bar-baz") {
		t.Errorf("Warnings().Error() = %q, want it to contain both ignored reasons", warn.Error())
	}
}

func TestNewDoesNotPanicInDebugOrQuietMode(t *testing.T) {
	for _, debug := range []bool{true, false} {
		log := logging.New(debug)
		log.Ignore("noise")
		log.Sync()
	}
}
