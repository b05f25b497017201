package pretty

import (
	"bytes"
	"testing"
)

func TestIsColorEnabled_ExplicitModes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if !IsColorEnabled("always", &buf) {
		t.Error("always should enable color regardless of writer")
	}
	if IsColorEnabled("never", &buf) {
		t.Error("never should disable color regardless of writer")
	}
}

func TestIsColorEnabled_AutoNonTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if IsColorEnabled("auto", &buf) {
		t.Error("auto should disable color for a non-terminal writer")
	}
}

func TestIsColorEnabled_AutoRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	if IsColorEnabled("auto", &buf) {
		t.Error("auto should disable color when NO_COLOR is set")
	}
}

func TestNewStyles(t *testing.T) {
	t.Parallel()

	colored := NewStyles(true)
	plain := NewStyles(false)

	if colored == nil || plain == nil {
		t.Fatal("NewStyles returned nil")
	}

	// No-color styles must render text unchanged.
	if got := plain.RootHeader.Render("Title"); got != "Title" {
		t.Errorf("no-color render = %q, want unchanged text", got)
	}
	if got := plain.Dim.Render("(none)"); got != "(none)" {
		t.Errorf("no-color render = %q, want unchanged text", got)
	}
}
