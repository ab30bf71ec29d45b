package log

import (
	"testing"
)

func TestInitDebugDisabledByDefault(t *testing.T) {
	t.Setenv("GALERIA_DEBUG", "")

	InitDebug()

	if DebugEnabled {
		t.Error("DebugEnabled should be false without GALERIA_DEBUG=1")
	}
	if DebugLog == nil {
		t.Fatal("DebugLog should be a no-op logger, not nil")
	}
	// Must not panic even when disabled.
	Debug("ignored %d", 1)
	InputTrace("ignored")
	RenderTrace("grid", "ignored")
}

func TestInitDebugEnabled(t *testing.T) {
	t.Setenv("GALERIA_DEBUG", "1")

	InitDebug()
	defer CloseDebug()

	if !DebugEnabled {
		t.Error("DebugEnabled should be true with GALERIA_DEBUG=1")
	}
	Debug("hello %s", "world")
}
