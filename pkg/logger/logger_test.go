package logger

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestInit_SingletonAndGet(t *testing.T) {
	Reset()
	var buf bytes.Buffer
	Init(Options{Level: "info", Output: &buf})

	l := Get()
	l.Info().Msg("first message")
	if !strings.Contains(buf.String(), "first message") {
		t.Fatalf("log output missing: %q", buf.String())
	}

	// A second Init must have no effect: output stays bound to buf.
	Init(Options{Level: "error", Output: io.Discard})
	l = Get()
	l.Info().Msg("second message")
	if !strings.Contains(buf.String(), "second message") {
		t.Fatalf("second Init rebound the singleton: %q", buf.String())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic from Get before Init")
		}
	}()
	_ = Get()
}

func TestReset_AllowsReinit(t *testing.T) {
	Reset()
	Init(Options{Level: "info", Output: io.Discard})

	Reset()
	var buf bytes.Buffer
	Init(Options{Level: "debug", Output: &buf})

	l := Get()
	l.Debug().Msg("after reset")
	if !strings.Contains(buf.String(), "after reset") {
		t.Fatalf("logger not rebuilt after Reset: %q", buf.String())
	}
}
