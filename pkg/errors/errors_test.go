package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestToolkitErrorString(t *testing.T) {
	err := Config("widgets.RadioGroup.Label", ErrOptionOutOfRange)
	want := "widgets.RadioGroup.Label [config]: option number out of range"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestToolkitErrorWithWidget(t *testing.T) {
	err := &ToolkitError{
		Op:     "widgets.NewRadioGroup",
		Kind:   KindConfig,
		Widget: "radio-1",
		Err:    ErrTooFewOptions,
	}
	if got := err.Error(); !strings.Contains(got, "widget=radio-1") {
		t.Errorf("error string %q should contain widget id", got)
	}
}

func TestToolkitErrorUnwrap(t *testing.T) {
	err := Config("op", fmt.Errorf("label 7 of 5: %w", ErrOptionOutOfRange))
	if !Is(err, ErrOptionOutOfRange) {
		t.Error("expected errors.Is to see the sentinel through the wrap chain")
	}
	var te *ToolkitError
	if !As(error(err), &te) {
		t.Fatal("expected errors.As to find the ToolkitError")
	}
	if te.Kind != KindConfig {
		t.Errorf("Kind = %v, want %v", te.Kind, KindConfig)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindTheme, "theme"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "demo.Update"
	if got, want := err.Error(), "panic in demo.Update: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	rec := &Recorder{}
	prev := SetHandler(rec)
	defer SetHandler(prev)

	Report(Config("test.op", ErrTooFewOptions))

	got := rec.Last()
	if got == nil {
		t.Fatal("expected error to be recorded")
	}
	if got.Op != "test.op" {
		t.Errorf("Op = %q, want %q", got.Op, "test.op")
	}
	if got.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if got.StackTrace == "" {
		t.Error("expected StackTrace to be captured")
	}
}

func TestReportNil(t *testing.T) {
	rec := &Recorder{}
	prev := SetHandler(rec)
	defer SetHandler(prev)

	Report(nil)
	ReportPanic(nil)
	if len(rec.Errors) != 0 || len(rec.Panics) != 0 {
		t.Error("nil reports should be dropped")
	}
}

func TestRecover(t *testing.T) {
	rec := &Recorder{}
	prev := SetHandler(rec)
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if len(rec.Panics) != 1 {
		t.Fatalf("recorded %d panics, want 1", len(rec.Panics))
	}
	if rec.Panics[0].Op != "test.recover" {
		t.Errorf("Op = %q, want %q", rec.Panics[0].Op, "test.recover")
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(Config("widgets.RadioGroup.Label", ErrOptionOutOfRange))
	want := "[widgetkit error] widgets.RadioGroup.Label: option number out of range\n"
	if got := buf.String(); got != want {
		t.Errorf("log line = %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(&ToolkitError{Op: "op", Kind: KindConfig, Widget: "w", Err: ErrTooFewOptions, StackTrace: "frame"})
	if got := buf.String(); !strings.Contains(got, "[config] widget=w") || !strings.Contains(got, "Stack trace:\nframe") {
		t.Errorf("verbose log = %q", got)
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "x", Value: 1})
	if got := buf.String(); !strings.HasPrefix(got, "[widgetkit panic] x: 1") {
		t.Errorf("panic log = %q", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}
