package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

func TestUIErrorString(t *testing.T) {
	err := &UIError{
		Op:   "ui.Link",
		Kind: KindPool,
		Err:  ErrStaleHandle,
	}
	got := err.Error()
	want := "ui.Link [pool]: stale or invalid node handle"
	if got != want {
		t.Errorf("UIError.Error() = %q, want %q", got, want)
	}
}

func TestUIErrorUnwrap(t *testing.T) {
	err := New("ui.Link", KindPool, ErrCycle)
	if !stderrors.Is(err, ErrCycle) {
		t.Errorf("errors.Is(%v, ErrCycle) = false, want true", err)
	}
	var uiErr *UIError
	if !stderrors.As(error(err), &uiErr) || uiErr.Kind != KindPool {
		t.Errorf("errors.As did not recover *UIError with KindPool")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindPool, "pool"},
		{KindLayout, "layout"},
		{KindDraw, "draw"},
		{KindResource, "resource"},
		{KindConfig, "config"},
		{KindScene, "scene"},
		{KindPanic, "panic"},
		{KindPhase, "phase"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "resource.Load"
	if got, want := err.Error(), "panic in resource.Load: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPhaseErrorString(t *testing.T) {
	err := &PhaseError{Op: "ui.AddNode", Phase: "layout"}
	if got, want := err.Error(), "ui.AddNode called during layout phase"; got != want {
		t.Errorf("PhaseError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *UIError
	handler := &testHandler{
		onError: func(err *UIError) {
			captured = err
		},
	}

	defer SetHandler(SetHandler(handler))

	Report(&UIError{Op: "test.op", Kind: KindConfig, Err: ErrStaleHandle})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	defer SetHandler(SetHandler(handler))

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverCallback(t *testing.T) {
	defer SetHandler(SetHandler(&testHandler{}))

	var got any
	func() {
		defer Recover("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing.tRunner") {
		t.Errorf("stack trace should start at the test's caller, got: %s", stack)
	}
	if strings.Contains(stack, "runtime.") {
		t.Errorf("stack trace should omit runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	custom := &testHandler{}
	old := SetHandler(custom)
	defer SetHandler(old)

	if prev := SetHandler(nil); prev != custom {
		t.Errorf("SetHandler returned %T, want the previously installed handler", prev)
	}
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should install LogHandler, got %T", Handler())
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&UIError{Op: "config.Resolve", Kind: KindConfig, Err: ErrCycle})
	if got, want := buf.String(), "[uicore error] config.Resolve: link would create a cycle\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	buf.Reset()
	h.Verbose = true
	h.HandleError(&UIError{Op: "config.Resolve", Kind: KindConfig, Err: ErrCycle, StackTrace: "frame"})
	if !strings.Contains(buf.String(), "[config]") || !strings.Contains(buf.String(), "Stack trace:") {
		t.Errorf("verbose output missing kind or stack: %q", buf.String())
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "resource.Load", Value: "boom"})
	if !strings.HasPrefix(buf.String(), "[uicore panic] resource.Load: boom") {
		t.Errorf("panic output = %q", buf.String())
	}
}

type testHandler struct {
	onError func(*UIError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *UIError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
