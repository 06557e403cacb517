package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseStage,
				Kind:   KindStagingIO,
				Path:   "/working/report.docx",
				Detail: "write input file",
			},
			contains: []string{"[stage]", "staging_io", "/working/report.docx", "write input file"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseInvoke,
				Kind:  KindConversionFailed,
			},
			contains: []string{"[invoke]", "conversion_failed"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindEngineLoad,
				Detail: "fetch module",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "engine_load", "fetch module", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("error message %q missing %q", msg, want)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	a := UnsupportedFormat("xyz")
	b := UnsupportedFormat("abc")
	if !errors.Is(a, b) {
		t.Error("errors with same phase and kind should match")
	}

	c := ConversionFailed(1)
	if errors.Is(a, c) {
		t.Error("errors with different kinds should not match")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := StagingIO("/working/params.xml", cause)
	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseCollect, KindMediaRead).
		Path("media/image1.png").
		Detail("read %s", "image1.png").
		Cause(errors.New("eof")).
		Build()

	if err.Phase != PhaseCollect || err.Kind != KindMediaRead {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Path != "media/image1.png" {
		t.Errorf("unexpected path: %s", err.Path)
	}
	if err.Detail != "read image1.png" {
		t.Errorf("unexpected detail: %s", err.Detail)
	}
	if err.Cause == nil {
		t.Error("cause not set")
	}
}

func TestUnsupportedFormat_NamesExtension(t *testing.T) {
	err := UnsupportedFormat("xyz")
	if !strings.Contains(err.Error(), `"xyz"`) {
		t.Errorf("message should name the extension: %s", err.Error())
	}
}

func TestStatusCode(t *testing.T) {
	err := ConversionFailed(1)
	code, ok := StatusCode(err)
	if !ok || code != 1 {
		t.Errorf("expected status 1, got %d (ok=%v)", code, ok)
	}

	wrapped := fmt.Errorf("convert: %w", ConversionFailed(7))
	code, ok = StatusCode(wrapped)
	if !ok || code != 7 {
		t.Errorf("expected status 7 through wrap, got %d (ok=%v)", code, ok)
	}

	if _, ok := StatusCode(NotReady()); ok {
		t.Error("non-conversion error should not carry a status code")
	}
}

func TestIsCancelled(t *testing.T) {
	if !IsCancelled(ErrSaveCancelled) {
		t.Error("sentinel should be cancelled")
	}
	if !IsCancelled(fmt.Errorf("deliver: %w", ErrSaveCancelled)) {
		t.Error("wrapped sentinel should be cancelled")
	}
	if IsCancelled(ConversionFailed(1)) {
		t.Error("conversion failure is not a cancel")
	}
	if IsCancelled(nil) {
		t.Error("nil is not a cancel")
	}
}

func TestInitTimeout_MentionsLimit(t *testing.T) {
	err := InitTimeout(300 * time.Second)
	if !strings.Contains(err.Error(), "5m0s") {
		t.Errorf("message should mention the limit: %s", err.Error())
	}
}
