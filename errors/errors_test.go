package errors

import (
	"errors"
	"strings"
	"testing"
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
				Phase:  PhaseEncode,
				Kind:   KindDepthLimit,
				Path:   []string{"info", "files", "[3]"},
				Detail: "nesting depth 5 exceeds ceiling 4",
			},
			contains: []string{"[encode]", "depth_limit", "info.files.[3]", "nesting depth 5 exceeds ceiling 4"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseFinalize,
				Kind:  KindInvalidState,
			},
			contains: []string{"[finalize]", "invalid_state"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindWriteFailure,
				Detail: "output buffer write failed",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[encode]", "write_failure", "output buffer write failed", "caused by: underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	depthErr := DepthLimit([]string{"a", "b"}, 3, 2)

	if !errors.Is(depthErr, &Error{Phase: PhaseEncode, Kind: KindDepthLimit}) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(depthErr, &Error{Phase: PhaseFinalize, Kind: KindDepthLimit}) {
		t.Error("expected no match on different phase")
	}
	if errors.Is(depthErr, &Error{Phase: PhaseEncode, Kind: KindInvalidState}) {
		t.Error("expected no match on different kind")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := WriteFailure(cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause through Unwrap")
	}
	if got := errors.Unwrap(err); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseEncode, KindInvalidData).
		Path("announce", "[0]").
		Detail("number %s is not an integer", "1.5").
		Cause(cause).
		Build()

	if err.Phase != PhaseEncode || err.Kind != KindInvalidData {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if len(err.Path) != 2 || err.Path[0] != "announce" {
		t.Errorf("unexpected path: %v", err.Path)
	}
	if err.Detail != "number 1.5 is not an integer" {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
	if err.Cause != cause {
		t.Errorf("unexpected cause: %v", err.Cause)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *Error
		wantPhase Phase
		wantKind  Kind
	}{
		{"DepthLimit", DepthLimit(nil, 10, 5), PhaseEncode, KindDepthLimit},
		{"InvalidState", InvalidState(PhaseFinalize, "no value has been emitted"), PhaseFinalize, KindInvalidState},
		{"WriteFailure", WriteFailure(errors.New("x")), PhaseEncode, KindWriteFailure},
		{"InvalidData", InvalidData([]string{"k"}, "bad"), PhaseEncode, KindInvalidData},
		{"Wrap", Wrap(PhaseEncode, KindWriteFailure, errors.New("x"), "ctx"), PhaseEncode, KindWriteFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.wantPhase {
				t.Errorf("Phase = %s, want %s", tt.err.Phase, tt.wantPhase)
			}
			if tt.err.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", tt.err.Kind, tt.wantKind)
			}
		})
	}
}
