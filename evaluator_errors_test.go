package state

import (
	"errors"
	"testing"
)

func TestWrapEvaluationErrorCreatesMetadata(t *testing.T) {
	base := errors.New("boom")
	err := wrapEvaluationError("expr", "health && missing", "player:p1", base)

	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected EvaluationError, got %T", err)
	}
	if evalErr.Engine != "expr" {
		t.Fatalf("expected engine expr, got %q", evalErr.Engine)
	}
	if evalErr.Expr != "health && missing" {
		t.Fatalf("expected expression metadata, got %q", evalErr.Expr)
	}
	if evalErr.Holder != "player:p1" {
		t.Fatalf("expected holder metadata, got %q", evalErr.Holder)
	}
	if !errors.Is(evalErr.Err, base) {
		t.Fatalf("wrapped error should unwrap to base error")
	}
}

func TestWrapEvaluationErrorAugmentsExisting(t *testing.T) {
	base := errors.New("compile failure")
	existing := &EvaluationError{
		Engine: "expr",
		Err:    base,
	}

	err := wrapEvaluationError("cel", "rule", "team:red", existing)
	if !errors.Is(err, base) {
		t.Fatalf("expected base error to unwrap")
	}
	if existing.Engine != "expr" {
		t.Fatalf("existing engine should not be overwritten, got %q", existing.Engine)
	}
	if existing.Expr != "rule" {
		t.Fatalf("expression should be filled, got %q", existing.Expr)
	}
	if existing.Holder != "team:red" {
		t.Fatalf("holder should be filled, got %q", existing.Holder)
	}
}

func TestWrapEvaluatorErrorPassesPrefixed(t *testing.T) {
	prefixed := errors.New("state: function \"missing\" not registered")
	if got := wrapEvaluatorError("expr", prefixed); got != prefixed {
		t.Fatalf("expected prefixed error returned unchanged, got %v", got)
	}

	plain := errors.New("boom")
	wrapped := wrapEvaluatorError("cel", plain)
	if !errors.Is(wrapped, plain) {
		t.Fatalf("expected wrapped error to unwrap to original")
	}
	if wrapped == plain {
		t.Fatalf("expected plain error to gain engine context")
	}
}
