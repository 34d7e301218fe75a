package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/openhire/jobboard/internal/apperrors"
)

func TestTypeOf(t *testing.T) {
	cases := []struct {
		err  error
		want apperrors.ErrorType
	}{
		{apperrors.NotFound("job not found", nil), apperrors.ErrTypeNotFound},
		{apperrors.InvalidInput("bad filter", nil), apperrors.ErrTypeInvalidInput},
		{apperrors.Unauthorized("missing token", nil), apperrors.ErrTypeUnauthorized},
		{apperrors.Forbidden("not your posting", nil), apperrors.ErrTypeForbidden},
		{apperrors.Internal("query failed", errors.New("boom")), apperrors.ErrTypeInternal},
		{errors.New("plain error"), apperrors.ErrTypeInternal},
	}
	for _, c := range cases {
		if got := apperrors.TypeOf(c.err); got != c.want {
			t.Errorf("TypeOf(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestTypeOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("save job: %w", apperrors.NotFound("job not found", nil))
	if got := apperrors.TypeOf(err); got != apperrors.ErrTypeNotFound {
		t.Errorf("TypeOf(wrapped) = %q, want %q", got, apperrors.ErrTypeNotFound)
	}
}

func TestMessageOf(t *testing.T) {
	if got := apperrors.MessageOf(apperrors.NotFound("job not found", nil)); got != "job not found" {
		t.Errorf("MessageOf(not found) = %q, want %q", got, "job not found")
	}

	internal := apperrors.Internal("select jobs failed", errors.New("pq: relation missing"))
	if got := apperrors.MessageOf(internal); got != "internal server error" {
		t.Errorf("MessageOf(internal) = %q, internal detail must not leak", got)
	}

	if got := apperrors.MessageOf(errors.New("raw")); got != "internal server error" {
		t.Errorf("MessageOf(plain error) = %q, want generic message", got)
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("no rows")
	err := apperrors.Internal("lookup failed", cause)
	if !errors.Is(err, cause) {
		t.Error("DomainError should unwrap to its cause")
	}
}
