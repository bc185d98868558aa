package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{Validation, http.StatusBadRequest},
		{Unauthorized, http.StatusUnauthorized},
		{AccessDenied, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{Upstream, http.StatusInternalServerError},
		{Unexpected, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := Status(New(tc.kind, "x")); got != tc.want {
			t.Errorf("Status(kind %d) = %d, want %d", tc.kind, got, tc.want)
		}
	}

	if got := Status(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("plain error status = %d, want 500", got)
	}
}

func TestWrappedErrorSurvivesFmtWrapping(t *testing.T) {
	inner := Wrap(NotFound, "conversation not found", errors.New("map miss"))
	outer := fmt.Errorf("handler: %w", inner)

	if got := Status(outer); got != http.StatusNotFound {
		t.Errorf("status = %d, want 404", got)
	}
	if got := Message(outer); got != "conversation not found" {
		t.Errorf("message = %q", got)
	}
}

func TestMessageHidesCause(t *testing.T) {
	err := Wrap(Upstream, "failed to process chat request", errors.New("connection refused"))
	if got := Message(err); got != "failed to process chat request" {
		t.Errorf("message = %q, leaks cause", got)
	}
	if err.Error() != "failed to process chat request: connection refused" {
		t.Errorf("Error() = %q", err.Error())
	}
}
