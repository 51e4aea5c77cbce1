package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindPredicates(t *testing.T) {
	if !IsNotFound(NotFound("medicine not found")) {
		t.Error("expected IsNotFound to be true")
	}
	if !IsValidation(Validation("quantity must be greater than %d", 0)) {
		t.Error("expected IsValidation to be true")
	}
	if IsNotFound(Validation("nope")) || IsValidation(NotFound("nope")) {
		t.Error("kinds must not cross-match")
	}
	if IsNotFound(errors.New("plain")) || IsValidation(errors.New("plain")) {
		t.Error("plain errors classify as internal")
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("loading cart: %w", NotFound("patient not found"))
	if !IsNotFound(err) {
		t.Error("expected kind to survive fmt.Errorf wrapping")
	}
	if HTTPStatus(err) != http.StatusNotFound {
		t.Errorf("expected 404, got %d", HTTPStatus(err))
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("x"), http.StatusNotFound},
		{Validation("x"), http.StatusBadRequest},
		{Internal(errors.New("pg down"), "query failed"), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestClientMessage_HidesInternals(t *testing.T) {
	err := Internal(errors.New("connection refused to 10.0.0.5:5432"), "query failed")
	if msg := ClientMessage(err); msg != "internal server error" {
		t.Errorf("expected generic message, got %q", msg)
	}
	if msg := ClientMessage(Validation("quantity exceeds the available quantity")); msg != "quantity exceeds the available quantity" {
		t.Errorf("expected validation message passed through, got %q", msg)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("row scan failed")
	err := Internal(cause, "load order")
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}
