package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wanderlist-dev/wanderlist/pkg/api"
)

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		err  *api.APIError
		want int
	}{
		{api.NewValidationError("email"), http.StatusBadRequest},
		{api.NewInvalidCredentialsError(), http.StatusUnauthorized},
		{api.NewUnauthenticatedError(), http.StatusUnauthorized},
		{api.NewAccessDeniedError("access denied"), http.StatusForbidden},
		{api.NewNotFoundError("trip not found"), http.StatusNotFound},
		{api.NewDuplicateIdentityError(), http.StatusConflict},
		{api.NewServerError("oops"), http.StatusInternalServerError},
		{&api.APIError{Type: "something_else"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatusFromError(tt.err); got != tt.want {
			t.Errorf("HTTPStatusFromError(%s) = %d, want %d", tt.err.Type, got, tt.want)
		}
	}
}

func TestWriteAPIErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAPIError(rec, api.NewValidationError("username", "password"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error.Type != api.ErrorTypeValidation {
		t.Errorf("error.type = %q, want validation_error", body.Error.Type)
	}
	if body.Error.Message != "all fields are required" {
		t.Errorf("error.message = %q", body.Error.Message)
	}
	if len(body.Error.Fields) != 2 || body.Error.Fields[0] != "username" {
		t.Errorf("error.fields = %v", body.Error.Fields)
	}
}

func TestWriteAPIErrorCoercesPlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteAPIError(rec, errors.New("pool exhausted"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	var body api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Error.Type != api.ErrorTypeServerError {
		t.Errorf("error.type = %q, want server_error", body.Error.Type)
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, api.MessageResponse{Message: "deleted successfully"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	var body api.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Message != "deleted successfully" {
		t.Errorf("message = %q", body.Message)
	}
}
