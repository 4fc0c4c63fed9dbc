package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantMsg    string
		wantCode   string
		wantStatus int
	}{
		{
			name:       "validation",
			err:        NewValidationError("Task title is required"),
			wantMsg:    "Task title is required",
			wantCode:   CodeValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "authentication",
			err:        NewAuthenticationError("Invalid email or password"),
			wantMsg:    "Invalid email or password",
			wantCode:   CodeAuthentication,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "authentication default message",
			err:        NewAuthenticationError(""),
			wantMsg:    "Authentication failed",
			wantCode:   CodeAuthentication,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not found builds message from resource",
			err:        NewNotFoundError("Task"),
			wantMsg:    "Task not found",
			wantCode:   CodeNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.wantCode)
			}
			if tt.err.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", tt.err.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestFromError(t *testing.T) {
	ae, ok := FromError(NewValidationError("bad"))
	if !ok || ae.Code != CodeValidation {
		t.Fatalf("FromError failed to extract AppError: ok=%v ae=%v", ok, ae)
	}

	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("Task"))
	ae, ok = FromError(wrapped)
	if !ok || ae.Code != CodeNotFound {
		t.Fatalf("FromError should unwrap chains: ok=%v ae=%v", ok, ae)
	}

	if _, ok := FromError(errors.New("plain")); ok {
		t.Error("FromError should reject non-domain errors")
	}
	if _, ok := FromError(nil); ok {
		t.Error("FromError should reject nil")
	}
}

func TestKindPredicates(t *testing.T) {
	if !IsValidation(NewValidationError("x")) {
		t.Error("IsValidation failed")
	}
	if !IsAuthentication(NewAuthenticationError("x")) {
		t.Error("IsAuthentication failed")
	}
	if !IsNotFound(NewNotFoundError("Task")) {
		t.Error("IsNotFound failed")
	}
	if IsNotFound(NewValidationError("x")) {
		t.Error("kind predicates should not cross-match")
	}
}
