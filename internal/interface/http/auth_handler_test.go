package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/taskify/taskify-api/pkg/validation"
)

// Binding rejects structurally oversized fields before any service runs, so
// the handler under test needs no wired dependencies.
func signupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	r := gin.New()
	h := &AuthHandler{}
	r.POST("/signup", h.Signup)
	return r
}

func TestSignupRejectsOversizedPassword(t *testing.T) {
	r := signupRouter()

	body := `{"email":"jane@example.com","password":"` + strings.Repeat("a", 73) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Error   map[string]string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Success {
		t.Error("success should be false")
	}
	if resp.Message != "invalid payload" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Error["password"] != "must be at most 72 characters long" {
		t.Errorf("error details = %v, want a password field error", resp.Error)
	}
}

func TestSignupRejectsMalformedJSON(t *testing.T) {
	r := signupRouter()

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"email":}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp struct {
		Error map[string]string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error["payload"] != "invalid json" {
		t.Errorf("error details = %v, want invalid json", resp.Error)
	}
}
