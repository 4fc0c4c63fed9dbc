package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type accountForm struct {
	Email    string `json:"email" binding:"omitempty,max=320"`
	Password string `json:"password" binding:"omitempty,max=72"`
}

func TestToDetailsFieldErrorsUseJSONNames(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(accountForm{
		Email:    "ok@example.com",
		Password: strings.Repeat("a", 73),
	})
	if err == nil {
		t.Fatal("expected a validation error for an oversized password")
	}

	details := ToDetails(err)
	if len(details) != 1 {
		t.Fatalf("details = %v, want one field", details)
	}
	msg, found := details["password"]
	if !found {
		t.Fatalf("details keyed by %v, want json tag name \"password\"", details)
	}
	if msg != "must be at most 72 characters long" {
		t.Errorf("message = %q", msg)
	}
}

func TestToDetailsValidStructPasses(t *testing.T) {
	Init()

	err := binding.Validator.ValidateStruct(accountForm{
		Email:    "ok@example.com",
		Password: strings.Repeat("a", 72),
	})
	if err != nil {
		t.Fatalf("payload at the limit should bind: %v", err)
	}
}

func TestToDetailsMalformedJSON(t *testing.T) {
	var form accountForm

	details := ToDetails(json.Unmarshal([]byte("{"), &form))
	if details["payload"] != "invalid json" {
		t.Errorf("details = %v, want invalid json", details)
	}

	details = ToDetails(json.Unmarshal([]byte(`{"email": 7}`), &form))
	if details["payload"] != "invalid json" {
		t.Errorf("details = %v, want invalid json for a type mismatch", details)
	}
}

func TestToDetailsNil(t *testing.T) {
	if d := ToDetails(nil); d != nil {
		t.Errorf("ToDetails(nil) = %v, want nil", d)
	}
}
