package helpers

import (
	"context"
	"testing"

	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/go-chi/jwtauth/v5"
)

func TestGetCaller(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"sub": "7", "role": "Accountant", "jti": "abc"})
	if err != nil {
		t.Fatalf("encode token: %v", err)
	}
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	caller, err := GetCaller(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if caller != (models.Caller{ID: "7", Role: models.RoleAccountant}) {
		t.Errorf("unexpected caller %+v", caller)
	}
	if id := GetTokenID(ctx); id != "abc" {
		t.Errorf("expected jti abc, got %q", id)
	}

	if _, err := GetCaller(context.Background()); err == nil {
		t.Errorf("expected error without token")
	}
	if id := GetTokenID(context.Background()); id != "" {
		t.Errorf("expected empty jti, got %q", id)
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID("42"); err != nil || id != 42 {
		t.Errorf("expected 42, got %d %v", id, err)
	}
	if _, err := ParseID("abc"); err == nil {
		t.Errorf("expected error")
	}
}
