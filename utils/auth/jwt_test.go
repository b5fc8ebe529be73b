package auth

import (
	"testing"
	"time"
)

func testManager(expiry time.Duration) *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret: "test-secret",
		Expiry: expiry,
		Issuer: "portal-eventos-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := testManager(time.Hour)

	token, err := m.GenerateToken(7, "ana@pucminas.br", "Professora")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UsuarioID != 7 {
		t.Errorf("UsuarioID = %d, want 7", claims.UsuarioID)
	}
	if claims.Email != "ana@pucminas.br" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Cargo != "Professora" {
		t.Errorf("Cargo = %q", claims.Cargo)
	}
	if claims.Issuer != "portal-eventos-test" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("expected a token ID")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	m := testManager(-time.Minute)

	token, err := m.GenerateToken(1, "carlos@pucminas.br", "Professor")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := m.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := testManager(time.Hour).GenerateToken(1, "julia@pucminas.br", "Coordenadora")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTManager(JWTConfig{Secret: "different", Expiry: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}
