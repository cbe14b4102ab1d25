package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/boardroom-booker/booker-backend-go/internal/domain/user"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "15m", "168h")
	companyID := "company-1"

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "alice@acme.com", &companyID, user.RoleManager)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if expiresAt <= time.Now().Unix() {
		t.Errorf("expiresAt = %d, want a future timestamp", expiresAt)
	}

	parsed, err := svc.JWTAuth().Decode(tokenString)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	claims, err := parsed.AsMap(context.Background())
	if err != nil {
		t.Fatalf("AsMap() error = %v", err)
	}
	if claims["user_id"] != "user-1" {
		t.Errorf("user_id claim = %v", claims["user_id"])
	}
	if claims["role"] != "manager" {
		t.Errorf("role claim = %v", claims["role"])
	}
	if claims["type"] != "access" {
		t.Errorf("type claim = %v", claims["type"])
	}
	if claims["company_id"] != "company-1" {
		t.Errorf("company_id claim = %v", claims["company_id"])
	}
}

func TestRefreshTokenClaims(t *testing.T) {
	svc := NewJWTService("test-secret", "15m", "168h")

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	parsed, err := svc.JWTAuth().Decode(tokenString)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	claims, err := parsed.AsMap(context.Background())
	if err != nil {
		t.Fatalf("AsMap() error = %v", err)
	}
	if claims["type"] != "refresh" {
		t.Errorf("type claim = %v", claims["type"])
	}
	if _, ok := claims["email"]; ok {
		t.Error("refresh tokens must not carry the email claim")
	}
}

func TestGenerateAccessTokenBadDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "not-a-duration", "168h")
	if _, _, err := svc.GenerateAccessToken("user-1", "a@b.cd", nil, user.RoleEmployee); err == nil {
		t.Error("GenerateAccessToken() error = nil, want parse error")
	}
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService("test-secret", "15m", "168h")
	exp := time.Now().Add(time.Hour).Unix()

	cookie := svc.RefreshTokenCookie("tok", exp)
	if cookie.Name != "refresh_token" {
		t.Errorf("cookie name = %q", cookie.Name)
	}
	if !cookie.HttpOnly {
		t.Error("refresh cookie must be HttpOnly")
	}
	if cookie.Path != "/api/v1/auth" {
		t.Errorf("cookie path = %q", cookie.Path)
	}
}
