package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "admin", "biz-1", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims() error = %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want user-1", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %q, want admin", claims.Role)
	}
	if claims.BusinessID != "biz-1" {
		t.Errorf("businessID = %q, want biz-1", claims.BusinessID)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "customer", "", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if _, err := ExtractClaims(token); err == nil {
		t.Fatal("ExtractClaims() accepted an expired token")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "customer", "", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := ExtractClaims(tampered); err == nil {
		t.Fatal("ExtractClaims() accepted a tampered token")
	}
}
