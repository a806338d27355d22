package helper

import (
	"testing"
	"time"
)

func TestIssueAndParseAccessToken(t *testing.T) {
	raw, exp, err := IssueAccessToken("s3cret", 7, "ana", "employee", time.Hour, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatalf("expiry should be in the future, got %s", exp)
	}

	claims, err := ParseAccessToken("s3cret", raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	id, err := claims.UserID()
	if err != nil || id != 7 {
		t.Fatalf("user id = %d, %v", id, err)
	}
	if claims.Username != "ana" || claims.Role != "employee" {
		t.Fatalf("unexpected claims %+v", claims)
	}

	if _, err := ParseAccessToken("other", raw); err == nil {
		t.Fatal("wrong secret must fail")
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	raw, _, err := IssueAccessToken("s3cret", 1, "admin", "admin", time.Minute, time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := ParseAccessToken("s3cret", raw); err == nil {
		t.Fatal("expired token must fail")
	}
}

func TestIssueAccessTokenIsUniquePerCall(t *testing.T) {
	now := time.Now()
	a, _, _ := IssueAccessToken("s3cret", 7, "ana", "employee", time.Hour, now)
	b, _, _ := IssueAccessToken("s3cret", 7, "ana", "employee", time.Hour, now)
	if a == b {
		t.Fatal("tokens issued at the same instant must differ")
	}
}
