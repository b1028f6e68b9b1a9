package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/vibevault/vibevault/internal/common"
)

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	subject := "alice"

	tok, err := GenerateToken(subject, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if tok == "" {
		t.Fatalf("empty token string")
	}

	got, err := GetSubjectFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetSubjectFromToken error: %v", err)
	}
	if got != subject {
		t.Fatalf("subject mismatch: got %q want %q", got, subject)
	}
}

func TestGetSubjectFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("alice", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetSubjectFromToken(tok, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestGetSubjectFromToken_ZeroTTL(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("alice", secret, 0)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	_, err = GetSubjectFromToken(tok, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestGetSubjectFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("alice", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetSubjectFromToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestGetSubjectFromToken_Tampered(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := GenerateToken("alice", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// flip the last character of the signature segment
	last := tok[len(tok)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	tampered := tok[:len(tok)-1] + string(replacement)

	_, err = GetSubjectFromToken(tampered, secret)
	if !errors.Is(err, common.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestGetSubjectFromToken_Malformed(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		_, err := GetSubjectFromToken(tok, []byte("k"))
		if !errors.Is(err, common.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}
