package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// New password digests are bcrypt. The identity table may still hold
// plain hex SHA-256 digests written by the legacy system; VerifyPassword
// accepts those too so existing accounts keep working.

// HashPassword derives a bcrypt digest for storage.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// LegacyHashPassword is the unsalted digest the legacy system stored.
// Kept only so migrations and tests can produce legacy-shaped rows.
func LegacyHashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword checks password against a stored digest, bcrypt first,
// legacy SHA-256 hex otherwise.
func VerifyPassword(password, digest string) bool {
	if strings.HasPrefix(digest, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
	}
	legacy := LegacyHashPassword(password)
	return subtle.ConstantTimeCompare([]byte(legacy), []byte(digest)) == 1
}

// NormalizeEmail lowercases and trims an address so inserts and lookups
// agree on one canonical form. Every path that writes or reads the
// identity table by email goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const studentIDSuffixChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateStudentID produces a display label like STU482913X7M: a
// truncated timestamp plus a short random suffix. Uniqueness is
// probabilistic; the identifier is a label, never a key.
func GenerateStudentID() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}

	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = studentIDSuffixChars[rand.IntN(len(studentIDSuffixChars))]
	}

	return "STU" + millis + string(suffix)
}
