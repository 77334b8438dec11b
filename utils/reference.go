package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateBookingReference builds a human-readable reference like
// HB-1234567-A1B2: the low-order digits of the current millisecond clock keep
// it short and roughly monotonic, the random suffix guards against collisions
// within the same millisecond. Uniqueness is still enforced by the database
// index; callers retry on a duplicate-key violation.
func GenerateBookingReference() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 6 {
		millis = millis[6:]
	}
	random := strings.ToUpper(uuid.NewString()[:4])
	return "HB-" + millis + "-" + random
}

// GenerateTransactionID returns a gateway-style transaction id, TX- plus a
// short random token.
func GenerateTransactionID() string {
	return "TX-" + uuid.NewString()[:8]
}

// GenerateSecureToken returns length random bytes hex-encoded.
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
