package pix

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const referencePrefix = "PIX"

// GenerateReferenceID returns "PIX" + unix millis + 4 random bytes as hex,
// upper-cased and capped at 25 characters. The result is alphanumeric.
func GenerateReferenceID() string {
	return generateReferenceID(time.Now())
}

func generateReferenceID(now time.Time) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms; fall back to the clock.
		copy(buf, strconv.FormatInt(now.UnixNano(), 16))
	}
	id := strings.ToUpper(referencePrefix + strconv.FormatInt(now.UnixMilli(), 10) + hex.EncodeToString(buf))
	if len(id) > maxRefLength {
		id = id[:maxRefLength]
	}
	return id
}
