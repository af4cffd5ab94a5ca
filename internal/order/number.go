package order

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber generates an externally visible order number. It is
// also used as the gateway receipt id and therefore semi-public, so
// the random part comes from crypto/rand with enough entropy to make
// guessing infeasible.
func NewOrderNumber() string {
	now := time.Now().UTC()
	datePart := now.Format("20060102")

	b := make([]byte, 5)
	if _, err := rand.Read(b); err != nil {
		// fallback: uuid-derived entropy
		u := uuid.New()
		copy(b, u[:5])
	}

	return fmt.Sprintf("GNID%s-%s", strings.ToUpper(hex.EncodeToString(b)), datePart)
}
