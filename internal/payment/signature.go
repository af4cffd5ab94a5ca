package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// signedFields is the exact, ordered field set covered by the gateway
// signature. The gateway signs the intent id and the payment id joined
// by a pipe; no other claim field participates.
func signedFields(c ConfirmationClaim) string {
	return strings.Join([]string{c.IntentID, c.PaymentID}, "|")
}

// Verifier authenticates confirmation claims against the shared
// gateway secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify recomputes the hex HMAC-SHA256 over the signed fields and
// compares it in constant time against the supplied signature.
func (v *Verifier) Verify(c ConfirmationClaim) bool {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(signedFields(c)))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(c.Signature))
}
