package checkoutrazorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	t.Run("Accepts known vectors", func(t *testing.T) {
		assert.True(t, signatureMatches("key", "order_9A33XWu170gUtm", "pay_29QQoUBi66xm2f",
			"588b9dde47d06d5a275c12a2e62d8a16d7b07078463b75587afb94061cd0d70e"))
		assert.True(t, signatureMatches("s3cr3t", "order_1", "pay_1",
			"c4ba7785e595b717abd8b4847eaf30e97f23acbdbe1b8f5cbbf17d28d63b068f"))
	})

	t.Run("Accepts signature of a payment", func(t *testing.T) {
		sig := computeSignature("s3cr3t", "order_1", "pay_1")
		assert.True(t, signatureMatches("s3cr3t", "order_1", "pay_1", sig))
	})

	t.Run("Rejects any tampering", func(t *testing.T) {
		sig := computeSignature("s3cr3t", "order_1", "pay_1")

		assert.False(t, signatureMatches("s3cr3t", "order_2", "pay_1", sig))
		assert.False(t, signatureMatches("s3cr3t", "order_1", "pay_2", sig))
		assert.False(t, signatureMatches("other", "order_1", "pay_1", sig))
		assert.False(t, signatureMatches("s3cr3t", "order_1", "pay_1", sig[:63]+"0"))
		assert.False(t, signatureMatches("s3cr3t", "order_1", "pay_1", ""))
	})

	t.Run("Uppercase hex is not accepted", func(t *testing.T) {
		assert.False(t, signatureMatches("s3cr3t", "order_1", "pay_1", "C4BA7785E595B717ABD8B4847EAF30E97F23ACBDBE1B8F5CBBF17D28D63B068F"))
	})
}

// computeSignature signs a payment the way the provider does, to feed the verification endpoint.
func computeSignature(secret string, orderID string, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
