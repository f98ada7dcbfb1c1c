package checkoutrazorpay

import (
	"github.com/razorpay/razorpay-go/utils"
)

// signatureMatches checks the signature the provider attaches to a successful payment,
// an HMAC-SHA256 over "<orderID>|<paymentID>" keyed with the key secret.
func signatureMatches(secret string, orderID string, paymentID string, signature string) bool {
	return utils.VerifyPaymentSignature(map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}, signature, secret)
}
