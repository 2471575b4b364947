package utils

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"github.com/sazid-zero/ConsultBook-sub001/config"
)

// VerifyPayment asks the payment processor whether the given payment intent
// actually succeeded. A "payment completed" flag from the client is never
// trusted on its own.
func VerifyPayment(paymentIntentID string) (bool, error) {
	if paymentIntentID == "" {
		return false, nil
	}

	stripe.Key = config.AppConfig.StripeSecretKey
	pi, err := paymentintent.Get(paymentIntentID, nil)
	if err != nil {
		return false, UpstreamError("Payment processor unavailable", err)
	}
	return pi.Status == stripe.PaymentIntentStatusSucceeded, nil
}
