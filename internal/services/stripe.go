package services

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeService creates payment intents for parcel delivery charges.
type StripeService struct {
	api *client.API
}

func NewStripeService(secretKey string) *StripeService {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeService{api: api}
}

// CreatePaymentIntent converts the amount from major to minor units and
// creates a card payment intent in USD. It returns the client secret the
// frontend needs to confirm the payment.
func (s *StripeService) CreatePaymentIntent(ctx context.Context, amount float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(int64(amount * 100)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}
