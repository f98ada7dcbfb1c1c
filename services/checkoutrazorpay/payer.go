package checkoutrazorpay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/razorpay/razorpay-go"
)

type Credentials struct {
	KeyID     string
	KeySecret string
}

type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]any
}

// ProviderError carries the description the provider gave for a rejected request.
type ProviderError struct {
	Description string
}

func (e ProviderError) Error() string {
	return e.Description
}

//go:generate mockgen -source=payer.go -package checkoutrazorpay -destination payer_mock.go Payer
type Payer interface {
	CreateOrder(c context.Context, credentials Credentials, req OrderRequest) (Order, error)
}

type razorpayPayer struct{}

func NewPayer() Payer {
	return &razorpayPayer{}
}

func (p *razorpayPayer) CreateOrder(c context.Context, credentials Credentials, req OrderRequest) (Order, error) {
	// credentials may change between calls, so the client is not reused
	client := razorpay.NewClient(credentials.KeyID, credentials.KeySecret)

	data := map[string]interface{}{
		"amount":          req.Amount,
		"currency":        req.Currency,
		"payment_capture": 1,
	}
	if req.Receipt != "" {
		data["receipt"] = req.Receipt
	}
	if len(req.Notes) > 0 {
		data["notes"] = req.Notes
	}

	resp, err := client.Order.Create(data, nil)
	if err != nil {
		return Order{}, ProviderError{Description: err.Error()}
	}

	return orderFromResponse(resp)
}

func orderFromResponse(resp map[string]interface{}) (Order, error) {
	jsonBytes, err := json.Marshal(resp)
	if err != nil {
		return Order{}, fmt.Errorf("error marshalling order: %s", err)
	}
	order := Order{}
	err = json.Unmarshal(jsonBytes, &order)
	if err != nil {
		return Order{}, fmt.Errorf("error parsing order: %s", err)
	}
	return order, nil
}
