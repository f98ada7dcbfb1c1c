package checkoutflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/lib/myhttpclient"
	"github.com/MarcGrol/shopfront/services/checkoutrazorpay"
)

type httpPaymentAPI struct {
	baseURL string
	sender  myhttpclient.HTTPSender
}

// NewPaymentAPI talks to the order and verification endpoints at baseURL.
func NewPaymentAPI(baseURL string, sender myhttpclient.HTTPSender) PaymentAPI {
	return &httpPaymentAPI{
		baseURL: baseURL,
		sender:  sender,
	}
}

func (a *httpPaymentAPI) CreateOrder(c context.Context, req checkoutrazorpay.CreateOrderRequest) (checkoutrazorpay.CreateOrderResponse, error) {
	resp := checkoutrazorpay.CreateOrderResponse{}
	err := a.post(c, "/create-razorpay-order", req, &resp)
	if err != nil {
		return checkoutrazorpay.CreateOrderResponse{}, err
	}
	return resp, nil
}

func (a *httpPaymentAPI) VerifyPayment(c context.Context, req checkoutrazorpay.VerifyPaymentRequest) (checkoutrazorpay.VerifyPaymentResponse, error) {
	resp := checkoutrazorpay.VerifyPaymentResponse{}
	err := a.post(c, "/verify-razorpay-payment", req, &resp)
	if err != nil {
		return checkoutrazorpay.VerifyPaymentResponse{}, err
	}
	return resp, nil
}

func (a *httpPaymentAPI) post(c context.Context, path string, req any, resp any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("error encoding request for %s: %s", path, err)
	}

	status, respBody, err := a.sender.Send(c, http.MethodPost, a.baseURL+path, body)
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		errResp := myhttp.ErrorResponse{}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return errors.New(errResp.Error)
		}
		return fmt.Errorf("unexpected status %d from %s", status, path)
	}

	err = json.Unmarshal(respBody, resp)
	if err != nil {
		return fmt.Errorf("error decoding response from %s: %s", path, err)
	}
	return nil
}
