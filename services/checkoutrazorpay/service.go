package checkoutrazorpay

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mymetrics"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/lib/myvault"
)

var (
	errInvalidBody         = errors.New("Invalid request body")
	errInvalidAmount       = errors.New("Invalid amount")
	errInvalidCurrency     = errors.New("Invalid currency")
	errKeysNotConfigured   = errors.New("Razorpay keys not configured")
	errOrderFailed         = errors.New("Failed to create order")
	errMissingParameters   = errors.New("Missing parameters")
	errServerNotConfigured = errors.New("Server not configured")
)

type service struct {
	logger   mylog.Logger
	vault    myvault.VaultReader
	payer    Payer
	uuider   myuuid.UUIDer
	metrics  *mymetrics.Metrics
	validate *validator.Validate
}

// Use dependency injection to isolate the infrastructure and ease testing
func newService(logger mylog.Logger, vault myvault.VaultReader, payer Payer, uuider myuuid.UUIDer, metrics *mymetrics.Metrics) *service {
	return &service{
		logger:   logger,
		vault:    vault,
		payer:    payer,
		uuider:   uuider,
		metrics:  metrics,
		validate: validator.New(),
	}
}

// createOrder asks the provider for an order for exactly the requested amount and hands back the public key to open the widget with.
func (s *service) createOrder(c context.Context, req CreateOrderRequest) (CreateOrderResponse, error) {
	intent, err := s.toIntent(req)
	if err != nil {
		s.metrics.OrderRequested(mymetrics.OutcomeInvalidInput)
		return CreateOrderResponse{}, err
	}

	credentials, err := s.credentials(c)
	if err != nil {
		s.metrics.OrderRequested(mymetrics.OutcomeNotConfigured)
		return CreateOrderResponse{}, err
	}
	intent.Receipt = s.uuider.Create()

	order, err := s.payer.CreateOrder(c, credentials, OrderRequest{
		Amount:   intent.Amount,
		Currency: intent.Currency,
		Receipt:  intent.Receipt,
		Notes:    intent.Notes,
	})
	if err != nil {
		s.metrics.OrderRequested(mymetrics.OutcomeProviderFailure)
		s.logger.Log(c, intent.Receipt, mylog.SeverityError, "Provider rejected order of %d %s: %s", intent.Amount, intent.Currency, err)
		return CreateOrderResponse{}, myerrors.NewUpstreamError(providerMessage(err))
	}

	if order.Amount != intent.Amount || !strings.EqualFold(order.Currency, intent.Currency) {
		s.metrics.OrderRequested(mymetrics.OutcomeProviderFailure)
		s.logger.Log(c, order.ID, mylog.SeverityError, "Provider order %s has %d %s, requested %d %s", order.ID, order.Amount, order.Currency, intent.Amount, intent.Currency)
		return CreateOrderResponse{}, myerrors.NewUpstreamError(errors.New("Order amount mismatch"))
	}

	s.metrics.OrderRequested(mymetrics.OutcomeCreated)
	s.logger.Log(c, order.ID, mylog.SeverityInfo, "Order %s created for %d %s", order.ID, order.Amount, order.Currency)

	return CreateOrderResponse{
		Order: order,
		KeyID: credentials.KeyID,
	}, nil
}

func (s *service) toIntent(req CreateOrderRequest) (orderIntent, error) {
	amount, err := req.Amount.Int64()
	if err != nil {
		return orderIntent{}, myerrors.NewInvalidInputError(errInvalidAmount)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	intent := orderIntent{
		Amount:   amount,
		Currency: currency,
		Notes:    req.Notes,
	}

	err = s.validate.Struct(intent)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 && validationErrors[0].Field() == "Currency" {
			return orderIntent{}, myerrors.NewInvalidInputError(errInvalidCurrency)
		}
		return orderIntent{}, myerrors.NewInvalidInputError(errInvalidAmount)
	}

	return intent, nil
}

func (s *service) credentials(c context.Context) (Credentials, error) {
	keyID, keyIDFound, err := s.vault.Get(c, myvault.RazorpayKeyID)
	if err != nil {
		return Credentials{}, myerrors.NewInternalError(err)
	}
	keySecret, keySecretFound, err := s.vault.Get(c, myvault.RazorpayKeySecret)
	if err != nil {
		return Credentials{}, myerrors.NewInternalError(err)
	}
	if !keyIDFound || !keySecretFound {
		return Credentials{}, myerrors.NewConfigurationError(errKeysNotConfigured)
	}

	return Credentials{
		KeyID:     keyID,
		KeySecret: keySecret,
	}, nil
}

func providerMessage(err error) error {
	var providerError ProviderError
	if errors.As(err, &providerError) && strings.TrimSpace(providerError.Description) != "" {
		return errors.New(providerError.Description)
	}
	return errOrderFailed
}

// verifyPayment recomputes the provider signature of a payment callback. A mismatch is a normal outcome, not an error.
func (s *service) verifyPayment(c context.Context, req VerifyPaymentRequest) (VerifyPaymentResponse, error) {
	err := s.validate.Struct(req)
	if err != nil {
		return VerifyPaymentResponse{}, myerrors.NewInvalidInputError(errMissingParameters)
	}

	secret, found, err := s.vault.Get(c, myvault.RazorpayKeySecret)
	if err != nil {
		return VerifyPaymentResponse{}, myerrors.NewInternalError(err)
	}
	if !found {
		return VerifyPaymentResponse{}, myerrors.NewConfigurationError(errServerNotConfigured)
	}

	valid := signatureMatches(secret, req.OrderID, req.PaymentID, req.Signature)

	s.metrics.PaymentVerified(valid)
	s.logger.Log(c, req.OrderID, mylog.SeverityInfo, "Verified payment for order_id %s: valid=%t", req.OrderID, valid)

	return VerifyPaymentResponse{
		Valid: valid,
	}, nil
}
