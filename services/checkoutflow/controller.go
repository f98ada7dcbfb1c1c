package checkoutflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/shopfront/lib/myconfig"
	"github.com/MarcGrol/shopfront/lib/myhttpclient"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/services/cart"
	"github.com/MarcGrol/shopfront/services/checkoutrazorpay"
	"github.com/MarcGrol/shopfront/services/orderhistory"
)

// Controller drives one checkout attempt at a time: load the provider script, request an order,
// open the widget, wait for its callback and verify the payment before the order is recorded.
type Controller struct {
	page      Page
	api       PaymentAPI
	widget    Widget
	panel     CartPanel
	notifier  Notifier
	navigator Navigator
	cart      CartHolder
	orders    OrderRecorder
	nower     mytime.Nower
	shopName  string
	inFlight  atomic.Bool
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewController(page Page, api PaymentAPI, widget Widget, panel CartPanel, notifier Notifier, navigator Navigator,
	cart CartHolder, orders OrderRecorder, nower mytime.Nower, shopName string) *Controller {
	return &Controller{
		page:      page,
		api:       api,
		widget:    widget,
		panel:     panel,
		notifier:  notifier,
		navigator: navigator,
		cart:      cart,
		orders:    orders,
		nower:     nower,
		shopName:  shopName,
		logger:    mylog.New("checkoutflow"),
	}
}

// NewFromConfig talks to the payment endpoints configured in cfg.
func NewFromConfig(cfg myconfig.Config, page Page, widget Widget, panel CartPanel, notifier Notifier, navigator Navigator,
	cart CartHolder, orders OrderRecorder, nower mytime.Nower) *Controller {
	api := NewPaymentAPI(cfg.PaymentAPIBaseURL, myhttpclient.New())
	return NewController(page, api, widget, panel, notifier, navigator, cart, orders, nower, cfg.ShopName)
}

// outcome ends an attempt. Provider failures do not: the widget stays open for another try.
type outcome struct {
	success   *PaymentSuccess
	dismissed bool
}

func (ctl *Controller) Checkout(c context.Context, customer Customer) (Result, error) {
	current, err := ctl.cart.Snapshot(c)
	if err != nil {
		return ctl.fail(c, "Checkout error", err)
	}
	if current.IsEmpty() {
		return Result{State: Idle}, ErrEmptyCart
	}

	if !ctl.inFlight.CompareAndSwap(false, true) {
		return Result{State: Idle}, ErrCheckoutInProgress
	}
	defer ctl.inFlight.Store(false)

	ctl.notifier.Notify(c, "Redirecting to payment...", "Opening Razorpay Checkout")

	err = ctl.loadScript(c)
	if err != nil {
		return ctl.fail(c, "Checkout error", err)
	}

	created, err := ctl.requestOrder(c, current)
	if err != nil {
		return ctl.fail(c, "Checkout error", err)
	}
	order := created.Order

	outcomes := make(chan outcome, 1)
	var once sync.Once
	var settled atomic.Bool
	var lastFailure atomic.Pointer[PaymentFailure]
	defer settled.Store(true)

	resolve := func(o outcome) {
		once.Do(func() {
			settled.Store(true)
			outcomes <- o
		})
	}
	reportFailure := func(f PaymentFailure) {
		if settled.Load() {
			return
		}
		lastFailure.Store(&f)
		ctl.logger.Log(c, order.ID, mylog.SeverityWarn, "Payment %s for order %s failed: %s", f.PaymentID, order.ID, f.Description)
		ctl.notifier.Notify(c, "Payment failed", failureDescription(f))
	}

	ctl.panel.Close(c)
	err = ctl.widget.Open(c, WidgetConfig{
		Key:         created.KeyID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Name:        ctl.shopName,
		Description: description,
		OrderID:     order.ID,
		Theme:       Theme{Color: themeColor},
	}, WidgetHandlers{
		OnSuccess: func(s PaymentSuccess) { resolve(outcome{success: &s}) },
		OnFailure: reportFailure,
		OnDismiss: func() { resolve(outcome{dismissed: true}) },
	})
	if err != nil {
		ctl.panel.Open(c)
		return ctl.fail(c, "Checkout error", err)
	}

	ctl.logger.Log(c, order.ID, mylog.SeverityInfo, "Awaiting payment for order %s (%d %s)", order.ID, order.Amount, order.Currency)

	select {
	case <-c.Done():
		settled.Store(true)
		if f := lastFailure.Load(); f != nil {
			result, err := ctl.fail(c, "Checkout error", fmt.Errorf("%w: %w", ErrPaymentFailed, c.Err()))
			result.OrderID = order.ID
			result.PaymentID = f.PaymentID
			return result, err
		}
		return ctl.fail(c, "Checkout error", c.Err())
	case o := <-outcomes:
		if o.dismissed {
			ctl.panel.Open(c)
			result := Result{State: Dismissed, OrderID: order.ID}
			if f := lastFailure.Load(); f != nil {
				result.PaymentID = f.PaymentID
			}
			return result, nil
		}
		return ctl.verify(c, customer, current, order, *o.success)
	}
}

func (ctl *Controller) loadScript(c context.Context) error {
	if ctl.page.HasElement(scriptElementID) {
		return nil
	}
	err := ctl.page.InjectScript(c, scriptElementID, scriptSource)
	if err != nil {
		ctl.logger.Log(c, "", mylog.SeverityError, "Error loading %s: %s", scriptSource, err)
		return ErrScriptLoad
	}
	return nil
}

func (ctl *Controller) requestOrder(c context.Context, current cart.Cart) (checkoutrazorpay.CreateOrderResponse, error) {
	items := []noteItem{}
	for _, i := range current.Items {
		items = append(items, noteItem{ID: i.ID, Title: i.Title, Qty: i.Qty})
	}

	return ctl.api.CreateOrder(c, checkoutrazorpay.CreateOrderRequest{
		Amount:   jsonAmount(current.AmountInMinorUnits()),
		Currency: currency,
		Notes:    map[string]any{"items": items},
	})
}

func (ctl *Controller) verify(c context.Context, customer Customer, current cart.Cart, order checkoutrazorpay.Order, payment PaymentSuccess) (Result, error) {
	result := Result{State: Failed, OrderID: order.ID, PaymentID: payment.PaymentID}

	verified, err := ctl.api.VerifyPayment(c, checkoutrazorpay.VerifyPaymentRequest{
		OrderID:   order.ID,
		PaymentID: payment.PaymentID,
		Signature: payment.Signature,
	})
	if err != nil {
		ctl.notifier.Notify(c, "Payment verification failed", err.Error())
		return result, fmt.Errorf("%w: %s", ErrVerificationFailed, err)
	}
	if !verified.Valid {
		ctl.notifier.Notify(c, "Payment verification failed", ErrVerificationFailed.Error())
		return result, ErrVerificationFailed
	}

	if customer.UID != "" {
		_, err = ctl.orders.RecordOrder(c, customer.UID, orderRecord(customer, current, order, payment, ctl.nower))
		if err != nil {
			ctl.logger.Log(c, order.ID, mylog.SeverityError, "Error recording order %s: %s", order.ID, err)
		}
	}

	ctl.notifier.Notify(c, "Payment successful", "Thank you for your purchase!")

	err = ctl.cart.Clear(c)
	if err != nil {
		ctl.logger.Log(c, order.ID, mylog.SeverityError, "Error clearing cart after order %s: %s", order.ID, err)
	}
	ctl.panel.Close(c)

	query, err := formcodec.NewEncoder().Encode(confirmationQuery{OrderID: order.ID, PaymentID: payment.PaymentID})
	if err != nil {
		return result, fmt.Errorf("error encoding confirmation url: %s", err)
	}
	ctl.navigator.Navigate(c, confirmationURL+"?"+query.Encode())

	result.State = Succeeded
	return result, nil
}

func (ctl *Controller) fail(c context.Context, title string, err error) (Result, error) {
	ctl.notifier.Notify(c, title, errorDescription(err))
	return Result{State: Failed}, err
}

func orderRecord(customer Customer, current cart.Cart, order checkoutrazorpay.Order, payment PaymentSuccess, nower mytime.Nower) orderhistory.OrderRecord {
	items := []orderhistory.OrderItem{}
	for _, i := range current.Items {
		items = append(items, orderhistory.OrderItem{
			ID:    i.ID,
			Title: i.Title,
			Price: i.Price,
			Qty:   i.Qty,
			Image: i.Image,
		})
	}
	return orderhistory.OrderRecord{
		ID:            order.ID,
		PaymentID:     payment.PaymentID,
		Total:         current.TotalAmount,
		Items:         items,
		Date:          nower.Now(),
		Status:        orderhistory.StatusConfirmed,
		CustomerEmail: customer.Email,
	}
}

func failureDescription(f PaymentFailure) string {
	desc := f.Description
	if desc == "" {
		desc = "Please try again"
	}
	if f.Code != "" {
		desc += fmt.Sprintf(" (Code: %s)", f.Code)
	}
	if f.PaymentID != "" {
		desc += fmt.Sprintf(" | Payment: %s", f.PaymentID)
	}
	return desc
}

func errorDescription(err error) string {
	if err == nil {
		return "Please try again"
	}
	if errors.Is(err, context.Canceled) {
		return "Checkout cancelled"
	}
	return err.Error()
}

func jsonAmount(minorUnits int64) json.Number {
	return json.Number(strconv.FormatInt(minorUnits, 10))
}
