package orderhistory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylocalstore"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mymetrics"
	"github.com/MarcGrol/shopfront/lib/mypublisher"
	"github.com/MarcGrol/shopfront/lib/mypubsub"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/services/orderhistory/orderevents"
)

type Service struct {
	store     mylocalstore.LocalStore
	publisher mypublisher.Publisher
	pubsub    mypubsub.PubSub
	metrics   *mymetrics.Metrics
	nower     mytime.Nower
	baseURL   string
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(store mylocalstore.LocalStore, publisher mypublisher.Publisher, pubsub mypubsub.PubSub, metrics *mymetrics.Metrics, nower mytime.Nower, baseURL string) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		pubsub:    pubsub,
		metrics:   metrics,
		nower:     nower,
		baseURL:   baseURL,
		logger:    mylog.New("orderhistory"),
	}
}

// RecordOrder appends an order to the history of a signed-in user. Recording the same order twice has no effect.
func (s *Service) RecordOrder(c context.Context, userUID string, order OrderRecord) (OrderRecord, error) {
	if userUID == "" || userUID == guestUserID {
		return OrderRecord{}, myerrors.NewAuthenticationError(fmt.Errorf("Sign in required"))
	}
	if order.ID == "" || order.PaymentID == "" {
		return OrderRecord{}, myerrors.NewInvalidInputErrorf("Order id and payment id are required")
	}
	if order.Status == "" {
		order.Status = StatusConfirmed
	}
	if !order.Status.Valid() {
		return OrderRecord{}, myerrors.NewInvalidInputErrorf("Invalid status '%s'", order.Status)
	}
	if order.Date.IsZero() {
		order.Date = s.nower.Now()
	}
	if order.Items == nil {
		order.Items = []OrderItem{}
	}

	err := s.store.RunInTransaction(c, func(c context.Context) error {
		orders, err := s.load(c, userUID)
		if err != nil {
			return err
		}

		for _, existing := range orders {
			if existing.ID == order.ID {
				order = existing
				return nil
			}
		}

		err = s.persist(c, userUID, append(orders, order))
		if err != nil {
			return err
		}

		err = s.publisher.Publish(c, orderevents.TopicName, orderevents.OrderPlaced{
			CustomerUID:       userUID,
			OrderUID:          order.ID,
			PaymentID:         order.PaymentID,
			TotalInMinorUnits: order.TotalInMinorUnits(),
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return OrderRecord{}, err
	}

	s.logger.Log(c, order.ID, mylog.SeverityInfo, "Recorded order %s with payment %s for %s", order.ID, order.PaymentID, userUID)

	return order, nil
}

// ListOrders returns the history of a user, newest first.
func (s *Service) ListOrders(c context.Context, userUID string) ([]OrderRecord, error) {
	orders, err := s.load(c, userUID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
	return orders, nil
}

func (s *Service) UpdateStatus(c context.Context, userUID string, orderUID string, status Status) (OrderRecord, error) {
	if !status.Valid() {
		return OrderRecord{}, myerrors.NewInvalidInputErrorf("Invalid status '%s'", status)
	}

	updated := OrderRecord{}
	err := s.store.RunInTransaction(c, func(c context.Context) error {
		orders, err := s.load(c, userUID)
		if err != nil {
			return err
		}

		idx := -1
		for i := range orders {
			if orders[i].ID == orderUID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return myerrors.NewNotFoundError(fmt.Errorf("Order %s not found", orderUID))
		}

		oldStatus := orders[idx].Status
		if oldStatus == "" {
			oldStatus = StatusConfirmed
		}
		orders[idx].Status = status
		updated = orders[idx]
		if oldStatus == status {
			return nil
		}

		err = s.persist(c, userUID, orders)
		if err != nil {
			return err
		}

		err = s.publisher.Publish(c, orderevents.TopicName, orderevents.OrderStatusChanged{
			CustomerUID: userUID,
			OrderUID:    orderUID,
			OldStatus:   string(oldStatus),
			NewStatus:   string(status),
		})
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return OrderRecord{}, err
	}

	s.logger.Log(c, orderUID, mylog.SeverityInfo, "Order %s of %s is now %s", orderUID, userUID, status)

	return updated, nil
}

// AdminOrders collects the orders of all users, newest first. Histories that cannot be decoded are skipped.
func (s *Service) AdminOrders(c context.Context, filter AdminFilter) ([]AdminOrder, error) {
	if filter.Status != "" && filter.Status != statusAll && !Status(filter.Status).Valid() {
		return nil, myerrors.NewInvalidInputErrorf("Invalid status filter '%s'", filter.Status)
	}

	all, _, err := s.allOrders(c)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := []AdminOrder{}
	for _, o := range all {
		if search != "" &&
			!strings.Contains(strings.ToLower(o.ID), search) &&
			!strings.Contains(strings.ToLower(o.CustomerEmail), search) &&
			!strings.Contains(strings.ToLower(o.PaymentID), search) {
			continue
		}
		if filter.Status != "" && filter.Status != statusAll && string(o.Status) != filter.Status {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

func (s *Service) Stats(c context.Context) (Stats, error) {
	all, customerCount, err := s.allOrders(c)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalOrders:    len(all),
		TotalRevenue:   decimal.Zero,
		TotalCustomers: customerCount,
	}
	for _, o := range all {
		stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
		switch o.Status {
		case StatusConfirmed:
			stats.ConfirmedOrders++
		case StatusProcessing:
			stats.ProcessingOrders++
		case StatusShipped:
			stats.ShippedOrders++
		case StatusDelivered:
			stats.DeliveredOrders++
		case StatusCancelled:
			stats.CancelledOrders++
		}
	}
	stats.PendingOrders = stats.ConfirmedOrders + stats.ProcessingOrders
	return stats, nil
}

func (s *Service) allOrders(c context.Context) ([]AdminOrder, int, error) {
	keys, err := s.store.Keys(c, keyPrefix)
	if err != nil {
		return nil, 0, myerrors.NewInternalError(err)
	}

	now := s.nower.Now()
	customerCount := 0
	all := []AdminOrder{}
	for _, key := range keys {
		rawOrders, _, err := mylocalstore.GetJSON[[]json.RawMessage](c, s.store, key)
		if err != nil {
			s.logger.Log(c, key, mylog.SeverityWarn, "Skipping unreadable order history %s: %s", key, err)
			continue
		}

		customerUID := strings.TrimPrefix(key, keyPrefix)
		customerCount++
		for idx, raw := range rawOrders {
			o := OrderRecord{}
			err = json.Unmarshal(raw, &o)
			if err != nil {
				s.logger.Log(c, key, mylog.SeverityWarn, "Skipping unreadable order %d of %s: %s", idx, key, err)
				continue
			}
			all = append(all, AdminOrder{
				OrderRecord: withDefaults(o, customerUID, now),
				CustomerUID: customerUID,
			})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})
	return all, customerCount, nil
}

func withDefaults(o OrderRecord, customerUID string, now time.Time) OrderRecord {
	if o.ID == "" {
		o.ID = fmt.Sprintf("ORDER-%d", now.UnixMilli())
	}
	if o.CustomerEmail == "" {
		o.CustomerEmail = fmt.Sprintf("user-%s@example.com", firstN(customerUID, 8))
	}
	if o.Status == "" {
		o.Status = StatusConfirmed
	}
	if o.Date.IsZero() {
		o.Date = now
	}
	if o.Items == nil {
		o.Items = []OrderItem{}
	}
	return o
}

func firstN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func (s *Service) load(c context.Context, userUID string) ([]OrderRecord, error) {
	orders, _, err := mylocalstore.GetJSON[[]OrderRecord](c, s.store, storageKey(userUID))
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}
	if orders == nil {
		orders = []OrderRecord{}
	}
	return orders, nil
}

func (s *Service) persist(c context.Context, userUID string, orders []OrderRecord) error {
	err := mylocalstore.SetJSON(c, s.store, storageKey(userUID), orders)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error persisting orders: %s", err))
	}
	return nil
}
