package orderhistory

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	keyPrefix   = "orders_"
	statusAll   = "all"
	guestUserID = "guest"
)

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var statuses = []Status{StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

func (s Status) Valid() bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects unknown statuses. An absent status decodes as empty and is defaulted later.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	status := Status(raw)
	if status != "" && !status.Valid() {
		return fmt.Errorf("unknown order status '%s'", raw)
	}
	*s = status
	return nil
}

type OrderItem struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
	Image string          `json:"image,omitempty"`
}

// OrderRecord is what gets stored per user under "orders_<userId>".
type OrderRecord struct {
	ID            string          `json:"id" validate:"required"`
	PaymentID     string          `json:"paymentId" validate:"required"`
	Total         decimal.Decimal `json:"total"`
	Items         []OrderItem     `json:"items"`
	Date          time.Time       `json:"date"`
	Status        Status          `json:"status"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
}

func (o OrderRecord) TotalInMinorUnits() int64 {
	return o.Total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

type AdminOrder struct {
	OrderRecord
	CustomerUID string `json:"customerId"`
}

type AdminFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required"`
}

type Stats struct {
	TotalOrders      int             `json:"totalOrders"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	PendingOrders    int             `json:"pendingOrders"`
	DeliveredOrders  int             `json:"deliveredOrders"`
	ConfirmedOrders  int             `json:"confirmedOrders"`
	ProcessingOrders int             `json:"processingOrders"`
	ShippedOrders    int             `json:"shippedOrders"`
	CancelledOrders  int             `json:"cancelledOrders"`
	TotalCustomers   int             `json:"totalCustomers"`
}

func storageKey(userUID string) string {
	return keyPrefix + userUID
}
