package cart

import "github.com/shopspring/decimal"

const storageKey = "cart"

type Item struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
	Qty   int             `json:"qty"`
}

// Cart totals are derived from the items and recalculated after every change.
type Cart struct {
	Items       []Item          `json:"items"`
	TotalQty    int             `json:"totalQty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

func (c *Cart) recalc() {
	c.TotalQty = 0
	c.TotalAmount = decimal.Zero
	for _, i := range c.Items {
		c.TotalQty += i.Qty
		c.TotalAmount = c.TotalAmount.Add(i.Price.Mul(decimal.NewFromInt(int64(i.Qty))))
	}
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// AmountInMinorUnits converts the total to paise, rounding half away from zero.
func (c Cart) AmountInMinorUnits() int64 {
	return c.TotalAmount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func emptyCart() Cart {
	return Cart{
		Items:       []Item{},
		TotalQty:    0,
		TotalAmount: decimal.Zero,
	}
}

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type ChangeQtyRequest struct {
	Qty int `json:"qty"`
}
