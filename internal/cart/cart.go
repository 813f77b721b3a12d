// Package cart holds the in-progress sale and derives its totals.
package cart

import (
	"sync"

	"litepos/internal/model"

	"github.com/shopspring/decimal"
)

var bpsDivisor = decimal.NewFromInt(10000)

// Line returns the subtotal and tax of one cart line. Tax is rounded per line,
// half away from zero: 100 cents at 50 bps yields 1.
func Line(unitPriceCents int64, quantity, taxRateBps int) (subtotal, tax int64) {
	subtotal = unitPriceCents * int64(quantity)
	tax = decimal.NewFromInt(subtotal).
		Mul(decimal.NewFromInt(int64(taxRateBps))).
		Div(bpsDivisor).
		Round(0).
		IntPart()
	return subtotal, tax
}

// Item is a product snapshot with its quantity and per-line notes.
type Item struct {
	Product  model.Product
	Quantity int
	Notes    string
}

// Cart is the current sale. Derived totals are recomputed on every mutation.
// A Cart is safe for concurrent use.
type Cart struct {
	mu       sync.RWMutex
	items    []Item
	customer *model.Customer
	draftID  *int64
	notes    string

	subtotal  int64
	taxTotal  int64
	itemCount int
}

func New() *Cart { return &Cart{} }

// Add increments the quantity of p when it is already in the cart, otherwise
// appends it with quantity 1.
func (c *Cart) Add(p model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity++
			c.recompute()
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: 1})
	c.recompute()
}

func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(productID)
	c.recompute()
}

// SetQuantity removes the line when qty <= 0. Unknown products are ignored.
func (c *Cart) SetQuantity(productID int64, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty <= 0 {
		c.remove(productID)
	} else if i := c.index(productID); i >= 0 {
		c.items[i].Quantity = qty
	}
	c.recompute()
}

func (c *Cart) SetItemNotes(productID int64, notes string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.index(productID); i >= 0 {
		c.items[i].Notes = notes
	}
}

// SetCustomer attaches a customer; nil detaches it.
func (c *Cart) SetCustomer(customer *model.Customer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customer = customer
}

func (c *Cart) SetDraftID(id *int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draftID = id
}

func (c *Cart) SetNotes(notes string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notes = notes
}

// Clear resets every field to its empty value.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.customer = nil
	c.draftID = nil
	c.notes = ""
	c.recompute()
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Customer() *model.Customer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.customer
}

func (c *Cart) DraftID() *int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.draftID
}

func (c *Cart) Notes() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notes
}

func (c *Cart) SubtotalCents() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.subtotal
}

func (c *Cart) TaxTotalCents() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.taxTotal
}

func (c *Cart) TotalCents() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.subtotal + c.taxTotal
}

// ItemCount is the sum of quantities, not the number of lines.
func (c *Cart) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.itemCount
}

func (c *Cart) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items) == 0
}

func (c *Cart) index(productID int64) int {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) remove(productID int64) {
	if i := c.index(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// recompute must be called with mu held.
func (c *Cart) recompute() {
	var sub, tax int64
	count := 0
	for _, it := range c.items {
		s, t := Line(it.Product.SalePriceCents, it.Quantity, it.Product.TaxRateBps)
		sub += s
		tax += t
		count += it.Quantity
	}
	c.subtotal, c.taxTotal, c.itemCount = sub, tax, count
}
