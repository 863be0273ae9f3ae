package entity

import "math"

// MaxQuantity is the largest quantity a cart line can hold.
const MaxQuantity = 9999

// CartItem is one line of the cart. Two lines are the same product when
// Title and Price both match.
type CartItem struct {
	Title    string `json:"title" firestore:"title"`
	Price    int64  `json:"price" firestore:"price"`
	Quantity int    `json:"quantity" firestore:"quantity"`
	Img      string `json:"img" firestore:"img"`
}

// LineTotal returns price times quantity, saturating at math.MaxInt64.
func (i CartItem) LineTotal() int64 {
	if i.Price <= 0 || i.Quantity <= 0 {
		return 0
	}
	qty := int64(i.Quantity)
	if i.Price > math.MaxInt64/qty {
		return math.MaxInt64
	}

	return i.Price * qty
}

// SumLineTotals adds up the line totals of items, saturating at math.MaxInt64.
func SumLineTotals(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		line := item.LineTotal()
		if total > math.MaxInt64-line {
			return math.MaxInt64
		}
		total += line
	}

	return total
}

func clampQuantity(n int) int {
	return min(max(n, 1), MaxQuantity)
}

func (i CartItem) sameProduct(other CartItem) bool {
	return i.Title == other.Title && i.Price == other.Price
}

// Cart is the ordered list of a session's cart lines. No two lines share
// the same (Title, Price) and every quantity is between 1 and MaxQuantity.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add merges item into the cart. An existing line with the same identity
// gets qty added to its quantity; otherwise a new line is appended.
// A qty below 1 counts as 1 and the merged quantity stops at MaxQuantity.
func (c *Cart) Add(item CartItem, qty int) {
	qty = clampQuantity(qty)

	for i := range c.Items {
		if c.Items[i].sameProduct(item) {
			c.Items[i].Quantity = min(c.Items[i].Quantity+qty, MaxQuantity)

			return
		}
	}

	item.Quantity = qty
	c.Items = append(c.Items, item)
}

// SetQuantity sets the quantity at index, clamped to [1, MaxQuantity].
// It reports false when index is out of range.
func (c *Cart) SetQuantity(index, n int) bool {
	if !c.valid(index) {
		return false
	}
	c.Items[index].Quantity = clampQuantity(n)

	return true
}

// Increment adds one to the quantity at index.
func (c *Cart) Increment(index int) bool {
	if !c.valid(index) {
		return false
	}

	return c.SetQuantity(index, c.Items[index].Quantity+1)
}

// Decrement subtracts one from the quantity at index; it never drops below 1.
func (c *Cart) Decrement(index int) bool {
	if !c.valid(index) {
		return false
	}

	return c.SetQuantity(index, c.Items[index].Quantity-1)
}

// Remove deletes the line at index.
func (c *Cart) Remove(index int) bool {
	if !c.valid(index) {
		return false
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)

	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total returns the sum of all line totals.
func (c *Cart) Total() int64 {
	return SumLineTotals(c.Items)
}

// Count returns the sum of all quantities.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Snapshot returns a copy of the lines that shares no memory with the cart.
func (c *Cart) Snapshot() []CartItem {
	if len(c.Items) == 0 {
		return []CartItem{}
	}

	out := make([]CartItem, len(c.Items))
	copy(out, c.Items)

	return out
}

func (c *Cart) valid(index int) bool {
	return index >= 0 && index < len(c.Items)
}
