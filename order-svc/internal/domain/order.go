package domain

import "github.com/shopspring/decimal"

// LineTotal is (unit price + add-on prices) * quantity.
func (l NewOrderLine) LineTotal() decimal.Decimal {
	unit := l.UnitPrice
	for _, a := range l.AddOns {
		unit = unit.Add(a.Price)
	}
	return unit.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Total is the amount stored on the order when it is created.
func (o NewOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

func (o NewOrder) Validate() error {
	if o.TableID != nil && *o.TableID <= 0 {
		return NewValidationError("table_id", "must be a positive id")
	}
	if len(o.Lines) == 0 {
		return NewValidationError("items", "order has no lines")
	}
	for i, l := range o.Lines {
		if l.ItemID <= 0 {
			return NewValidationError("items", "line %d: item id must be positive", i)
		}
		if l.Quantity < 1 {
			return NewValidationError("items", "line %d: quantity must be at least 1", i)
		}
		if l.UnitPrice.IsNegative() {
			return NewValidationError("items", "line %d: price must not be negative", i)
		}
		for _, a := range l.AddOns {
			if a.AddOnID <= 0 {
				return NewValidationError("items", "line %d: add-on id must be positive", i)
			}
			if a.Price.IsNegative() {
				return NewValidationError("items", "line %d: add-on price must not be negative", i)
			}
		}
	}
	return nil
}

// LinesTotal recomputes the amount from the stored price snapshots.
func (o Order) LinesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Items {
		unit := l.PriceAtTime
		for _, a := range l.AddOns {
			unit = unit.Add(a.PriceAtTime)
		}
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
