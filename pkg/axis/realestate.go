package axis

import "math"

// Item is one claimant on the shared vertical axis budget.
type Item struct {
	Key string

	// Min is the smallest grant that is useful; an item that cannot get
	// Min is dropped entirely rather than squeezed.
	Min float64

	// Weight steers leftover distribution after every surviving item
	// has its Min. +Inf marks a greedy absorber that takes the whole
	// remainder; finite weights share it proportionally. Zero takes
	// nothing beyond Min.
	Weight float64
}

// Allocation maps item keys to granted pixel heights. Dropped items are
// absent rather than zero so callers can distinguish "not placed" from
// "placed with no extra".
type Allocation map[string]float64

// Granted reports the grant for key, zero when the item was dropped.
func (a Allocation) Granted(key string) float64 { return a[key] }

// Has reports whether the item survived the minimum-size pass.
func (a Allocation) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Total returns the sum of all grants.
func (a Allocation) Total() float64 {
	var sum float64
	for _, v := range a {
		sum += v
	}
	return sum
}

// Allocate divides budget among items in two passes. The first walks
// items in slice order (priority order) granting each its Min while the
// budget lasts; an item whose Min no longer fits is dropped and later
// items still get a chance. The second pass hands the leftover to the
// first surviving +Inf-weight item, or shares it across surviving
// finite positive weights proportionally. Leftover with no taker stays
// unspent.
//
// The invariant callers rely on: Total() never exceeds budget.
func Allocate(items []Item, budget float64) Allocation {
	alloc := make(Allocation, len(items))
	remaining := budget

	for _, it := range items {
		if it.Min > remaining {
			continue
		}
		alloc[it.Key] = it.Min
		remaining -= it.Min
	}
	if remaining <= 0 {
		return alloc
	}

	for _, it := range items {
		if math.IsInf(it.Weight, 1) && alloc.Has(it.Key) {
			alloc[it.Key] += remaining
			return alloc
		}
	}

	var totalWeight float64
	for _, it := range items {
		if alloc.Has(it.Key) && it.Weight > 0 {
			totalWeight += it.Weight
		}
	}
	if totalWeight <= 0 {
		return alloc
	}
	for _, it := range items {
		if alloc.Has(it.Key) && it.Weight > 0 {
			alloc[it.Key] += remaining * it.Weight / totalWeight
		}
	}
	return alloc
}
