package coord

import (
	"fmt"
)

// NestedValue addresses a point inside a nested domain: a category of the
// outer discrete domain plus a value in that category's sub-range.
type NestedValue[C comparable, V any] struct {
	Category C
	Value    V
}

// Nested subdivides a discrete outer domain into per-category sub-ranges,
// each independently mapped into its category's pixel band. Grouped bar
// charts use it as the x axis.
//
// The composition is a tree: child ranges are owned by the Nested range and
// addressed by the category's index in the outer domain. Children never
// point back at the parent.
type Nested[C comparable, V any] struct {
	outer *Categories[C]
	subs  []Ranged[V]
}

// NewNested binds one sub-range per outer category, index-aligned with the
// outer element order.
func NewNested[C comparable, V any](outer *Categories[C], subs []Ranged[V]) (*Nested[C, V], error) {
	if outer == nil || outer.Len() == 0 {
		return nil, ErrEmptyDomain
	}
	if len(subs) != outer.Len() {
		return nil, fmt.Errorf("%w: %d sub-ranges for %d categories",
			ErrInvalidRange, len(subs), outer.Len())
	}
	for i, s := range subs {
		if s == nil {
			return nil, fmt.Errorf("%w: nil sub-range at index %d", ErrInvalidRange, i)
		}
	}
	owned := make([]Ranged[V], len(subs))
	copy(owned, subs)
	return &Nested[C, V]{outer: outer, subs: owned}, nil
}

var _ Ranged[NestedValue[string, float64]] = (*Nested[string, float64])(nil)

// Sub returns the sub-range for the given category.
func (n *Nested[C, V]) Sub(category C) (Ranged[V], bool) {
	i, ok := n.outer.IndexOf(category)
	if !ok {
		return nil, false
	}
	return n.subs[i], true
}

// Map implements Ranged: the category selects a pixel band, the sub-range
// maps the value within it. Unknown categories map to the interval start;
// check Contains first, as with any discrete domain.
func (n *Nested[C, V]) Map(v NestedValue[C, V], px PixelRange) int {
	i, ok := n.outer.IndexOf(v.Category)
	if !ok {
		return px.Start
	}
	return n.subs[i].Map(v.Value, n.outer.band(i, px))
}

// Unmap implements Ranged.
func (n *Nested[C, V]) Unmap(pixel int, px PixelRange) (NestedValue[C, V], bool) {
	var zero NestedValue[C, V]
	cat, ok := n.outer.Unmap(pixel, px)
	if !ok {
		return zero, false
	}
	i, _ := n.outer.IndexOf(cat)
	val, ok := n.subs[i].Unmap(pixel, n.outer.band(i, px))
	if !ok {
		return zero, false
	}
	return NestedValue[C, V]{Category: cat, Value: val}, true
}

// KeyPoints implements Ranged by delegating to the sub-ranges: the budget
// is divided evenly across categories and each sub-range's points are
// emitted in category order. When there are more categories than budget,
// the categories are stride-subsampled with one point each.
func (n *Nested[C, V]) KeyPoints(maxCount int) []NestedValue[C, V] {
	if maxCount <= 0 {
		return nil
	}
	cats := n.outer.KeyPoints(maxCount)
	per := maxCount / len(cats)
	if per < 1 {
		per = 1
	}
	out := make([]NestedValue[C, V], 0, maxCount)
	for _, c := range cats {
		i, _ := n.outer.IndexOf(c)
		for _, v := range n.subs[i].KeyPoints(per) {
			if len(out) == maxCount {
				return out
			}
			out = append(out, NestedValue[C, V]{Category: c, Value: v})
		}
	}
	return out
}

// Range implements Ranged.
func (n *Nested[C, V]) Range() (NestedValue[C, V], NestedValue[C, V]) {
	loCat, hiCat := n.outer.Range()
	loVal, _ := n.subs[0].Range()
	_, hiVal := n.subs[len(n.subs)-1].Range()
	return NestedValue[C, V]{Category: loCat, Value: loVal},
		NestedValue[C, V]{Category: hiCat, Value: hiVal}
}

// Contains implements Ranged.
func (n *Nested[C, V]) Contains(v NestedValue[C, V]) bool {
	i, ok := n.outer.IndexOf(v.Category)
	if !ok {
		return false
	}
	return n.subs[i].Contains(v.Value)
}

// FormatValue implements Ranged.
func (n *Nested[C, V]) FormatValue(v NestedValue[C, V]) string {
	if i, ok := n.outer.IndexOf(v.Category); ok {
		return fmt.Sprintf("%v %s", v.Category, n.subs[i].FormatValue(v.Value))
	}
	return fmt.Sprintf("%v %v", v.Category, v.Value)
}
