package engine

import "fmt"

// Side tags a Limit as a minimum or a maximum.
type Side int

const (
	Low Side = iota
	High
)

// Components is the domain view a partial Limit needs: it splits a composite
// value into its components in descending granularity (year, month, day, ...)
// and supplies per-component legal extremes. Max may depend on the coarser
// components already fixed (days in month), which is why the prefix is
// passed; calendar lookups behind CompMax live in the domain package.
type Components interface {
	Count() int
	Split(v int64) []int
	Join(parts []int) (int64, error)
	CompMin(i int, prefix []int) int
	CompMax(i int, prefix []int) int
}

// Limit is an immutable minimum or maximum constraint, either fully resolved
// to a composite value or specified down to some component granularity with
// the trailing components left open.
type Limit struct {
	side     Side
	resolved bool
	value    int64
	parts    []int
	comps    Components
}

// Exact builds a fully-resolved limit.
func Exact(side Side, v int64) *Limit {
	return &Limit{side: side, resolved: true, value: v}
}

// Partial builds a limit specified only down to len(parts) components.
// The parts are validated against the component extremes up front; a bad
// specification is a configuration defect, not user input.
func Partial(side Side, parts []int, comps Components) (*Limit, error) {
	if len(parts) == 0 || len(parts) > comps.Count() {
		return nil, fmt.Errorf("bound: %d components, want 1..%d", len(parts), comps.Count())
	}
	for i, p := range parts {
		prefix := parts[:i]
		if p < comps.CompMin(i, prefix) || p > comps.CompMax(i, prefix) {
			return nil, fmt.Errorf("bound: component %d value %d out of range", i, p)
		}
	}
	l := &Limit{side: side, parts: append([]int(nil), parts...), comps: comps}
	return l, nil
}

func (l *Limit) Side() Side { return l.side }

// Compare returns the sign of value relative to the limit window: -1 below,
// +1 above, 0 inside. A partial limit compares component-by-component in
// descending granularity; once every specified component matches, the value
// is inside regardless of the unspecified remainder.
func (l *Limit) Compare(v int64) int {
	if l.resolved {
		switch {
		case v < l.value:
			return -1
		case v > l.value:
			return 1
		}
		return 0
	}
	got := l.comps.Split(v)
	for i, want := range l.parts {
		switch {
		case got[i] < want:
			return -1
		case got[i] > want:
			return 1
		}
	}
	return 0
}

// Resolve returns the concrete boundary value: a low limit fills unspecified
// components with their minimum legal value (start-of-unit), a high limit
// with their maximum (end-of-unit: last day of month, 23:59:59.999).
func (l *Limit) Resolve() int64 {
	if l.resolved {
		return l.value
	}
	parts := append([]int(nil), l.parts...)
	for i := len(parts); i < l.comps.Count(); i++ {
		if l.side == Low {
			parts = append(parts, l.comps.CompMin(i, parts))
		} else {
			parts = append(parts, l.comps.CompMax(i, parts))
		}
	}
	v, err := l.comps.Join(parts)
	if err != nil {
		// Partial validated construction; Join over filled extremes cannot fail.
		panic(fmt.Sprintf("bound resolve: %v", err))
	}
	return v
}

// Clamp pulls v to the boundary when it lies outside the limit window.
func (l *Limit) Clamp(v int64) int64 {
	c := l.Compare(v)
	if l.side == Low && c < 0 {
		return l.Resolve()
	}
	if l.side == High && c > 0 {
		return l.Resolve()
	}
	return v
}

// violates reports whether v falls on the forbidden side of the limit.
func (l *Limit) violates(v int64) bool {
	if l == nil {
		return false
	}
	c := l.Compare(v)
	return (l.side == Low && c < 0) || (l.side == High && c > 0)
}
