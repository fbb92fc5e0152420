package registry

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Strategy decides what happens when a package name appears in more than
// one partial registry.
type Strategy int

const (
	// StrategyReplace keeps only the later partial's package record.
	StrategyReplace Strategy = iota
	// StrategyUnion merges version maps; the later partial wins per version.
	StrategyUnion
)

// String returns the strategy name as accepted by [ParseStrategy].
func (s Strategy) String() string {
	switch s {
	case StrategyReplace:
		return "replace"
	case StrategyUnion:
		return "union"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses "replace" or "union" (case-insensitive).
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replace":
		return StrategyReplace, nil
	case "union":
		return StrategyUnion, nil
	default:
		return 0, fmt.Errorf("unknown merge strategy %q (want replace or union)", s)
	}
}

// Collision records a package name contributed by more than one partial.
type Collision struct {
	Name string
	// Dropped lists earlier versions missing from the result. Only
	// [StrategyReplace] drops versions.
	Dropped []string
	// Overridden lists versions present in both records; the later
	// partial's dependencies were kept.
	Overridden []string
}

// Builder folds partial registries into one. A Builder is owned by a single
// caller and must not be shared between goroutines.
type Builder struct {
	strategy   Strategy
	reg        Registry
	collisions []Collision
}

// NewBuilder returns an empty builder using strategy.
func NewBuilder(strategy Strategy) *Builder {
	return &Builder{strategy: strategy, reg: make(Registry)}
}

// Add folds partial into the accumulated registry. Package records are
// copied, so later merges never write into partial.
func (b *Builder) Add(partial Registry) {
	for _, name := range partial.Names() {
		next := partial[name]
		prev, seen := b.reg[name]
		if !seen {
			b.reg[name] = maps.Clone(next)
			continue
		}

		c := Collision{Name: name}
		for _, v := range prev.Versions() {
			if _, ok := next[v]; ok {
				c.Overridden = append(c.Overridden, v)
			} else if b.strategy == StrategyReplace {
				c.Dropped = append(c.Dropped, v)
			}
		}
		b.collisions = append(b.collisions, c)

		switch b.strategy {
		case StrategyUnion:
			if prev == nil {
				prev = make(Package, len(next))
				b.reg[name] = prev
			}
			maps.Copy(prev, next)
		default:
			b.reg[name] = maps.Clone(next)
		}
	}
}

// Registry returns the accumulated registry.
func (b *Builder) Registry() Registry {
	return b.reg
}

// Collisions returns the collisions seen so far, in fold order.
func (b *Builder) Collisions() []Collision {
	return slices.Clone(b.collisions)
}

// Merge folds partials left to right under strategy.
func Merge(strategy Strategy, partials ...Registry) (Registry, []Collision) {
	b := NewBuilder(strategy)
	for _, p := range partials {
		b.Add(p)
	}
	return b.Registry(), b.Collisions()
}
