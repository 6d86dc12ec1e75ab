package lootbag

import (
	"errors"
	"fmt"
)

// ErrInvalidDrop marks a malformed drop: a bad stack range, a luck outside
// [0,1] or a negative depth. It is reported when the drop is built, never
// mid-resolution.
var ErrInvalidDrop = errors.New("invalid drop")

// Stack is an inclusive range of item-copy counts a drop may yield.
type Stack struct {
	Min int
	Max int
}

// StackOf builds an inclusive stack range.
func StackOf(min, max int) Stack {
	return Stack{Min: min, Max: max}
}

// Drop describes one loot request: where to start, how deep to descend,
// how likely the attempt is, how many copies to draw and whether to run
// the modifier pipeline on results.
type Drop struct {
	// Path is the /-separated branch path to start from. "" means the root.
	Path string

	// Depth caps descent below the starting node. 0 restricts the pick to
	// the starting node's own items.
	Depth int

	// Luck is the probability in [0,1] that the attempt, and each further
	// descent, succeeds. It halves at every visited sub-branch.
	Luck float64

	// Stack bounds the number of copies drawn on a successful attempt.
	Stack Stack

	// Modify runs each yielded item through the resolver's pipeline.
	Modify bool
}

// Validate checks the drop's invariants.
func (d Drop) Validate() error {
	if d.Depth < 0 {
		return fmt.Errorf("%w: depth %d is negative", ErrInvalidDrop, d.Depth)
	}
	if d.Luck < 0 || d.Luck > 1 {
		return fmt.Errorf("%w: luck %v outside [0,1]", ErrInvalidDrop, d.Luck)
	}
	if d.Stack.Min < 0 {
		return fmt.Errorf("%w: stack min %d is negative", ErrInvalidDrop, d.Stack.Min)
	}
	if d.Stack.Min > d.Stack.Max {
		return fmt.Errorf("%w: stack %d..%d is inverted", ErrInvalidDrop, d.Stack.Min, d.Stack.Max)
	}
	return nil
}

// DropBuilder assembles a Drop with named setters.
//
// Defaults: root path, depth 0, luck 1.0, stack 1..1, modify off.
type DropBuilder struct {
	drop Drop
}

// NewDrop starts a builder with default values.
func NewDrop() *DropBuilder {
	return &DropBuilder{drop: Drop{
		Luck:  1.0,
		Stack: Stack{Min: 1, Max: 1},
	}}
}

// Path sets the starting branch path.
func (b *DropBuilder) Path(path string) *DropBuilder {
	b.drop.Path = path
	return b
}

// Depth sets the maximum descent below the starting node.
func (b *DropBuilder) Depth(depth int) *DropBuilder {
	b.drop.Depth = depth
	return b
}

// AnyDepth removes the descent cap in practice.
func (b *DropBuilder) AnyDepth() *DropBuilder {
	b.drop.Depth = int(^uint(0) >> 1)
	return b
}

// Luck sets the starting luck.
func (b *DropBuilder) Luck(luck float64) *DropBuilder {
	b.drop.Luck = luck
	return b
}

// Stack sets the inclusive stack range.
func (b *DropBuilder) Stack(min, max int) *DropBuilder {
	b.drop.Stack = Stack{Min: min, Max: max}
	return b
}

// Modify opts the drop into the modifier pipeline.
func (b *DropBuilder) Modify(on bool) *DropBuilder {
	b.drop.Modify = on
	return b
}

// Build validates and returns the drop. A malformed drop fails here with
// an ErrInvalidDrop-wrapped error.
func (b *DropBuilder) Build() (Drop, error) {
	if err := b.drop.Validate(); err != nil {
		return Drop{}, err
	}
	return b.drop, nil
}

// MustBuild is Build for static drop tables; it panics on a malformed drop.
func (b *DropBuilder) MustBuild() Drop {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
