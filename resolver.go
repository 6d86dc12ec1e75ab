package lootbag

import "fmt"

// LuckDecay is the factor applied to a drop's luck at every sub-branch
// descent. Descending one level halves the odds of continuing.
const LuckDecay = 0.5

// Resolver turns a list of drops against a loot tree into a flat list of
// items. It never mutates the tree.
type Resolver struct {
	pipeline *Pipeline
}

// NewResolver creates a resolver. The pipeline applies to items whose drop
// has Modify set; nil means no modifiers.
func NewResolver(pipeline *Pipeline) *Resolver {
	return &Resolver{pipeline: pipeline}
}

// Loot resolves the drops with a fresh non-deterministic random source.
func (r *Resolver) Loot(root *Node, drops []Drop) ([]Item, error) {
	return r.LootWith(root, drops, NewSource())
}

// LootWith resolves the drops with the given random source. Feeding the
// same tree, the same drops and a source with the same seed reproduces
// the exact same result sequence.
//
// Drops are processed independently, in input order, each appending its
// yield to the result. A drop whose path is missing from the tree is a
// silent miss, not an error; only a malformed drop fails the call, and it
// does so before any randomness is consumed.
//
// The source is consumed in a fixed order per drop: the luck gate, then
// one candidate-index draw plus one decayed-luck gate per descent level,
// then the stack-count draw, then the same gate-and-walk sequence once per
// remaining stack unit.
func (r *Resolver) LootWith(root *Node, drops []Drop, src Source) ([]Item, error) {
	for i, d := range drops {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("drop %d: %w", i, err)
		}
	}

	var rewards []Item
	for _, d := range drops {
		rewards = r.resolve(rewards, root, d, src)
	}
	return rewards, nil
}

// resolve runs one drop and appends its yield to rewards.
func (r *Resolver) resolve(rewards []Item, root *Node, d Drop, src Source) []Item {
	// A missing branch is a miss, not an error: drop tables may
	// legitimately reference paths this particular tree does not have.
	start, err := root.Branch(d.Path)
	if err != nil {
		return rewards
	}

	first, ok := pick(start, d.Depth, d.Luck, src)
	if !ok {
		return rewards
	}

	stack := d.Stack.Min
	if d.Stack.Max > d.Stack.Min {
		stack = d.Stack.Min + src.IntN(d.Stack.Max-d.Stack.Min+1)
	}
	if stack == 0 {
		return rewards
	}

	// The first successful walk is stack unit 1. Every further unit
	// redraws the whole walk, so one drop can yield a mix of distinct
	// items reached from the same starting path.
	rewards = append(rewards, r.finish(first, d))
	for unit := 1; unit < stack; unit++ {
		item, ok := pick(start, d.Depth, d.Luck, src)
		if !ok {
			continue
		}
		rewards = append(rewards, r.finish(item, d))
	}
	return rewards
}

func (r *Resolver) finish(item Item, d Drop) Item {
	if d.Modify {
		return r.pipeline.Run(item)
	}
	return item
}

// candidate is one entry in a node's selection set: either a direct item
// or a descent into a branch. Items and branches share one uniform draw,
// so a branch's weight is independent of its subtree size.
type candidate struct {
	item   *Item
	branch *Node
}

// pick gates on luck, then walks the tree until it lands on an item,
// runs out of luck, out of depth, or out of candidates.
//
// A gate passes when the drawn value is strictly below the luck, which
// makes luck 0 a certain miss and luck 1 a certain pass: Float64 draws
// from [0,1).
func pick(node *Node, depth int, luck float64, src Source) (Item, bool) {
	if src.Float64() >= luck {
		return Item{}, false
	}

	for {
		cands := candidates(node, depth)
		if len(cands) == 0 {
			return Item{}, false
		}

		chosen := cands[src.IntN(len(cands))]
		if chosen.item != nil {
			return chosen.item.Clone(), true
		}

		luck *= LuckDecay
		if src.Float64() >= luck {
			return Item{}, false
		}
		node = chosen.branch
		depth--
	}
}

// candidates collects a node's direct items plus, while depth remains,
// its branches in sorted name order.
func candidates(node *Node, depth int) []candidate {
	size := len(node.items)
	if depth > 0 {
		size += len(node.branches)
	}

	cands := make([]candidate, 0, size)
	for i := range node.items {
		cands = append(cands, candidate{item: &node.items[i]})
	}
	if depth > 0 {
		for _, name := range node.branchNames() {
			cands = append(cands, candidate{branch: node.branches[name]})
		}
	}
	return cands
}
