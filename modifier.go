package lootbag

// Modifier rewrites a resolved item before it reaches the caller. A
// modifier must be pure: it returns a new item and never touches the
// resolution's random source.
type Modifier interface {
	Apply(Item) Item
}

// ModifierFunc adapts a plain function to the Modifier interface.
type ModifierFunc func(Item) Item

// Apply calls f.
func (f ModifierFunc) Apply(item Item) Item { return f(item) }

// Pipeline is an ordered list of modifiers. When a drop has Modify set,
// every yielded item is threaded through the pipeline in registration
// order; the output of one modifier feeds the next. An empty pipeline
// passes items through unchanged.
type Pipeline struct {
	mods []Modifier
}

// NewPipeline builds a pipeline from the given modifiers, in order.
func NewPipeline(mods ...Modifier) *Pipeline {
	return &Pipeline{mods: mods}
}

// Append adds a modifier at the end of the pipeline.
func (p *Pipeline) Append(m Modifier) *Pipeline {
	p.mods = append(p.mods, m)
	return p
}

// Len returns the number of registered modifiers.
func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}
	return len(p.mods)
}

// Run threads the item through every modifier in order.
func (p *Pipeline) Run(item Item) Item {
	if p == nil {
		return item
	}
	for _, m := range p.mods {
		item = m.Apply(item)
	}
	return item
}
