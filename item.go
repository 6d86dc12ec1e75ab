package lootbag

import (
	"maps"
	"slices"
	"strings"
)

// Props holds the named string properties of an Item.
type Props map[string]string

// Item is a single lootable thing: a name plus optional properties.
//
// Items are plain values. Every item produced by a resolution is an
// independent copy, so callers may mutate results freely without
// affecting the tree or other draws.
type Item struct {
	Name  string
	Props Props
}

// NewItem creates an item with just a name.
func NewItem(name string) Item {
	return Item{Name: name}
}

// NewItemWith creates an item with a name and properties.
// The props map is copied, not retained.
func NewItemWith(name string, props Props) Item {
	return Item{Name: name, Props: maps.Clone(props)}
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	return Item{Name: i.Name, Props: maps.Clone(i.Props)}
}

// Extend derives a new item from this one: the given props overlay the
// existing ones, and the copy takes the new name.
func (i Item) Extend(name string, props Props) Item {
	merged := make(Props, len(i.Props)+len(props))
	maps.Copy(merged, i.Props)
	maps.Copy(merged, props)
	return Item{Name: name, Props: merged}
}

// HasProp reports whether the item carries the given property.
func (i Item) HasProp(key string) bool {
	_, ok := i.Props[key]
	return ok
}

// Prop returns the value of the given property, or "" if absent.
func (i Item) Prop(key string) string {
	return i.Props[key]
}

// WithProp returns a copy of the item with the property set,
// replacing any existing value.
func (i Item) WithProp(key, value string) Item {
	c := i.Clone()
	if c.Props == nil {
		c.Props = make(Props, 1)
	}
	c.Props[key] = value
	return c
}

// String renders the item as name{key=value,...}. Property order in this
// rendering is not part of the item's identity.
func (i Item) String() string {
	if len(i.Props) == 0 {
		return i.Name
	}

	var b strings.Builder
	b.WriteString(i.Name)
	b.WriteByte('{')
	for n, key := range slices.Sorted(maps.Keys(i.Props)) {
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(i.Props[key])
	}
	b.WriteByte('}')
	return b.String()
}
