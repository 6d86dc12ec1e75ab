package lootbag

import (
	"strings"
	"testing"
)

func TestNewItemWith_CopiesProps(t *testing.T) {
	props := Props{"color": "black"}
	item := NewItemWith("hat", props)

	props["color"] = "red"

	if got := item.Prop("color"); got != "black" {
		t.Errorf("Prop(color) = %q, want %q (source map must not be retained)", got, "black")
	}
}

func TestItem_Clone_Independent(t *testing.T) {
	orig := NewItemWith("hat", Props{"color": "black"})
	clone := orig.Clone()
	clone.Props["color"] = "red"

	if got := orig.Prop("color"); got != "black" {
		t.Errorf("original mutated through clone: Prop(color) = %q", got)
	}
}

func TestItem_Extend(t *testing.T) {
	hat := NewItemWith("hat", Props{
		"color": "black",
		"size":  "large",
	})
	cap := hat.Extend("cap", Props{"size": "small"})

	if cap.Name != "cap" {
		t.Errorf("Name = %q, want %q", cap.Name, "cap")
	}
	if got := cap.Prop("color"); got != "black" {
		t.Errorf("Prop(color) = %q, want inherited %q", got, "black")
	}
	if got := cap.Prop("size"); got != "small" {
		t.Errorf("Prop(size) = %q, want overridden %q", got, "small")
	}
	if got := hat.Prop("size"); got != "large" {
		t.Errorf("Extend mutated the source: Prop(size) = %q", got)
	}
}

func TestItem_WithProp(t *testing.T) {
	plain := NewItem("ring")
	shiny := plain.WithProp("glow", "yes")

	if plain.HasProp("glow") {
		t.Error("WithProp mutated the source item")
	}
	if got := shiny.Prop("glow"); got != "yes" {
		t.Errorf("Prop(glow) = %q, want %q", got, "yes")
	}
}

func TestItem_String(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want []string // fragments that must appear
	}{
		{
			name: "no props",
			item: NewItem("crown"),
			want: []string{"crown"},
		},
		{
			name: "with props",
			item: NewItemWith("hat", Props{"color": "black", "size": "small"}),
			want: []string{"hat{", "color=black", "size=small", "}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.item.String()
			for _, frag := range tt.want {
				if !strings.Contains(got, frag) {
					t.Errorf("String() = %q, missing %q", got, frag)
				}
			}
		})
	}
}
