package lootbag

import "strings"

// String renders the tree in ascii form, items first, branches in sorted
// name order:
//
//	ROOT
//	├─ sword
//	└─ armor
//	   └─ boots
//
// The rendering is deterministic and intended for logs and tests.
func (n *Node) String() string {
	var b strings.Builder
	b.WriteString("ROOT\n")
	n.render(&b, "")
	return b.String()
}

func (n *Node) render(b *strings.Builder, indent string) {
	names := n.branchNames()
	total := len(n.items) + len(names)
	line := 0

	connector := func() string {
		line++
		if line == total {
			return "└─ "
		}
		return "├─ "
	}

	for _, it := range n.items {
		b.WriteString(indent)
		b.WriteString(connector())
		b.WriteString(it.String())
		b.WriteByte('\n')
	}
	for _, name := range names {
		b.WriteString(indent)
		last := line+1 == total
		b.WriteString(connector())
		b.WriteString(name)
		b.WriteByte('\n')

		childIndent := indent + "│  "
		if last {
			childIndent = indent + "   "
		}
		n.branches[name].render(b, childIndent)
	}
}
