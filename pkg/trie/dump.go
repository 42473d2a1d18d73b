package trie

import "strings"

// Dump is a nested snapshot of a subtrie, for inspection only.
type Dump struct {
	Label    string `msgpack:"l" json:"label"`
	Children []Dump `msgpack:"c,omitempty" json:"children,omitempty"`
}

// Dump snapshots the subtrie rooted at n.
func (n *Node) Dump() Dump {
	d := Dump{Label: n.label}
	if len(n.children) > 0 {
		d.Children = make([]Dump, len(n.children))
		for i, c := range n.children {
			d.Children[i] = c.Dump()
		}
	}
	return d
}

// String renders the snapshot as label(child child ...), leaves as bare labels.
func (d Dump) String() string {
	var sb strings.Builder
	d.write(&sb)
	return sb.String()
}

func (d Dump) write(sb *strings.Builder) {
	sb.WriteString(d.Label)
	if len(d.Children) == 0 {
		return
	}
	sb.WriteByte('(')
	for i, c := range d.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		c.write(sb)
	}
	sb.WriteByte(')')
}
