package trie

import (
	"fmt"
	"strings"
)

// Prune detaches and returns the subtrie under n's child labelled r, case-insensitively.
// If n has no end marker afterwards one is added, so n still ends a reachable word.
func (n *Node) Prune(r rune) (*Node, error) {
	label := strings.ToLower(string(r))
	i := n.indexOf(label)
	if i < 0 {
		return nil, fmt.Errorf("%w: [%s] is not a child of node [%s]", ErrChildNotFound, label, n.label)
	}
	sub := n.children[i]
	n.children = append(n.children[:i:i], n.children[i+1:]...)
	if !n.HasEnd() {
		n.children = append(n.children, newNode(EndLabel))
	}
	return sub, nil
}

// Graft attaches a detached subtrie as the last child of n.
func (n *Node) Graft(sub *Node) error {
	if n.IsTerminal() {
		return fmt.Errorf("%w: graft [%s] onto [%s]", ErrTerminalNode, sub.label, n.label)
	}
	if n.indexOf(sub.label) >= 0 {
		return fmt.Errorf("%w: [%s] already under [%s]", ErrDuplicateChild, sub.label, n.label)
	}
	n.children = append(n.children, sub)
	return nil
}
