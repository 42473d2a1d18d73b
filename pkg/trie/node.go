/*
Package trie implements the successor trie used for Harris-style morpheme boundary detection.

Every inserted word spells a path of single-character nodes below a START root, and the
node reached by the word's last character gets a terminal "#" child. The number of children
at each node along a path (its branching factor) is what the segment package turns into
split positions.

	t := trie.New()
	t.InsertText("compete competing competitive")
	t.Distribution("competitive") // [1 1 1 1 1 2 2 1 1 1 0]

Nodes exclusively own their children, kept in insertion order. A Trie is not safe for
concurrent mutation: build it fully, then query it.
*/
package trie

import (
	"errors"
	"strings"
)

const (
	// StartLabel is the label of the root node.
	StartLabel = "START"
	// EndLabel marks the end of an inserted word. End nodes never have children.
	EndLabel = "#"
)

var (
	// ErrChildNotFound is returned when a character path does not exist below a node,
	// or when a lookup addresses the terminal marker directly.
	ErrChildNotFound = errors.New("child not found")
	// ErrTerminalNode is returned when attaching children to a "#" node.
	ErrTerminalNode = errors.New("terminal node cannot have children")
	// ErrDuplicateChild is returned when a graft would give a node two children with the same label.
	ErrDuplicateChild = errors.New("duplicate child label")
)

// Node is a single trie position.
type Node struct {
	label    string
	children []*Node
}

func newNode(label string) *Node {
	return &Node{label: label}
}

// NewStart returns a detached START node.
func NewStart() *Node {
	return newNode(StartLabel)
}

// Label returns the node's character, StartLabel or EndLabel.
func (n *Node) Label() string {
	return n.label
}

// IsTerminal reports whether n is an end-of-word marker.
func (n *Node) IsTerminal() bool {
	return n.label == EndLabel
}

// Children returns the labels of n's children in insertion order.
func (n *Node) Children() []string {
	labels := make([]string, len(n.children))
	for i, c := range n.children {
		labels[i] = c.label
	}
	return labels
}

// HasEnd reports whether a word ends at n.
func (n *Node) HasEnd() bool {
	return n.indexOf(EndLabel) >= 0
}

// BranchingFactor is the number of children of n, except that a node whose only
// child is "#" counts as 0.
func (n *Node) BranchingFactor() int {
	if len(n.children) == 1 && n.children[0].IsTerminal() {
		return 0
	}
	return len(n.children)
}

// Count returns the number of character nodes below n, excluding end markers.
func (n *Node) Count() int {
	count := 0
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range cur.children {
			if c.IsTerminal() {
				continue
			}
			count++
			stack = append(stack, c)
		}
	}
	return count
}

func (n *Node) indexOf(label string) int {
	for i, c := range n.children {
		if c.label == label {
			return i
		}
	}
	return -1
}

// child returns the letter child for r, never an end marker.
func (n *Node) child(r rune) *Node {
	label := string(r)
	if label == EndLabel {
		return nil
	}
	if i := n.indexOf(label); i >= 0 {
		return n.children[i]
	}
	return nil
}

// String renders n as "label | [child child ...]".
func (n *Node) String() string {
	return n.label + " | [" + strings.Join(n.Children(), " ") + "]"
}
