package trie

import (
	"fmt"
	"strings"
)

// Trie is a successor trie rooted at a START node.
type Trie struct {
	root *Node
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: NewStart()}
}

// Root returns the START node.
func (t *Trie) Root() *Node {
	return t.root
}

// Insert adds word below the root.
func (t *Trie) Insert(word string) {
	t.root.Insert(word)
}

// InsertAll adds every word in order.
func (t *Trie) InsertAll(words []string) {
	for _, w := range words {
		t.root.Insert(w)
	}
}

// InsertText splits text on whitespace and inserts each token.
func (t *Trie) InsertText(text string) {
	t.InsertAll(strings.Fields(text))
}

// ChildOf follows path from the root.
func (t *Trie) ChildOf(path string) (*Node, error) {
	return t.root.ChildOf(path)
}

// Distribution returns the successor quantity distribution of word from the root.
func (t *Trie) Distribution(word string) []int {
	return t.root.Distribution(word)
}

// Size returns the number of character nodes in the trie.
func (t *Trie) Size() int {
	return t.root.Count()
}

// FinalBranch returns the rune offset just after the last position in word where the
// trie branches (factor > 1), ignoring the word's final character. It returns 0 when the
// path never branches, so the whole word is the candidate suffix.
func (t *Trie) FinalBranch(word string) int {
	dist := t.Distribution(word)
	if len(dist) == 0 {
		return 0
	}
	dist = dist[:len(dist)-1]
	for i := len(dist) - 1; i >= 0; i-- {
		if dist[i] > 1 {
			return i + 1
		}
	}
	return 0
}

// Insert lowercases word and extends the path below n one character at a time,
// then marks the end of the word. Inserting the same word again changes nothing.
// Insert is a no-op on a terminal node and for words containing the end marker.
func (n *Node) Insert(word string) {
	if n.IsTerminal() || word == "" || strings.Contains(word, EndLabel) {
		return
	}
	cur := n
	for _, r := range strings.ToLower(word) {
		label := string(r)
		i := cur.indexOf(label)
		if i < 0 {
			cur.children = append(cur.children, newNode(label))
			i = len(cur.children) - 1
		}
		cur = cur.children[i]
	}
	if !cur.HasEnd() {
		cur.children = append(cur.children, newNode(EndLabel))
	}
}

// ChildOf follows each character of path from n and returns the node reached.
// The terminal marker cannot be addressed: a path ending in "#" fails with ErrChildNotFound.
func (n *Node) ChildOf(path string) (*Node, error) {
	if strings.HasSuffix(path, EndLabel) {
		return nil, fmt.Errorf("%w: end nodes cannot be returned (%q)", ErrChildNotFound, path)
	}
	cur := n
	for _, r := range strings.ToLower(path) {
		next := cur.child(r)
		if next == nil {
			return nil, fmt.Errorf("%w: [%c] is not a child of node [%s]", ErrChildNotFound, r, cur.label)
		}
		cur = next
	}
	return cur, nil
}

// Distribution walks s from n and records the branching factor of each node arrived at.
// The walk stops at the first character with no matching child, so the result may be
// shorter than s.
func (n *Node) Distribution(s string) []int {
	flat := make([]int, 0, len(s))
	cur := n
	for _, r := range strings.ToLower(s) {
		next := cur.child(r)
		if next == nil {
			break
		}
		cur = next
		flat = append(flat, cur.BranchingFactor())
	}
	return flat
}
