package trie

import (
	"errors"
	"reflect"
	"testing"
)

const testCorpus = "classic clean clear coma compete competing competitive compile compilation " +
	"compute computing count counterproduction counterproductive countless court test tester trie tried"

func buildTestTrie() *Trie {
	t := New()
	t.InsertText(testCorpus)
	return t
}

func TestDistribution(t *testing.T) {
	tr := buildTestTrie()

	testCases := []struct {
		input       string
		expected    []int
		description string
	}{
		{"competitive", []int{2, 2, 2, 3, 1, 2, 2, 1, 1, 1, 0}, "Full word"},
		{"COMPETITIVE", []int{2, 2, 2, 3, 1, 2, 2, 1, 1, 1, 0}, "Uppercase lookup"},
		{"compet", []int{2, 2, 2, 3, 1, 2}, "Prefix of a word"},
		{"compx", []int{2, 2, 2, 3}, "Diverges from the trie"},
		{"xyz", []int{}, "No matching first character"},
		{"", []int{}, "Empty string"},
		{"tester", []int{2, 1, 1, 2, 1, 0}, "Word that extends another"},
		{"comp#", []int{2, 2, 2, 3}, "End marker is never followed"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := tr.Distribution(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Distribution(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestDistributionFromInnerNode(t *testing.T) {
	tr := buildTestTrie()
	node, err := tr.ChildOf("compet")
	if err != nil {
		t.Fatalf("ChildOf(compet): %v", err)
	}
	got := node.Distribution("itive")
	want := []int{2, 1, 1, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Distribution(itive) from [compet] = %v, want %v", got, want)
	}
}

func TestFinalBranch(t *testing.T) {
	tr := buildTestTrie()

	testCases := []struct {
		input    string
		expected int
	}{
		{"competitive", 7},
		{"compete", 6},
		{"tester", 4},
		{"classic", 2},
		{"unknown", 0},
		{"", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := tr.FinalBranch(tc.input); got != tc.expected {
				t.Errorf("FinalBranch(%q) = %d, want %d", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFinalBranchNoBranching(t *testing.T) {
	tr := New()
	tr.Insert("solo")
	if got := tr.FinalBranch("solo"); got != 0 {
		t.Errorf("FinalBranch(solo) = %d, want 0", got)
	}
}

func TestInsertAppendsEndMarker(t *testing.T) {
	tr := buildTestTrie()
	tr.Insert("comatose")

	coma, err := tr.ChildOf("coma")
	if err != nil {
		t.Fatalf("ChildOf(coma): %v", err)
	}
	if got := coma.Children(); !reflect.DeepEqual(got, []string{"#", "t"}) {
		t.Errorf("coma children = %v, want [# t]", got)
	}
	if got := coma.String(); got != "a | [# t]" {
		t.Errorf("coma.String() = %q", got)
	}

	end, err := tr.ChildOf("comatose")
	if err != nil {
		t.Fatalf("ChildOf(comatose): %v", err)
	}
	if got := end.Children(); !reflect.DeepEqual(got, []string{"#"}) {
		t.Errorf("comatose children = %v, want [#]", got)
	}
	if end.BranchingFactor() != 0 {
		t.Errorf("BranchingFactor at word end = %d, want 0", end.BranchingFactor())
	}
}

func TestInsertIdempotent(t *testing.T) {
	once := New()
	once.Insert("compete")

	twice := New()
	twice.Insert("compete")
	twice.Insert("compete")

	if once.Root().Dump().String() != twice.Root().Dump().String() {
		t.Errorf("double insert changed the trie:\n%s\n%s", once.Root().Dump(), twice.Root().Dump())
	}
	if !reflect.DeepEqual(once.Root().Dump(), twice.Root().Dump()) {
		t.Error("dumps differ after repeated insert")
	}
}

func TestInsertSharesPrefixes(t *testing.T) {
	tr := New()
	tr.Insert("compete")
	if tr.Size() != 7 {
		t.Fatalf("Size after compete = %d, want 7", tr.Size())
	}

	tr.Insert("competing")
	if tr.Size() != 10 {
		t.Errorf("Size after competing = %d, want 10 (only i-n-g added)", tr.Size())
	}

	node, err := tr.ChildOf("compet")
	if err != nil {
		t.Fatalf("ChildOf(compet): %v", err)
	}
	if got := node.Children(); !reflect.DeepEqual(got, []string{"e", "i"}) {
		t.Errorf("compet children = %v, want [e i]", got)
	}
}

func TestInsertOnTerminalIsNoop(t *testing.T) {
	tr := New()
	tr.Insert("ab")
	b, err := tr.ChildOf("ab")
	if err != nil {
		t.Fatalf("ChildOf(ab): %v", err)
	}
	end := b.children[0]
	end.Insert("xyz")
	if len(end.children) != 0 {
		t.Errorf("terminal node gained children: %v", end.Children())
	}
}

func TestInsertRejectsEndMarker(t *testing.T) {
	clean := New()
	clean.InsertAll([]string{"cat", "cow"})

	testCases := []struct {
		word        string
		description string
	}{
		{"c#t", "Marker inside word"},
		{"#", "Marker alone"},
		{"cow#", "Marker at the end"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			tr := New()
			tr.InsertAll([]string{tc.word, "cat", "cow"})
			if got, want := tr.Root().Dump().String(), clean.Root().Dump().String(); got != want {
				t.Errorf("trie with %q = %s, want %s", tc.word, got, want)
			}
			if got := tr.Distribution("cat"); !reflect.DeepEqual(got, []int{2, 1, 0}) {
				t.Errorf("Distribution(cat) = %v, want [2 1 0]", got)
			}
		})
	}
}

func TestInsertTextAndAll(t *testing.T) {
	a := New()
	a.InsertText("  Test\ttester\n\ntried ")

	b := New()
	b.InsertAll([]string{"test", "tester", "tried"})

	if a.Root().Dump().String() != b.Root().Dump().String() {
		t.Errorf("InsertText and InsertAll disagree:\n%s\n%s", a.Root().Dump(), b.Root().Dump())
	}
}

func TestChildOfErrors(t *testing.T) {
	tr := buildTestTrie()

	testCases := []struct {
		path        string
		description string
	}{
		{"cx", "Missing character"},
		{"coma#", "End marker addressed"},
		{"#", "Bare end marker"},
		{"competitivez", "Past the end of a word"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			node, err := tr.ChildOf(tc.path)
			if !errors.Is(err, ErrChildNotFound) {
				t.Errorf("ChildOf(%q) error = %v, want ErrChildNotFound", tc.path, err)
			}
			if node != nil {
				t.Errorf("ChildOf(%q) returned node %v", tc.path, node)
			}
		})
	}
}

func TestPrune(t *testing.T) {
	tr := buildTestTrie()

	node, err := tr.ChildOf("competi")
	if err != nil {
		t.Fatalf("ChildOf(competi): %v", err)
	}
	sub, err := node.Prune('t')
	if err != nil {
		t.Fatalf("Prune(t): %v", err)
	}
	if sub.Label() != "t" {
		t.Errorf("pruned label = %q, want t", sub.Label())
	}
	if got := node.Children(); !reflect.DeepEqual(got, []string{"n", "#"}) {
		t.Errorf("competi children after prune = %v, want [n #]", got)
	}
	if got, want := tr.Distribution("competing"), []int{2, 2, 2, 3, 1, 2, 2, 1, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("Distribution(competing) = %v, want %v", got, want)
	}
	if _, err := tr.ChildOf("competit"); !errors.Is(err, ErrChildNotFound) {
		t.Errorf("pruned path still reachable: %v", err)
	}
	if _, err := node.Prune('q'); !errors.Is(err, ErrChildNotFound) {
		t.Errorf("Prune(q) error = %v, want ErrChildNotFound", err)
	}
}

func TestPruneIgnoresCase(t *testing.T) {
	tr := New()
	tr.InsertAll([]string{"cat", "cow"})
	node, err := tr.ChildOf("C")
	if err != nil {
		t.Fatalf("ChildOf(C): %v", err)
	}
	sub, err := node.Prune('O')
	if err != nil {
		t.Fatalf("Prune(O): %v", err)
	}
	if sub.Label() != "o" {
		t.Errorf("pruned label = %q, want o", sub.Label())
	}
	if got := node.Children(); !reflect.DeepEqual(got, []string{"a", "#"}) {
		t.Errorf("children after prune = %v, want [a #]", got)
	}
}

func TestPruneKeepsExistingEnd(t *testing.T) {
	tr := New()
	tr.InsertAll([]string{"test", "tester"})
	node, _ := tr.ChildOf("test")
	if _, err := node.Prune('e'); err != nil {
		t.Fatalf("Prune(e): %v", err)
	}
	if got := node.Children(); !reflect.DeepEqual(got, []string{"#"}) {
		t.Errorf("children = %v, want [#]", got)
	}
}

func TestGraft(t *testing.T) {
	tr := buildTestTrie()
	before := tr.Distribution("competitive")

	ctrie, err := tr.Root().Prune('c')
	if err != nil {
		t.Fatalf("Prune(c): %v", err)
	}
	if got := tr.Distribution("competitive"); len(got) != 0 {
		t.Errorf("Distribution after prune = %v, want empty", got)
	}

	if err := tr.Root().Graft(ctrie); err != nil {
		t.Fatalf("Graft: %v", err)
	}
	if got := tr.Distribution("competitive"); !reflect.DeepEqual(got, before) {
		t.Errorf("Distribution after graft = %v, want %v", got, before)
	}

	if err := tr.Root().Graft(ctrie); !errors.Is(err, ErrDuplicateChild) {
		t.Errorf("second graft error = %v, want ErrDuplicateChild", err)
	}

	end := NewStart()
	end.Insert("a")
	a, _ := end.ChildOf("a")
	if err := a.children[0].Graft(newNode("z")); !errors.Is(err, ErrTerminalNode) {
		t.Errorf("graft onto end marker error = %v, want ErrTerminalNode", err)
	}
}

func TestDump(t *testing.T) {
	tr := New()
	tr.InsertAll([]string{"ab", "ac", "a"})

	want := Dump{
		Label: StartLabel,
		Children: []Dump{{
			Label: "a",
			Children: []Dump{
				{Label: "b", Children: []Dump{{Label: EndLabel}}},
				{Label: "c", Children: []Dump{{Label: EndLabel}}},
				{Label: EndLabel},
			},
		}},
	}
	got := tr.Root().Dump()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dump() = %+v, want %+v", got, want)
	}
	if s := got.String(); s != "START(a(b(#) c(#) #))" {
		t.Errorf("Dump().String() = %q", s)
	}
}

func TestBranchingFactor(t *testing.T) {
	tr := buildTestTrie()

	testCases := []struct {
		path     string
		expected int
	}{
		{"c", 2},
		{"comp", 3},
		{"compete", 0},
		{"test", 2},
		{"trie", 2},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			node, err := tr.ChildOf(tc.path)
			if err != nil {
				t.Fatalf("ChildOf(%q): %v", tc.path, err)
			}
			if got := node.BranchingFactor(); got != tc.expected {
				t.Errorf("BranchingFactor(%q) = %d, want %d", tc.path, got, tc.expected)
			}
		})
	}
}
