package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
	"github.com/go-drift/widgetkit/pkg/scene/memscene"
)

// Finder locates visible primitives in a scene.
type Finder interface {
	// Evaluate returns all matching nodes in paint order.
	Evaluate(s *memscene.Scene) []*memscene.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*memscene.Node
	finder Finder
}

// Find evaluates f against the tester's scene.
func (t *WidgetTester) Find(f Finder) FinderResult {
	return FinderResult{nodes: f.Evaluate(t.scene), finder: f}
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *memscene.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *memscene.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *memscene.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in paint order.
func (r FinderResult) All() []*memscene.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Bounds returns the bounds of the first match. Panics if no matches.
func (r FinderResult) Bounds() graphics.Rect {
	return r.First().Bounds()
}

// --- Concrete finders ---

type predicateFinder struct {
	fn   func(*memscene.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(s *memscene.Scene) []*memscene.Node {
	var results []*memscene.Node
	s.Walk(func(n *memscene.Node, _ int) {
		if f.fn(n) {
			results = append(results, n)
		}
	})
	return results
}

func (f *predicateFinder) Description() string { return f.desc }

// ByShape matches primitives of the given shape.
func ByShape(shape scene.Shape) Finder {
	return &predicateFinder{
		fn:   func(n *memscene.Node) bool { return n.Shape() == shape },
		desc: fmt.Sprintf("ByShape(%s)", shape),
	}
}

// ByText matches text primitives whose content equals text exactly.
func ByText(text string) Finder {
	return &predicateFinder{
		fn:   func(n *memscene.Node) bool { return n.Shape() == scene.ShapeText && n.Content() == text },
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining matches text primitives whose content contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(n *memscene.Node) bool {
			return n.Shape() == scene.ShapeText && strings.Contains(n.Content(), substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByFill matches primitives filled with c.
func ByFill(c graphics.Color) Finder {
	return &predicateFinder{
		fn:   func(n *memscene.Node) bool { return n.Shape() != scene.ShapeGroup && n.FillColor() == c },
		desc: fmt.Sprintf("ByFill(%s)", c),
	}
}

// ByPredicate matches nodes satisfying fn.
func ByPredicate(fn func(*memscene.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate"}
}

// Within matches primitives whose bounds lie inside r, such as the parts
// of one widget.
func Within(r graphics.Rect, matching Finder) Finder {
	return &filterFinder{
		matching: matching,
		keep: func(n *memscene.Node) bool {
			b := n.Bounds()
			return b.Min.X >= r.Min.X && b.Min.Y >= r.Min.Y && b.Max.X <= r.Max.X && b.Max.Y <= r.Max.Y
		},
		desc: fmt.Sprintf("Within(%v, %s)", r, matching.Description()),
	}
}

type filterFinder struct {
	matching Finder
	keep     func(*memscene.Node) bool
	desc     string
}

func (f *filterFinder) Evaluate(s *memscene.Scene) []*memscene.Node {
	var results []*memscene.Node
	for _, n := range f.matching.Evaluate(s) {
		if f.keep(n) {
			results = append(results, n)
		}
	}
	return results
}

func (f *filterFinder) Description() string { return f.desc }

// descendantFinder finds nodes matching 'matching' that are descendants
// of nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(s *memscene.Scene) []*memscene.Node {
	ancestors := f.of.Evaluate(s)
	if len(ancestors) == 0 {
		return nil
	}
	var results []*memscene.Node
	for _, n := range f.matching.Evaluate(s) {
		for _, a := range ancestors {
			if isAncestorOf(a, n) {
				results = append(results, n)
				break
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching'
// that are descendants of nodes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds nodes matching 'matching' that are ancestors of
// nodes matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(s *memscene.Scene) []*memscene.Node {
	descendants := f.of.Evaluate(s)
	if len(descendants) == 0 {
		return nil
	}
	var results []*memscene.Node
	for _, candidate := range f.matching.Evaluate(s) {
		for _, d := range descendants {
			if isAncestorOf(candidate, d) {
				results = append(results, candidate)
				break
			}
		}
	}
	return results
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches nodes satisfying 'matching'
// that are ancestors of nodes matching 'of'.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

// isAncestorOf reports whether descendant sits somewhere below ancestor.
func isAncestorOf(ancestor, descendant *memscene.Node) bool {
	for p := descendant.Parent(); p != nil; p = p.Parent() {
		if n, ok := p.(*memscene.Node); ok && n == ancestor {
			return true
		}
	}
	return false
}
