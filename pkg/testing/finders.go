package testing

import (
	"fmt"

	"github.com/go-drift/uicore/pkg/ui"
)

// Finder locates nodes in a UserInterface.
type Finder interface {
	// Evaluate returns all matching nodes in depth-first pre-order.
	Evaluate(u *ui.UserInterface) []ui.Handle
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	matches []ui.Handle
	finder  Finder
	ui      *ui.UserInterface
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() ui.Handle {
	if len(r.matches) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.description()))
	}
	return r.matches[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) ui.Handle {
	if index < 0 || index >= len(r.matches) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.matches), r.description()))
	}
	return r.matches[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []ui.Handle {
	return r.matches
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.matches)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.matches) > 0
}

// Widget returns the widget of the first match. Panics if no matches.
func (r FinderResult) Widget() *ui.Widget {
	w, ok := r.ui.Widget(r.First())
	if !ok {
		panic(fmt.Sprintf("Finder match no longer resolves: %s", r.description()))
	}
	return w
}

// predicateFinder matches nodes satisfying a predicate.
type predicateFinder struct {
	fn   func(ui.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(u *ui.UserInterface) []ui.Handle {
	return collectMatches(u, u.Root(), f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByName returns a finder that matches nodes whose widget has name.
func ByName(name string) Finder {
	return &predicateFinder{
		fn:   func(n ui.Node) bool { return n.AsWidget().Name() == name },
		desc: fmt.Sprintf("ByName(%q)", name),
	}
}

// ByKind returns a finder that matches nodes of the given variant.
func ByKind(kind ui.NodeKind) Finder {
	return &predicateFinder{
		fn:   func(n ui.Node) bool { return ui.KindOf(n) == kind },
		desc: fmt.Sprintf("ByKind(%v)", kind),
	}
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(ui.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds nodes matching 'matching' below nodes matching
// 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(u *ui.UserInterface) []ui.Handle {
	ancestors := f.of.Evaluate(u)
	if len(ancestors) == 0 {
		return nil
	}
	candidates := make(map[ui.Handle]bool)
	for _, h := range f.matching.Evaluate(u) {
		candidates[h] = true
	}
	var results []ui.Handle
	seen := make(map[ui.Handle]bool)
	for _, ancestor := range ancestors {
		w, ok := u.Widget(ancestor)
		if !ok {
			continue
		}
		for _, child := range w.Children() {
			for _, h := range collectMatches(u, child, func(ui.Node) bool { return true }) {
				if candidates[h] && !seen[h] {
					seen[h] = true
					results = append(results, h)
				}
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

// collectMatches walks the subtree at root depth first, parents before
// children, collecting nodes that satisfy the predicate.
func collectMatches(u *ui.UserInterface, root ui.Handle, predicate func(ui.Node) bool) []ui.Handle {
	var results []ui.Handle
	var walk func(h ui.Handle)
	walk = func(h ui.Handle) {
		n, ok := u.Node(h)
		if !ok {
			return
		}
		if predicate(n) {
			results = append(results, h)
		}
		for _, child := range n.AsWidget().Children() {
			walk(child)
		}
	}
	walk(root)
	return results
}
