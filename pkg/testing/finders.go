package testing

import (
	"fmt"

	"github.com/go-drift/switchkit/pkg/view"
)

// Finder locates views in a view tree.
type Finder interface {
	// Evaluate returns all matching views under root (depth-first pre-order).
	Evaluate(root *view.View) []*view.View
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	views  []*view.View
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *view.View {
	if len(r.views) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no views: %s", desc))
	}
	return r.views[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *view.View {
	if len(r.views) == 0 {
		return nil
	}
	return r.views[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*view.View {
	return r.views
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.views)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.views) > 0
}

// Find evaluates finder against the mounted tree.
func (t *SwitchTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{views: finder.Evaluate(t.root), finder: finder}
}

// ByName matches views whose Name equals name.
func ByName(name string) Finder {
	return predicateFinder{
		match: func(v *view.View) bool { return v.Name == name },
		desc:  fmt.Sprintf("ByName(%q)", name),
	}
}

// ByText matches views displaying exactly text.
func ByText(text string) Finder {
	return predicateFinder{
		match: func(v *view.View) bool { return v.Text == text },
		desc:  fmt.Sprintf("ByText(%q)", text),
	}
}

// ByPredicate matches views for which fn returns true.
func ByPredicate(fn func(*view.View) bool) Finder {
	return predicateFinder{match: fn, desc: "ByPredicate"}
}

type predicateFinder struct {
	match func(*view.View) bool
	desc  string
}

func (f predicateFinder) Evaluate(root *view.View) []*view.View {
	var out []*view.View
	walk(root, func(v *view.View) {
		if f.match(v) {
			out = append(out, v)
		}
	})
	return out
}

func (f predicateFinder) Description() string {
	return f.desc
}

func walk(v *view.View, visit func(*view.View)) {
	visit(v)
	for _, child := range v.Subviews() {
		walk(child, visit)
	}
}
