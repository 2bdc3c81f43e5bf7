package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/widgets"
)

// Finder locates widgets in the tree.
type Finder interface {
	// Evaluate returns all matching widgets under root (depth-first pre-order).
	Evaluate(root core.Widget) []core.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []core.Widget
	finder  Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() core.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.describe()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() core.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) core.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.widgets), r.describe()))
	}
	return r.widgets[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []core.Widget {
	return r.widgets
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.widgets)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.widgets) > 0
}

// Box returns the bounding box of the first match. Panics if no matches.
func (r FinderResult) Box() layout.BoundingBox {
	return r.First().BoundingBox().Get()
}

type typeFinder struct {
	widgetType reflect.Type
}

func (f *typeFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, func(w core.Widget) bool {
		return reflect.TypeOf(w) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.widgetType)
}

// ByType returns a finder that matches widgets of type T, usually a
// pointer type such as *widgets.Button.
func ByType[T core.Widget]() Finder {
	return &typeFinder{widgetType: reflect.TypeFor[T]()}
}

type idFinder struct {
	id core.ID
}

func (f *idFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, func(w core.Widget) bool {
		return w.ID() == f.id
	})
}

func (f *idFinder) Description() string {
	return fmt.Sprintf("ByID(%s)", f.id)
}

// ByID returns a finder that matches the widget with the given id.
func ByID(id core.ID) Finder {
	return &idFinder{id: id}
}

// widgetText returns the visible text of labels and text inputs.
func widgetText(w core.Widget) (string, bool) {
	switch w := w.(type) {
	case *widgets.Label:
		return w.Text().Get(), true
	case *widgets.TextInput:
		return w.Text().Get(), true
	}
	return "", false
}

type textFinder struct {
	text string
}

func (f *textFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, func(w core.Widget) bool {
		s, ok := widgetText(w)
		return ok && s == f.text
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches a [widgets.Label] or
// [widgets.TextInput] showing exactly text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

type textContainingFinder struct {
	substring string
}

func (f *textContainingFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, func(w core.Widget) bool {
		s, ok := widgetText(w)
		return ok && strings.Contains(s, f.substring)
	})
}

func (f *textContainingFinder) Description() string {
	return fmt.Sprintf("ByTextContaining(%q)", f.substring)
}

// ByTextContaining returns a finder that matches a [widgets.Label] or
// [widgets.TextInput] whose text contains substring.
func ByTextContaining(substring string) Finder {
	return &textContainingFinder{substring: substring}
}

type predicateFinder struct {
	fn   func(core.Widget) bool
	desc string
}

func (f *predicateFinder) Evaluate(root core.Widget) []core.Widget {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(core.Widget) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds widgets matching 'matching' below widgets
// matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root core.Widget) []core.Widget {
	var results []core.Widget
	seen := make(map[core.ID]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range ancestor.Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match.ID()] {
					seen[match.ID()] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches widgets satisfying 'matching'
// that are descendants of widgets matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

func collectMatches(root core.Widget, predicate func(core.Widget) bool) []core.Widget {
	var results []core.Widget
	core.Walk(root, func(w core.Widget, _ int) bool {
		if predicate(w) {
			results = append(results, w)
		}
		return true
	})
	return results
}
