// Package widgets provides the stock leaves and containers.
//
// Leaves: [Slab] (solid color), [Label] (one line of text), [Image] and
// [TextInput]. Containers: [Box] (row or column), [Stack] (overlay),
// [Container] (anchored single child), [Wrapper] (margin) and [Button].
//
// # Widget Construction
//
// Every widget is created through a builder with WithX chaining. Build
// returns an *errors.BuildError when a required field is missing;
// MustBuild panics with it instead:
//
//	name := widgets.NewTextInput().WithPlaceholder("name").MustBuild()
//	ok := widgets.NewButton().
//	    WithChild(widgets.NewLabel().WithText("OK").MustBuild()).
//	    WithMargin(layout.EdgeInsetsSymmetric(8, 4)).
//	    OnClick(submit).
//	    MustBuild()
//	form := widgets.NewBox().
//	    WithDirection(layout.Vertical).
//	    WithChildren(name, ok).
//	    MustBuild()
//
// Containers expose their child list through ChildList (or SetChild for
// single-child containers); changes take effect while the tree runs.
package widgets
