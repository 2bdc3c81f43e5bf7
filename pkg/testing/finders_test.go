package testing

import (
	"testing"

	"github.com/go-drift/weave/pkg/core"
	"github.com/go-drift/weave/pkg/widgets"
)

func mountForm(t *testing.T) (*Tester, *widgets.Box) {
	t.Helper()
	tester := NewTesterWithT(t)
	hello := widgets.NewLabel().WithText("Hello").MustBuild()
	world := widgets.NewLabel().WithText("Hello World").MustBuild()
	button := widgets.NewButton().WithChild(world).MustBuild()
	input := widgets.NewTextInput().WithText("typed").MustBuild()
	root := widgets.NewBox().WithChildren(hello, button, input).MustBuild()
	if err := tester.PumpWidget(root); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	return tester, root
}

func TestByType(t *testing.T) {
	tester, _ := mountForm(t)
	if got := tester.Find(ByType[*widgets.Label]()).Count(); got != 2 {
		t.Errorf("expected 2 labels, got %d", got)
	}
	if !tester.Find(ByType[*widgets.Button]()).Exists() {
		t.Error("expected to find the button")
	}
	if tester.Find(ByType[*widgets.Stack]()).Exists() {
		t.Error("expected no stack")
	}
}

func TestByText(t *testing.T) {
	tester, _ := mountForm(t)
	if got := tester.Find(ByText("Hello")).Count(); got != 1 {
		t.Errorf("expected exactly one match, got %d", got)
	}
	if !tester.Find(ByText("typed")).Exists() {
		t.Error("ByText should match text inputs")
	}
}

func TestByTextContaining(t *testing.T) {
	tester, _ := mountForm(t)
	if got := tester.Find(ByTextContaining("Hello")).Count(); got != 2 {
		t.Errorf("expected 2 matches, got %d", got)
	}
}

func TestByID(t *testing.T) {
	tester, root := mountForm(t)
	if got := tester.Find(ByID(root.ID())).First(); got != core.Widget(root) {
		t.Error("ByID should find the root")
	}
}

func TestByPredicate(t *testing.T) {
	tester, _ := mountForm(t)
	leaves := tester.Find(ByPredicate(func(w core.Widget) bool { return len(w.Children()) == 0 }))
	if leaves.Count() != 3 {
		t.Errorf("expected 3 leaves, got %d", leaves.Count())
	}
}

func TestDescendant(t *testing.T) {
	tester, _ := mountForm(t)
	result := tester.Find(Descendant(ByType[*widgets.Button](), ByType[*widgets.Label]()))
	if result.Count() != 1 {
		t.Fatalf("expected 1 label inside the button, got %d", result.Count())
	}
	if s, _ := widgetText(result.First()); s != "Hello World" {
		t.Errorf("expected the button label, got %q", s)
	}
}

func TestFinderResult_FirstOrNil(t *testing.T) {
	tester, _ := mountForm(t)
	if tester.Find(ByText("missing")).FirstOrNil() != nil {
		t.Error("expected nil for no matches")
	}
}

func TestFinderResult_First_PanicsOnEmpty(t *testing.T) {
	tester, _ := mountForm(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	tester.Find(ByText("missing")).First()
}

func TestFind_NoRoot(t *testing.T) {
	tester := NewTesterWithT(t)
	if tester.Find(ByText("x")).Exists() {
		t.Error("nothing mounted, nothing found")
	}
}
