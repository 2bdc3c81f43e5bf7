package testing

import (
	"errors"
	"sync/atomic"
	"testing"

	weaveerrors "github.com/go-drift/weave/pkg/errors"
	"github.com/go-drift/weave/pkg/layout"
	"github.com/go-drift/weave/pkg/widgets"
)

func TestTap_Button(t *testing.T) {
	tester := NewTesterWithT(t)
	var clicks atomic.Int32
	button := widgets.NewButton().
		WithChild(widgets.NewLabel().WithText("Go").MustBuild()).
		OnClick(func() { clicks.Add(1) }).
		MustBuild()
	if err := tester.PumpWidget(button); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	for i := int32(1); i <= 3; i++ {
		if err := tester.Tap(ByText("Go")); err != nil {
			t.Fatalf("Tap failed: %v", err)
		}
		if err := tester.PumpUntil(func() bool { return clicks.Load() == i }); err != nil {
			t.Fatalf("clicks = %d, want %d", clicks.Load(), i)
		}
	}
}

func TestTap_NoMatch(t *testing.T) {
	tester := NewTesterWithT(t)
	if err := tester.PumpWidget(slab()); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	if err := tester.Tap(ByText("nothing")); err == nil {
		t.Error("expected error for unmatched finder")
	}
}

func TestTapAt_NoSubscriber(t *testing.T) {
	tester := NewTesterWithT(t)
	if err := tester.PumpWidget(slab()); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	err := tester.TapAt(layout.Point{X: 1, Y: 1})
	if !errors.Is(err, weaveerrors.ErrNoSubscriber) {
		t.Errorf("err = %v, want ErrNoSubscriber", err)
	}
}

func TestType_FocusedInput(t *testing.T) {
	tester := NewTesterWithT(t)
	input := widgets.NewTextInput().MustBuild()
	if err := tester.PumpWidget(input); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	if err := tester.Type("a"); err == nil {
		t.Error("Type should fail before anything has focus")
	}

	if err := tester.Tap(ByType[*widgets.TextInput]()); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	if err := tester.PumpUntil(func() bool { return input.Focused().Get() }); err != nil {
		t.Fatal("input should gain focus")
	}
	if err := tester.Type("abc"); err != nil {
		t.Fatalf("Type: %v", err)
	}
	if err := tester.PumpUntil(func() bool { return input.Text().Get() == "abc" }); err != nil {
		t.Errorf("text = %q", input.Text().Get())
	}
}
