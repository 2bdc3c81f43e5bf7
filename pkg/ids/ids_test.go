package ids

import "testing"

func TestNewIsUniqueAndNonNil(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if id.IsNil() {
			t.Fatal("New returned the nil ID")
		}
		if seen[id] {
			t.Fatalf("duplicate ID %s", id.Full())
		}
		seen[id] = true
	}
}

func TestParseRoundTrip(t *testing.T) {
	id := New()
	got, err := Parse(id.Full())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != id {
		t.Errorf("Parse(%q) = %s, want %s", id.Full(), got.Full(), id.Full())
	}
	if len(id.String()) != 8 {
		t.Errorf("String() = %q, want 8 characters", id.String())
	}
	if _, err := Parse("not-a-uuid"); err == nil {
		t.Error("expected error for malformed input")
	}
}
