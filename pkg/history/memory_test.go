package history

import "testing"

func TestMemoryPushAndCurrent(t *testing.T) {
	h := NewMemory("/")

	h.Push("/dashboard", nil)
	h.Push("/properties/42", map[string]any{"from": "list"})

	if got := h.Current().Location; got != "/properties/42" {
		t.Fatalf("Current() = %q, want /properties/42", got)
	}
	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
	state, ok := h.Current().State.(map[string]any)
	if !ok || state["from"] != "list" {
		t.Errorf("state not carried: %v", h.Current().State)
	}
}

func TestMemoryReplace(t *testing.T) {
	h := NewMemory("/")
	h.Push("/dashboard", nil)
	h.Replace("/clients", nil)

	if got := h.Current().Location; got != "/clients" {
		t.Fatalf("Current() = %q, want /clients", got)
	}
	if h.Len() != 2 {
		t.Errorf("Replace changed stack length: %d", h.Len())
	}
}

func TestMemoryBackForwardNotifies(t *testing.T) {
	h := NewMemory("/")
	h.Push("/a", nil)
	h.Push("/b", nil)

	var seen []string
	remove := h.Listen(func(e Entry) { seen = append(seen, e.Location) })
	defer remove()

	h.Back()
	h.Back()
	h.Forward()

	want := []string{"/a", "/", "/a"}
	if len(seen) != len(want) {
		t.Fatalf("listener saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("notification %d = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestMemoryBackAtOldestIsNoop(t *testing.T) {
	h := NewMemory("/")
	notified := false
	h.Listen(func(Entry) { notified = true })

	h.Back()

	if notified {
		t.Error("Back() at oldest entry must not notify")
	}
	if got := h.Current().Location; got != "/" {
		t.Errorf("Current() = %q, want /", got)
	}
}

func TestMemoryPushDropsForwardEntries(t *testing.T) {
	h := NewMemory("/")
	h.Push("/a", nil)
	h.Push("/b", nil)
	h.Back()
	h.Push("/c", nil)

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	// Forward history was discarded; Forward is now a no-op.
	h.Forward()
	if got := h.Current().Location; got != "/c" {
		t.Errorf("Current() = %q, want /c", got)
	}
}

func TestMemoryListenerRemoval(t *testing.T) {
	h := NewMemory("/")
	h.Push("/a", nil)

	count := 0
	remove := h.Listen(func(Entry) { count++ })
	h.Back()
	remove()
	h.Forward()

	if count != 1 {
		t.Errorf("listener called %d times after removal, want 1", count)
	}
}
