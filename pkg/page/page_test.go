package page

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// stubController records lifecycle calls.
type stubController struct {
	name     string
	loads    int
	destroys int
	loadErr  error
}

func (s *stubController) Load(ctx context.Context, c Container, params map[string]string) error {
	s.loads++
	if s.loadErr != nil {
		return s.loadErr
	}
	c.SetContent(fmt.Sprintf("page:%s id:%s", s.name, params["id"]))
	return nil
}

func (s *stubController) Destroy() { s.destroys++ }

func TestDeriveName(t *testing.T) {
	tests := []struct {
		pattern, want string
	}{
		{"/properties", "properties"},
		{"/properties/:id", "properties"},
		{"/", "index"},
		{"/:id", "index"},
		{"/admin/reservations/:id", "admin"},
	}
	for _, tt := range tests {
		if got := DeriveName(tt.pattern); got != tt.want {
			t.Errorf("DeriveName(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	ctrl := &stubController{name: "dashboard"}

	if err := r.Register("dashboard", ctrl); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register("dashboard", &stubController{}); !errors.Is(err, ErrDuplicatePage) {
		t.Errorf("duplicate Register error = %v, want ErrDuplicatePage", err)
	}
	if err := r.Register("broken", nil); !errors.Is(err, ErrNilController) {
		t.Errorf("nil Register error = %v, want ErrNilController", err)
	}

	got, ok := r.Get("dashboard")
	if !ok || got != ctrl {
		t.Fatal("Get did not return the registered controller")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get returned a controller for an unregistered name")
	}
}

func TestCoordinatorDestroysOutgoingBeforeLoad(t *testing.T) {
	reg := NewRegistry()
	a := &stubController{name: "a"}
	b := &stubController{name: "b"}
	reg.Register("a", a)
	reg.Register("b", b)

	co := NewCoordinator(reg, NewBuffer(), nil)

	if err := co.Show(context.Background(), 1, "a", nil); err != nil {
		t.Fatalf("Show(a) failed: %v", err)
	}
	if err := co.Show(context.Background(), 2, "b", map[string]string{"id": "42"}); err != nil {
		t.Fatalf("Show(b) failed: %v", err)
	}

	if a.destroys != 1 {
		t.Errorf("outgoing controller destroyed %d times, want 1", a.destroys)
	}
	if b.loads != 1 {
		t.Errorf("incoming controller loaded %d times, want 1", b.loads)
	}
	if got := co.Container().Content(); got != "page:b id:42" {
		t.Errorf("container content = %q", got)
	}
	if co.Active() != b {
		t.Error("Active() is not the incoming controller")
	}
}

func TestCoordinatorDropsStaleLoad(t *testing.T) {
	reg := NewRegistry()
	slow := &stubController{name: "slow"}
	fast := &stubController{name: "fast"}
	reg.Register("slow", slow)
	reg.Register("fast", fast)

	co := NewCoordinator(reg, NewBuffer(), nil)

	// The newer navigation (id 2) lands first; the older one (id 1)
	// arrives late and must be dropped without touching the screen.
	if err := co.Show(context.Background(), 2, "fast", nil); err != nil {
		t.Fatalf("Show(fast) failed: %v", err)
	}
	if err := co.Show(context.Background(), 1, "slow", nil); err != nil {
		t.Fatalf("stale Show returned error: %v", err)
	}

	if slow.loads != 0 {
		t.Error("stale navigation loaded its controller")
	}
	if fast.destroys != 0 {
		t.Error("stale navigation destroyed the active controller")
	}
	if co.Active() != fast {
		t.Error("stale navigation replaced the active controller")
	}
}

func TestCoordinatorUnknownPage(t *testing.T) {
	co := NewCoordinator(NewRegistry(), NewBuffer(), nil)
	err := co.Show(context.Background(), 1, "ghost", nil)
	if !errors.Is(err, ErrUnknownPage) {
		t.Errorf("error = %v, want ErrUnknownPage", err)
	}
}

func TestCoordinatorLoadErrorPropagates(t *testing.T) {
	reg := NewRegistry()
	boom := errors.New("backend down")
	reg.Register("dashboard", &stubController{name: "dashboard", loadErr: boom})

	co := NewCoordinator(reg, NewBuffer(), nil)
	if err := co.Show(context.Background(), 1, "dashboard", nil); !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped %v", err, boom)
	}
}
