package router

import "testing"

func noop(*Context) error { return nil }

func TestTableAddRouteAndFind(t *testing.T) {
	table := NewTable()
	table.AddRoute("/properties", noop).
		AddRoute("/properties/:id", noop)

	route, captures, ok := table.Find("/properties/42")
	if !ok {
		t.Fatal("expected match for /properties/42")
	}
	if route.Pattern != "/properties/:id" {
		t.Errorf("matched %q, want /properties/:id", route.Pattern)
	}
	if len(captures) != 1 || captures[0] != "42" {
		t.Errorf("captures = %v, want [42]", captures)
	}
}

func TestTableParamCountMatchesCaptures(t *testing.T) {
	table := NewTable()
	table.AddRoute("/a/:x/b/:y/:z", noop)

	route, captures, ok := table.Find("/a/1/b/2/3")
	if !ok {
		t.Fatal("expected match")
	}
	names := route.ParamNames()
	if len(names) != len(captures) {
		t.Fatalf("paramNames (%d) != captures (%d)", len(names), len(captures))
	}
	want := []string{"x", "y", "z"}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("paramNames[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestTableInsertionOrderWins(t *testing.T) {
	first := func(*Context) error { return nil }
	second := func(*Context) error { return nil }

	table := NewTable()
	table.AddRoute("/properties/:id", first).
		AddRoute("/properties/new", second)

	// "/properties/new" satisfies both patterns; the earlier
	// registration must win.
	route, _, ok := table.Find("/properties/new")
	if !ok {
		t.Fatal("expected match")
	}
	if route.Pattern != "/properties/:id" {
		t.Errorf("matched %q, want first-registered /properties/:id", route.Pattern)
	}
}

func TestTableStrictMatching(t *testing.T) {
	table := NewTable()
	table.AddRoute("/clients", noop)

	tests := []struct {
		path string
		want bool
	}{
		{"/clients", true},
		{"/clients/", false}, // trailing-slash mismatch
		{"/Clients", false},  // case-sensitive
		{"/clients/1", false},
		{"/client", false},
	}
	for _, tt := range tests {
		if _, _, ok := table.Find(tt.path); ok != tt.want {
			t.Errorf("Find(%q) = %v, want %v", tt.path, ok, tt.want)
		}
	}
}

func TestTableParamIsSingleSegment(t *testing.T) {
	table := NewTable()
	table.AddRoute("/properties/:id", noop)

	if _, _, ok := table.Find("/properties/1/photos"); ok {
		t.Error(":id must not span multiple segments")
	}
	if _, _, ok := table.Find("/properties/"); ok {
		t.Error(":id must not match an empty segment")
	}
}

func TestTableLiteralMetacharacters(t *testing.T) {
	table := NewTable()
	table.AddRoute("/files/report.v1", noop)

	if _, _, ok := table.Find("/files/report.v1"); !ok {
		t.Fatal("literal segment with dot should match itself")
	}
	// The dot is escaped, not a regex wildcard.
	if _, _, ok := table.Find("/files/reportXv1"); ok {
		t.Error("dot in literal segment matched as wildcard")
	}
}

func TestTableInvalidRegistrationPanics(t *testing.T) {
	t.Run("pattern without leading slash", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		NewTable().AddRoute("dashboard", noop)
	})

	t.Run("nil handler", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		NewTable().AddRoute("/dashboard", nil)
	})
}

func TestTableRoutesListsInOrder(t *testing.T) {
	table := NewTable()
	table.AddRoute("/dashboard", noop).
		AddRoute("/properties", noop).
		AddRoute("/properties/:id", noop)

	routes := table.Routes()
	want := []string{"/dashboard", "/properties", "/properties/:id"}
	if len(routes) != len(want) {
		t.Fatalf("Routes() len = %d, want %d", len(routes), len(want))
	}
	for i, pattern := range want {
		if routes[i].Pattern != pattern {
			t.Errorf("Routes()[%d] = %q, want %q", i, routes[i].Pattern, pattern)
		}
	}
}
