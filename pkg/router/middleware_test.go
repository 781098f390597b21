package router

import (
	"errors"
	"testing"
)

func TestComposeMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return MiddlewareFunc(func(c *Context, next func() error) error {
			order = append(order, name+":before")
			err := next()
			order = append(order, name+":after")
			return err
		})
	}

	err := ComposeMiddleware(&Context{}, []Middleware{mw("a"), mw("b")}, func() error {
		order = append(order, "final")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a:before", "b:before", "final", "b:after", "a:after"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestComposeMiddlewareEmptyChain(t *testing.T) {
	ran := false
	err := ComposeMiddleware(&Context{}, nil, func() error {
		ran = true
		return nil
	})
	if err != nil || !ran {
		t.Fatalf("empty chain: ran=%v err=%v", ran, err)
	}
}

func TestComposeMiddlewareErrorStopsChain(t *testing.T) {
	boom := errors.New("denied")
	reached := false

	err := ComposeMiddleware(&Context{}, []Middleware{
		MiddlewareFunc(func(c *Context, next func() error) error { return boom }),
	}, func() error {
		reached = true
		return nil
	})

	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	if reached {
		t.Error("final function ran after middleware error")
	}
}

func TestChainCombines(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return MiddlewareFunc(func(c *Context, next func() error) error {
			order = append(order, name)
			return next()
		})
	}

	combined := Chain(mw("a"), mw("b"))
	err := combined.Handle(&Context{}, func() error {
		order = append(order, "next")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "next" {
		t.Errorf("order = %v", order)
	}
}

func TestSkipAndOnly(t *testing.T) {
	calls := 0
	counting := MiddlewareFunc(func(c *Context, next func() error) error {
		calls++
		return next()
	})
	isPrivate := func(c *Context) bool { return c.Path == "/private" }

	skip := Skip(isPrivate, counting)
	skip.Handle(&Context{Path: "/private"}, func() error { return nil })
	if calls != 0 {
		t.Error("Skip ran the middleware when the condition held")
	}
	skip.Handle(&Context{Path: "/public"}, func() error { return nil })
	if calls != 1 {
		t.Error("Skip suppressed the middleware when the condition did not hold")
	}

	calls = 0
	only := Only(isPrivate, counting)
	only.Handle(&Context{Path: "/private"}, func() error { return nil })
	if calls != 1 {
		t.Error("Only skipped the middleware when the condition held")
	}
	only.Handle(&Context{Path: "/public"}, func() error { return nil })
	if calls != 1 {
		t.Error("Only ran the middleware when the condition did not hold")
	}
}

func TestContextValues(t *testing.T) {
	type key struct{}
	c := &Context{}
	if c.Value(key{}) != nil {
		t.Error("empty context returned a value")
	}
	c.SetValue(key{}, "user-1")
	if got := c.Value(key{}); got != "user-1" {
		t.Errorf("Value = %v, want user-1", got)
	}
}
