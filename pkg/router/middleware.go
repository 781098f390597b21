package router

// ComposeMiddleware builds a call chain from middleware and a final
// function. Middleware runs in order (first to last), each fully
// returning before the dispatcher moves on, with the final function at
// the end of the chain.
func ComposeMiddleware(ctx *Context, mw []Middleware, final func() error) error {
	if len(mw) == 0 {
		return final()
	}

	chain := final
	for i := len(mw) - 1; i >= 0; i-- {
		m := mw[i]
		next := chain
		chain = func() error {
			return m.Handle(ctx, next)
		}
	}

	return chain()
}

// Chain combines multiple middleware into one, preserving order.
func Chain(middleware ...Middleware) Middleware {
	return MiddlewareFunc(func(ctx *Context, next func() error) error {
		return ComposeMiddleware(ctx, middleware, next)
	})
}

// Skip bypasses a middleware when the condition holds.
func Skip(condition func(ctx *Context) bool, mw Middleware) Middleware {
	return MiddlewareFunc(func(ctx *Context, next func() error) error {
		if condition(ctx) {
			return next()
		}
		return mw.Handle(ctx, next)
	})
}

// Only runs a middleware exclusively when the condition holds.
func Only(condition func(ctx *Context) bool, mw Middleware) Middleware {
	return MiddlewareFunc(func(ctx *Context, next func() error) error {
		if !condition(ctx) {
			return next()
		}
		return mw.Handle(ctx, next)
	})
}
