package router

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Registration errors. Bad patterns are wiring mistakes, so AddRoute
// panics with one of these wrapped.
var (
	ErrInvalidPattern = errors.New("route pattern must start with '/'")
	ErrNilHandler     = errors.New("route handler must not be nil")
)

// Table holds the ordered collection of registered routes and answers
// "which route matches this path, with what captures?".
//
// Lookup is first-match over insertion order: when two patterns can both
// match a concrete path, the one registered first wins. Matching is
// strict — case-sensitive and slash-sensitive, so a trailing-slash
// mismatch between pattern and path does not match.
type Table struct {
	mu     sync.RWMutex
	routes []*Route
}

// NewTable creates an empty route table.
func NewTable() *Table { return &Table{} }

// AddRoute compiles a pattern and appends it to the table. It returns
// the table so call sites can register many routes in one expression.
//
// Each ":name" segment becomes a single-segment capture; every other
// segment matches literally. No uniqueness check is performed.
func (t *Table) AddRoute(pattern string, handler Handler) *Table {
	if !strings.HasPrefix(pattern, "/") {
		panic(fmt.Errorf("%w: %q", ErrInvalidPattern, pattern))
	}
	if handler == nil {
		panic(fmt.Errorf("%w: %q", ErrNilHandler, pattern))
	}

	matcher, paramNames := compilePattern(pattern)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.routes = append(t.routes, &Route{
		Pattern:    pattern,
		Handler:    handler,
		matcher:    matcher,
		paramNames: paramNames,
	})
	return t
}

// Find returns the first route whose matcher accepts the path, together
// with its positional captures. O(number of routes), which is fine at
// the route counts this serves (tens, not thousands).
func (t *Table) Find(path string) (*Route, []string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, route := range t.routes {
		if m := route.matcher.FindStringSubmatch(path); m != nil {
			return route, m[1:], true
		}
	}
	return nil, nil, false
}

// Routes returns the registered routes in insertion order.
func (t *Table) Routes() []*Route {
	t.mu.RLock()
	defer t.mu.RUnlock()
	routes := make([]*Route, len(t.routes))
	copy(routes, t.routes)
	return routes
}

// Len reports the number of registered routes.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.routes)
}

// compilePattern turns a path template into an anchored matcher.
// ":name" segments become "([^/]+)" captures; literal segments are
// regex-escaped. By construction the number of capture groups always
// equals the number of param names.
func compilePattern(pattern string) (*regexp.Regexp, []string) {
	var (
		expr       strings.Builder
		paramNames []string
	)
	expr.WriteString("^")

	segments := strings.Split(pattern, "/")
	for i, seg := range segments {
		if i > 0 {
			expr.WriteString("/")
		}
		if name, ok := strings.CutPrefix(seg, ":"); ok && name != "" {
			paramNames = append(paramNames, name)
			expr.WriteString("([^/]+)")
		} else {
			expr.WriteString(regexp.QuoteMeta(seg))
		}
	}
	expr.WriteString("$")

	return regexp.MustCompile(expr.String()), paramNames
}
