package router

import "strings"

// Click describes an anchor click as reported by the thin client. The
// interception policy decides from this value alone whether the click
// becomes an in-app navigation or stays with the platform.
type Click struct {
	// Button is the mouse button (0 = primary).
	Button int `json:"button"`

	// Modifier keys held during the click.
	CtrlKey  bool `json:"ctrlKey,omitempty"`
	ShiftKey bool `json:"shiftKey,omitempty"`
	AltKey   bool `json:"altKey,omitempty"`
	MetaKey  bool `json:"metaKey,omitempty"`

	// Href is the anchor's href attribute as written.
	Href string `json:"href"`

	// Target is the anchor's target attribute ("" or "_self" keep the
	// click in-app).
	Target string `json:"target,omitempty"`

	// Download is true when the anchor carries a download attribute.
	Download bool `json:"download,omitempty"`

	// DataLink marks an anchor explicitly opted in to client routing.
	DataLink bool `json:"dataLink,omitempty"`
}

// ShouldIntercept applies the link-interception policy: it returns the
// app-relative path to navigate to and whether the click should be
// intercepted at all. Non-primary buttons, modified clicks, external
// URLs, non-http schemes, pure fragments, downloads and targeted anchors
// are all left to the platform.
func ShouldIntercept(c Click, basePath string) (string, bool) {
	if c.Button != 0 {
		return "", false
	}
	if c.CtrlKey || c.ShiftKey || c.AltKey || c.MetaKey {
		return "", false
	}
	if c.Download {
		return "", false
	}
	if c.Target != "" && c.Target != "_self" {
		return "", false
	}

	href := strings.TrimSpace(c.Href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}
	lower := strings.ToLower(href)
	for _, scheme := range []string{"http://", "https://", "//", "mailto:", "tel:", "javascript:"} {
		if strings.HasPrefix(lower, scheme) {
			return "", false
		}
	}

	// In-app anchors are recognized by a same-app-relative href or the
	// explicit marker attribute.
	if !strings.HasPrefix(href, "/") {
		if !c.DataLink {
			return "", false
		}
		href = "/" + href
	}

	if basePath != "" && basePath != "/" {
		base := strings.TrimSuffix(basePath, "/")
		switch {
		case href == base:
			href = "/"
		case strings.HasPrefix(href, base+"/"):
			href = href[len(base):]
		case !c.DataLink:
			// A rooted href outside the base belongs to another app on
			// the same origin.
			return "", false
		}
	}

	return href, true
}

// InterceptClick applies ShouldIntercept and, when the click is ours,
// navigates. It reports whether the default platform navigation should
// be prevented.
func (n *Navigator) InterceptClick(c Click) bool {
	path, ok := ShouldIntercept(c, n.basePath)
	if !ok {
		return false
	}
	return n.Navigate(path) == nil
}
