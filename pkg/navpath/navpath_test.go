package navpath

import (
	"errors"
	"testing"
)

func TestValidateNavPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"root", "/", "/", nil},
		{"simple", "/dashboard", "/dashboard", nil},
		{"with param segment", "/properties/42", "/properties/42", nil},
		{"trailing slash preserved", "/properties/", "/properties/", nil},
		{"encoded segment", "/properties/unit%2042", "/properties/unit%2042", nil},
		{"http URL rejected", "http://evil.example/x", "", ErrAbsoluteURL},
		{"https URL rejected", "https://evil.example/x", "", ErrAbsoluteURL},
		{"protocol-relative rejected", "//evil.example/x", "", ErrAbsoluteURL},
		{"missing leading slash", "dashboard", "", ErrInvalidPath},
		{"backslash rejected", "/a\\b", "", ErrBackslashInPath},
		{"literal NUL rejected", "/a\x00b", "", ErrNullByteInPath},
		{"encoded NUL rejected", "/a%00b", "", ErrNullByteInPath},
		{"bad escape rejected", "/a%GGb", "", ErrInvalidPercentEscape},
		{"truncated escape rejected", "/a%2", "", ErrInvalidPercentEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateNavPath(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateNavPath(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateNavPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitPathAndQuery(t *testing.T) {
	path, query := SplitPathAndQuery("/reservations?status=confirmed&page=2")
	if path != "/reservations" {
		t.Errorf("path = %q, want /reservations", path)
	}
	if query != "status=confirmed&page=2" {
		t.Errorf("query = %q", query)
	}

	path, query = SplitPathAndQuery("/dashboard")
	if path != "/dashboard" || query != "" {
		t.Errorf("got (%q, %q), want (/dashboard, \"\")", path, query)
	}
}

func TestStripBase(t *testing.T) {
	tests := []struct {
		path, base, want string
	}{
		{"/admin/dashboard", "/admin", "/dashboard"},
		{"/admin", "/admin", "/"},
		{"/admin/", "/admin", "/"},
		{"/dashboard", "", "/dashboard"},
		{"/dashboard", "/", "/dashboard"},
		{"/other/x", "/admin", "/other/x"},
		{"/administrator", "/admin", "/administrator"},
	}
	for _, tt := range tests {
		if got := StripBase(tt.path, tt.base); got != tt.want {
			t.Errorf("StripBase(%q, %q) = %q, want %q", tt.path, tt.base, got, tt.want)
		}
	}
}

func TestDecodeSegment(t *testing.T) {
	if got := DecodeSegment("unit%2042"); got != "unit 42" {
		t.Errorf("DecodeSegment = %q, want %q", got, "unit 42")
	}
	// Malformed escapes keep the raw segment.
	if got := DecodeSegment("50%"); got != "50%" {
		t.Errorf("DecodeSegment = %q, want raw %q", got, "50%")
	}
}
