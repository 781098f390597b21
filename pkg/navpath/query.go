package navpath

import (
	"net/url"
	"strings"
)

// ParseQuery decodes a raw query string ("a=1&b=2") into a flat map.
//
// Unlike url.Values this keeps a single value per key: later occurrences
// of the same key overwrite earlier ones. A bare key with no "=" maps to
// the empty string. Malformed escapes keep the raw token; a broken query
// parameter never fails a navigation.
func ParseQuery(raw string) map[string]string {
	query := make(map[string]string)
	if raw == "" {
		return query
	}
	raw = strings.TrimPrefix(raw, "?")

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		query[key] = value
	}
	return query
}

// EncodeQuery renders a query map back into a sorted, encoded query
// string without the leading "?". An empty map yields "".
func EncodeQuery(query map[string]string) string {
	if len(query) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range query {
		values.Set(k, v)
	}
	return values.Encode()
}
