// Package render pretty-prints model output on a best-effort basis.
// Model replies are supposed to be JSON but are never validated, so a
// reply that does not parse is passed through untouched.
package render

import "encoding/json"

// Pretty re-indents s when it parses as JSON and reports whether it
// did. On any parse failure the input comes back unchanged.
func Pretty(s string) (string, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s, false
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return s, false
	}
	return string(b), true
}
