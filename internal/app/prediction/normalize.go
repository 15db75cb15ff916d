package prediction

import "strings"

// Normalize maps a free-form symptom name to its canonical lookup key:
// lower-cased, trimmed, with space/underscore runs collapsed to a single
// underscore. "Skin Rash", "skin_rash" and " skin  rash " all yield
// "skin_rash". No fuzzy matching; an unmapped key simply scores nothing.
func Normalize(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '_' || r == '\t'
	})
	return strings.Join(fields, "_")
}
