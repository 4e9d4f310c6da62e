package entities

// Locale is a selectable UI language.
type Locale struct {
	Code  string
	Name  string
	Glyph string
}

// Table maps a locale code to its tree of strings. Interior nodes are
// map[string]any, leaves are strings (or other scalars).
type Table map[string]map[string]any

// Locales returns the locale codes present in the table.
func (t Table) Locales() []string {
	out := make([]string, 0, len(t))
	for code := range t {
		out = append(out, code)
	}
	return out
}
