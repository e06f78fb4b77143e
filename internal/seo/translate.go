package seo

// Translator maps source-language category names to localized display
// names. The table is configuration, not logic.
type Translator struct {
	table map[string]string
}

// NewTranslator creates a translator over the given lookup table.
func NewTranslator(table map[string]string) *Translator {
	return &Translator{table: table}
}

// Translate returns the localized name for a category. Unknown inputs
// pass through unchanged; lookup never fails.
func (t *Translator) Translate(name string) string {
	if localized, ok := t.table[name]; ok {
		return localized
	}

	return name
}
