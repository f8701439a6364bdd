package parser

// transformationTypes maps raw TYPE attribute values to the canonical names
// used everywhere downstream. Values missing from the table pass through
// unchanged, so mappings built with newer or custom transformation types
// keep parsing without a table update.
var transformationTypes = map[string]string{
	"Source Definition":  "Source Definition",
	"Source Qualifier":   "Source Qualifier",
	"Expression":         "Expression",
	"Lookup Procedure":   "Lookup",
	"Filter":             "Filter",
	"Aggregator":         "Aggregator",
	"Joiner":             "Joiner",
	"Router":             "Router",
	"Sorter":             "Sorter",
	"Update Strategy":    "Update Strategy",
	"Target Definition":  "Target Definition",
	"Normalizer":         "Normalizer",
	"Rank":               "Rank",
	"Sequence Generator": "Sequence Generator",
	"Stored Procedure":   "Stored Procedure",
	"Union":              "Union",
}

// CanonicalType resolves a raw transformation TYPE to its canonical name.
// Unknown types are returned as-is.
func CanonicalType(raw string) string {
	if canonical, ok := transformationTypes[raw]; ok {
		return canonical
	}
	return raw
}

// IsKnownType reports whether canonical is one of the table's canonical
// names. Passthrough types report false.
func IsKnownType(canonical string) bool {
	for _, c := range transformationTypes {
		if c == canonical {
			return true
		}
	}
	return false
}
