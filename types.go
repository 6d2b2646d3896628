package collection

// Structured is implemented by values that can represent themselves as a
// plain string-keyed mapping. ToMap, Merge, and the JSON/YAML encoders
// convert such values recursively; everything else passes through unchanged.
//
// Collection itself satisfies Structured, so nested collections convert
// through the same interface.
type Structured interface {
	PlainMap() map[string]any
}

// Touchable marks contained values that react to Collection.Touch.
// Values that do not implement it are skipped silently.
type Touchable interface {
	Touch(args ...any)
}

// Transform rewrites a single value during Collection.Map.
type Transform func(v any) any
