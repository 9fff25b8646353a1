package stringify

// Strategy identifies how values of a type are rendered
type Strategy int

const (
	// Fallback renders with the builtin representation
	Fallback Strategy = iota
	// Text renders strings through the safe text rule
	Text
	// Scalar renders bool and numeric kinds
	Scalar
	// Date renders time.Time and time compatible structs
	Date
	// NullableDate renders pointer to date, nil as null
	NullableDate
	// Pointer renders the pointed value, nil as null
	Pointer
	// ByteArray decodes byte slice as text
	ByteArray
	// StringArray joins string elements
	StringArray
	// GenericArray joins slice or array elements
	GenericArray
	// Map joins key/value entries
	Map
	// Sequence joins range-over-func sequence items
	Sequence
	// Custom renders with a converter supplied by Resolver
	Custom
)

var strategyNames = [...]string{
	Fallback:     "Fallback",
	Text:         "Text",
	Scalar:       "Scalar",
	Date:         "Date",
	NullableDate: "NullableDate",
	Pointer:      "Pointer",
	ByteArray:    "ByteArray",
	StringArray:  "StringArray",
	GenericArray: "GenericArray",
	Map:          "Map",
	Sequence:     "Sequence",
	Custom:       "Custom",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "Unknown"
	}
	return strategyNames[s]
}

// IsComposite returns true if strategy renders elements with nested converters
func (s Strategy) IsComposite() bool {
	switch s {
	case StringArray, GenericArray, Map, Sequence:
		return true
	}
	return false
}
