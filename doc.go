// Package stringify renders arbitrary Go values as flat text without requiring
// types to implement their own conversion.
//
// A converter is resolved once per reflect.Type by a classifier (text, scalar,
// date, pointer, byte slice, string slice, generic slice/array, map, sequence,
// custom struct, fallback), cached, and reused. Composite converters resolve
// element converters through the same cache.
//
//	text, ok := stringify.String([]int{1, 2, 3}) // "1,2,3", true
//	text, ok = stringify.String(nil)             // "", false
//
// Slices and sequences resolve the element converter from the first non-nil
// element and reuse it for all remaining elements, so heterogeneous
// []interface{} values render later elements with the first element's converter.
package stringify
