// Package conv provides the builtin value-to-text conversion used when no
// dedicated strategy applies: primitives through strconv, types with their own
// textual representation (Stringer, TextMarshaler, error) through it, and
// everything else through fmt.
package conv
