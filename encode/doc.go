// Package encode renders the ordered mappings produced by the document
// assembler as JSON or YAML text.
//
// A mapping is a [Map] whose values are scalars, []any sequences or nested
// *Map values. Keys are emitted in insertion order by both encoders, so two
// mappings built by the same sequence of Set calls render to identical bytes.
package encode
