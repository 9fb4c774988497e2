// Package transform normalizes the strings of declarations before they are
// validated and emitted: trimming and whitespace collapsing, applied to a
// single string or recursively to the string fields of a struct.
package transform
