// Package escape converts between literal text and its backslash-escaped
// pattern form.
//
// Both functions are pure. The lookup tables are built once at package
// initialization and never written afterwards.
package escape
