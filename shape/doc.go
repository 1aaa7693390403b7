// Package shape provides the type descriptor algebra: an immutable tree
// model of type shapes with lifetime-annotated borrows.
//
// Shape classes are mutually exclusive:
//   - primitive (fixed-width numerics, bool, string, unit)
//   - borrowed reference, with a Lifetime label
//   - fixed-size array
//   - borrowed slice view, with a Lifetime label
//   - tuple of any arity
//   - named container (Box, Option, Result, Atomic, Vec, Text, Map)
//
// Go types carry no lifetime information, so the labels live in the
// descriptors. FromReflectType derives a descriptor from a reflect.Type,
// modeling pointers and slices as anonymous-lifetime borrows.
package shape
