// Package staticize maps type shapes to their longest-lived ("static")
// form: the same shape with every interior borrow widened to the
// process-lifetime scope.
//
// Go cannot express lifetimes in its type system, so the mapping operates on
// explicit descriptors (package shape) through a runtime registry instead of
// compile-time trait resolution. Two bridges connect descriptors to real Go
// types:
//
//   - Of / StaticOf / TypeIDFor / TypeNameFor derive descriptors through
//     reflect at runtime
//   - the staticize-gen check command derives them through go/types at build
//     time, restoring an earliest-possible rejection for unsupported types
//
// The registered shape set is fixed when a Registry is built: primitives,
// references, slice views, arrays of covered lengths, tuples of arity 0..16,
// and optionally two owned-container sets (options.FeatureAllocLite and
// options.FeatureFullStd). Shapes outside the set resolve to ErrUnsupported.
package staticize
