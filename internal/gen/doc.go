// Package gen provides deterministic generation of the combinatorial
// registration files: one registerTupleArity call per covered tuple arity
// and one registerArrayLen call per covered array length, emitted from a
// single parameterized template instead of hand-written boilerplate.
//
// Generation uses text/template + go/format for readable, stable output.
package gen
