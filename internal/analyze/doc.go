// Package analyze provides build-time staticizability checking.
//
// It uses golang.org/x/tools/go/packages with go/types to derive shape
// descriptors for every exported named type of the loaded packages and
// resolves them against a registry. Unsupported types are reported with
// their package path, type name and the unsupported part of the shape,
// before any of the affected code runs.
//
// The go/types derivation mirrors shape.FromReflectType: the two bridges
// produce Equal shapes for the same Go type.
package analyze
