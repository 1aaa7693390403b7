package staticize

import (
	"reflect"

	"staticize/options"
	"staticize/shape"
)

// defaultRegistry carries every feature: a Go process always has the full
// standard runtime available, unlike the no-std environments the feature
// split exists for.
var defaultRegistry = New(options.FeatureAll)

// Default returns the process-wide registry with all features enabled.
func Default() *Registry {
	return defaultRegistry
}

// Of derives the shape descriptor of a Go type. Pointers and slices come
// back as anonymous-lifetime borrows; Resolve widens them to 'static.
func Of[T any]() (shape.Shape, error) {
	return shape.FromReflectType(reflect.TypeFor[T]())
}

// StaticOf derives the shape of a Go type and resolves its longest-lived
// form against the default registry.
func StaticOf[T any]() (shape.Shape, error) {
	s, err := Of[T]()
	if err != nil {
		return shape.Shape{}, err
	}

	return defaultRegistry.Resolve(s)
}

// MustStaticOf is StaticOf for types known to be supported.
// It panics otherwise.
func MustStaticOf[T any]() shape.Shape {
	s, err := StaticOf[T]()
	if err != nil {
		panic(err)
	}

	return s
}

// TypeIDFor returns the identifier of the longest-lived form of a Go type.
// Types whose static forms coincide share an ID.
func TypeIDFor[T any]() (TypeID, error) {
	s, err := Of[T]()
	if err != nil {
		return 0, err
	}

	return defaultRegistry.StaticTypeID(s)
}

// TypeNameFor returns the diagnostic rendering of the longest-lived form of
// a Go type.
func TypeNameFor[T any]() (string, error) {
	s, err := Of[T]()
	if err != nil {
		return "", err
	}

	return defaultRegistry.StaticTypeName(s)
}
