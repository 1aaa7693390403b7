package staticize

import (
	"errors"
	"fmt"

	"staticize/options"
	"staticize/shape"
)

//go:generate go run ./cmd/staticize-gen gen -out .

// ErrUnsupported reports a shape outside the registered set. In a language
// with compile-time capability dispatch this would be a build failure; here
// it is the documented runtime equivalent.
var ErrUnsupported = errors.New("no static form registered for shape")

// Registry maps every registered shape to its longest-lived ("static")
// form. Registrations are independent per primitive kind, per tuple arity,
// per array length and per container; nothing is derived from another
// registration. The set is fixed when the registry is built.
type Registry struct {
	prims        map[shape.KindEnum]struct{}
	refs         bool
	slices       bool
	arrayLens    map[int]struct{}
	tupleArities map[int]struct{}
	containers   map[shape.ContainerEnum]struct{}
}

// New builds a registry with the base set always installed and the container
// sets selected by features added on top. Features strictly add coverage:
// the resolution of any base-covered shape is the same for every feature
// mask.
func New(features options.FeatureEnum) *Registry {
	r := &Registry{
		prims:        make(map[shape.KindEnum]struct{}),
		arrayLens:    make(map[int]struct{}),
		tupleArities: make(map[int]struct{}),
		containers:   make(map[shape.ContainerEnum]struct{}),
	}

	registerPrimitives(r)
	r.registerRefs()
	r.registerSlices()
	registerArrayLens(r)    // arrays_gen.go
	registerTupleArities(r) // tuples_gen.go

	if features.Has(options.FeatureAllocLite) {
		registerAllocLite(r)
	}

	if features.Has(options.FeatureFullStd) {
		registerFullStd(r)
	}

	return r
}

// registerPrimitives installs one registration per primitive kind. Each
// primitive is its own static form.
func registerPrimitives(r *Registry) {
	r.registerPrimitive(shape.KindBool)
	r.registerPrimitive(shape.KindInt)
	r.registerPrimitive(shape.KindInt8)
	r.registerPrimitive(shape.KindInt16)
	r.registerPrimitive(shape.KindInt32)
	r.registerPrimitive(shape.KindInt64)
	r.registerPrimitive(shape.KindUint)
	r.registerPrimitive(shape.KindUint8)
	r.registerPrimitive(shape.KindUint16)
	r.registerPrimitive(shape.KindUint32)
	r.registerPrimitive(shape.KindUint64)
	r.registerPrimitive(shape.KindUintptr)
	r.registerPrimitive(shape.KindFloat32)
	r.registerPrimitive(shape.KindFloat64)
	r.registerPrimitive(shape.KindComplex64)
	r.registerPrimitive(shape.KindComplex128)
	r.registerPrimitive(shape.KindString)
	r.registerPrimitive(shape.KindUnit)
}

func (r *Registry) registerPrimitive(kind shape.KindEnum) {
	if !kind.IsValid() {
		panic("primitive registration for invalid kind: " + kind.String())
	}

	r.prims[kind] = struct{}{}
}

func (r *Registry) registerRefs() {
	r.refs = true
}

func (r *Registry) registerSlices() {
	r.slices = true
}

func (r *Registry) registerArrayLen(length int) {
	if length < 0 {
		panic("array length registration must be non-negative")
	}

	r.arrayLens[length] = struct{}{}
}

func (r *Registry) registerTupleArity(arity int) {
	if arity < 0 {
		panic("tuple arity registration must be non-negative")
	}

	r.tupleArities[arity] = struct{}{}
}

func (r *Registry) registerContainer(container shape.ContainerEnum) {
	if !container.IsValid() {
		panic("container registration for invalid container: " + container.String())
	}

	r.containers[container] = struct{}{}
}

// Resolve maps a shape to its longest-lived form:
//
//   - a registered primitive maps to itself
//   - &'a T maps to &'static Resolve(T)
//   - &'a [T] maps to &'static [Resolve(T)]
//   - [N]T maps to [N]Resolve(T) for every covered length N
//   - an arity-k tuple maps positionwise, for every covered arity k
//   - a registered container maps to the same container over the resolved
//     type parameters
//
// Resolution never changes the structural class, array length or tuple
// arity of a shape; it only widens lifetimes. It returns ErrUnsupported for
// shapes outside the registered set, naming the offending part.
func (r *Registry) Resolve(s shape.Shape) (shape.Shape, error) {
	switch s.Class() {
	default:
		return shape.Shape{}, fmt.Errorf("%w: %s", ErrUnsupported, s)

	case shape.ClassPrimitive:
		if _, ok := r.prims[s.Kind()]; !ok {
			return shape.Shape{}, fmt.Errorf("%w: primitive %s", ErrUnsupported, s)
		}

		return s, nil

	case shape.ClassRef:
		if !r.refs {
			return shape.Shape{}, fmt.Errorf("%w: reference %s", ErrUnsupported, s)
		}

		elem, err := r.Resolve(s.Elem())
		if err != nil {
			return shape.Shape{}, err
		}

		return shape.RefIn(shape.Static, elem), nil

	case shape.ClassSlice:
		if !r.slices {
			return shape.Shape{}, fmt.Errorf("%w: slice %s", ErrUnsupported, s)
		}

		elem, err := r.Resolve(s.Elem())
		if err != nil {
			return shape.Shape{}, err
		}

		return shape.SliceIn(shape.Static, elem), nil

	case shape.ClassArray:
		if _, ok := r.arrayLens[s.Len()]; !ok {
			return shape.Shape{}, fmt.Errorf("%w: array length %d not covered in %s", ErrUnsupported, s.Len(), s)
		}

		elem, err := r.Resolve(s.Elem())
		if err != nil {
			return shape.Shape{}, err
		}

		return shape.ArrayOf(s.Len(), elem), nil

	case shape.ClassTuple:
		if _, ok := r.tupleArities[s.Arity()]; !ok {
			return shape.Shape{}, fmt.Errorf("%w: tuple arity %d not covered in %s", ErrUnsupported, s.Arity(), s)
		}

		elems := s.Elems()
		for i, elem := range elems {
			resolved, err := r.Resolve(elem)
			if err != nil {
				return shape.Shape{}, err
			}

			elems[i] = resolved
		}

		return shape.TupleOf(elems...), nil

	case shape.ClassContainer:
		if _, ok := r.containers[s.Container()]; !ok {
			return shape.Shape{}, fmt.Errorf("%w: container %s", ErrUnsupported, s)
		}

		params := s.Elems()
		for i, param := range params {
			resolved, err := r.Resolve(param)
			if err != nil {
				return shape.Shape{}, err
			}

			params[i] = resolved
		}

		return shape.ContainerOf(s.Container(), params...), nil
	}
}

// StaticTypeID returns the identifier of the longest-lived form of s, never
// of s itself: shapes that differ only in lifetimes share an ID.
func (r *Registry) StaticTypeID(s shape.Shape) (TypeID, error) {
	static, err := r.Resolve(s)
	if err != nil {
		return 0, err
	}

	return idOf(static), nil
}

// StaticTypeName returns a human-readable, not necessarily unique rendering
// of the longest-lived form of s. It is diagnostic text, never an equality
// or dispatch key.
func (r *Registry) StaticTypeName(s shape.Shape) (string, error) {
	static, err := r.Resolve(s)
	if err != nil {
		return "", err
	}

	return static.String(), nil
}
