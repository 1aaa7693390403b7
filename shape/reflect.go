package shape

import (
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
)

// ErrUnrepresentable reports a Go type that has no counterpart in the shape
// algebra at all (channels, functions, interfaces, unsafe pointers,
// recursive types). It is distinct from a representable shape that a
// registry does not cover.
var ErrUnrepresentable = errors.New("type is not representable as a shape")

// atomicCells maps the fixed sync/atomic cell types to their container
// shapes. The generic atomic.Pointer[T] is deliberately absent: its type
// parameter is not recoverable through reflect without poking at internals.
var atomicCells = map[reflect.Type]Shape{
	reflect.TypeFor[atomic.Bool]():    Atomic(Prim(KindBool)),
	reflect.TypeFor[atomic.Int32]():   Atomic(Prim(KindInt32)),
	reflect.TypeFor[atomic.Int64]():   Atomic(Prim(KindInt64)),
	reflect.TypeFor[atomic.Uint32]():  Atomic(Prim(KindUint32)),
	reflect.TypeFor[atomic.Uint64]():  Atomic(Prim(KindUint64)),
	reflect.TypeFor[atomic.Uintptr](): Atomic(Prim(KindUintptr)),
}

// FromReflectType derives the shape of a Go type:
//
//   - fixed-width numeric, boolean and string types become primitives
//   - struct{} becomes the empty tuple, other structs become tuples of
//     their field shapes in declaration order
//   - pointers become references and slices become slice views, both
//     borrowed with the anonymous lifetime (a Go pointer is a borrow of its
//     referent as far as the descriptor is concerned)
//   - arrays keep their length, maps become the Map container, and the
//     fixed sync/atomic cells become the Atomic container
//
// Channels, functions, interfaces, unsafe pointers and recursive types
// return ErrUnrepresentable.
func FromReflectType(rtype reflect.Type) (Shape, error) {
	return fromReflectType(rtype, nil)
}

func fromReflectType(rtype reflect.Type, visiting []reflect.Type) (Shape, error) {
	if rtype == nil {
		return Shape{}, fmt.Errorf("%w: nil reflect.Type", ErrUnrepresentable)
	}

	if s, ok := atomicCells[rtype]; ok {
		return s, nil
	}

	// Shapes are finite trees, so a type that reaches itself has no shape.
	for _, seen := range visiting {
		if seen == rtype {
			return Shape{}, fmt.Errorf("%w: recursive type %s", ErrUnrepresentable, rtype)
		}
	}
	visiting = append(visiting, rtype)

	if kind := FromReflectKind(rtype.Kind()); kind != 0 {
		return Prim(kind), nil
	}

	switch rtype.Kind() {
	default:
		return Shape{}, fmt.Errorf("%w: %s (%s)", ErrUnrepresentable, rtype, rtype.Kind())

	case reflect.Ptr:
		elem, err := fromReflectType(rtype.Elem(), visiting)
		if err != nil {
			return Shape{}, err
		}

		return Ref(elem), nil

	case reflect.Slice:
		elem, err := fromReflectType(rtype.Elem(), visiting)
		if err != nil {
			return Shape{}, err
		}

		return SliceOf(elem), nil

	case reflect.Array:
		elem, err := fromReflectType(rtype.Elem(), visiting)
		if err != nil {
			return Shape{}, err
		}

		return ArrayOf(rtype.Len(), elem), nil

	case reflect.Map:
		key, err := fromReflectType(rtype.Key(), visiting)
		if err != nil {
			return Shape{}, err
		}

		value, err := fromReflectType(rtype.Elem(), visiting)
		if err != nil {
			return Shape{}, err
		}

		return MapOf(key, value), nil

	case reflect.Struct:
		elems := make([]Shape, 0, rtype.NumField())
		for i := range rtype.NumField() {
			elem, err := fromReflectType(rtype.Field(i).Type, visiting)
			if err != nil {
				return Shape{}, fmt.Errorf("field %s of %s: %w", rtype.Field(i).Name, rtype, err)
			}

			elems = append(elems, elem)
		}

		return TupleOf(elems...), nil
	}
}
