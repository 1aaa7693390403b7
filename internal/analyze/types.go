package analyze

import (
	"fmt"
	"go/types"

	"staticize/shape"
)

// basicKinds maps go/types basic kinds to primitive shape kinds. Untyped
// kinds never reach ShapeOf: named types always have concrete underlying
// types.
var basicKinds = map[types.BasicKind]shape.KindEnum{
	types.Bool:       shape.KindBool,
	types.Int:        shape.KindInt,
	types.Int8:       shape.KindInt8,
	types.Int16:      shape.KindInt16,
	types.Int32:      shape.KindInt32,
	types.Int64:      shape.KindInt64,
	types.Uint:       shape.KindUint,
	types.Uint8:      shape.KindUint8,
	types.Uint16:     shape.KindUint16,
	types.Uint32:     shape.KindUint32,
	types.Uint64:     shape.KindUint64,
	types.Uintptr:    shape.KindUintptr,
	types.Float32:    shape.KindFloat32,
	types.Float64:    shape.KindFloat64,
	types.Complex64:  shape.KindComplex64,
	types.Complex128: shape.KindComplex128,
	types.String:     shape.KindString,
}

// atomicCells maps the fixed sync/atomic cell type names to their container
// shapes, matching the recognition set of the reflect bridge.
var atomicCells = map[string]shape.Shape{
	"Bool":    shape.Atomic(shape.Prim(shape.KindBool)),
	"Int32":   shape.Atomic(shape.Prim(shape.KindInt32)),
	"Int64":   shape.Atomic(shape.Prim(shape.KindInt64)),
	"Uint32":  shape.Atomic(shape.Prim(shape.KindUint32)),
	"Uint64":  shape.Atomic(shape.Prim(shape.KindUint64)),
	"Uintptr": shape.Atomic(shape.Prim(shape.KindUintptr)),
}

// ShapeOf derives the shape of a go/types type, following the same mapping
// as shape.FromReflectType. Named types are analyzed by their underlying
// type; recursive types return shape.ErrUnrepresentable.
func ShapeOf(t types.Type) (shape.Shape, error) {
	return shapeOf(t, nil)
}

func shapeOf(t types.Type, visiting []*types.Named) (shape.Shape, error) {
	switch tt := t.(type) {
	default:
		return shape.Shape{}, fmt.Errorf("%w: %s", shape.ErrUnrepresentable, types.TypeString(t, nil))

	case *types.Alias:
		return shapeOf(types.Unalias(tt), visiting)

	case *types.Named:
		if obj := tt.Obj(); obj.Pkg() != nil && obj.Pkg().Path() == "sync/atomic" {
			if s, ok := atomicCells[obj.Name()]; ok {
				return s, nil
			}
		}

		// Shapes are finite trees, so a type that reaches itself has no shape.
		for _, seen := range visiting {
			if seen == tt {
				return shape.Shape{}, fmt.Errorf("%w: recursive type %s",
					shape.ErrUnrepresentable, tt.Obj().Name())
			}
		}

		return shapeOf(tt.Underlying(), append(visiting, tt))

	case *types.Basic:
		kind, ok := basicKinds[tt.Kind()]
		if !ok {
			return shape.Shape{}, fmt.Errorf("%w: basic type %s", shape.ErrUnrepresentable, tt.Name())
		}

		return shape.Prim(kind), nil

	case *types.Pointer:
		elem, err := shapeOf(tt.Elem(), visiting)
		if err != nil {
			return shape.Shape{}, err
		}

		return shape.Ref(elem), nil

	case *types.Slice:
		elem, err := shapeOf(tt.Elem(), visiting)
		if err != nil {
			return shape.Shape{}, err
		}

		return shape.SliceOf(elem), nil

	case *types.Array:
		elem, err := shapeOf(tt.Elem(), visiting)
		if err != nil {
			return shape.Shape{}, err
		}

		return shape.ArrayOf(int(tt.Len()), elem), nil

	case *types.Map:
		key, err := shapeOf(tt.Key(), visiting)
		if err != nil {
			return shape.Shape{}, err
		}

		value, err := shapeOf(tt.Elem(), visiting)
		if err != nil {
			return shape.Shape{}, err
		}

		return shape.MapOf(key, value), nil

	case *types.Struct:
		elems := make([]shape.Shape, 0, tt.NumFields())
		for i := range tt.NumFields() {
			field := tt.Field(i)

			elem, err := shapeOf(field.Type(), visiting)
			if err != nil {
				return shape.Shape{}, fmt.Errorf("field %s: %w", field.Name(), err)
			}

			elems = append(elems, elem)
		}

		return shape.TupleOf(elems...), nil
	}
}
