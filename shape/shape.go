package shape

import (
	"strconv"
	"strings"
)

// Shape is an immutable descriptor of one type shape: a primitive, a
// borrowed reference, a fixed-size array, a borrowed slice view, a tuple, or
// a named container. Shapes are finite trees; borrowed nodes carry a
// Lifetime label, everything else is structural.
//
// The zero Shape has ClassUnknown and is not a valid descriptor.
type Shape struct {
	class     ClassEnum
	kind      KindEnum      // ClassPrimitive only
	life      Lifetime      // ClassRef and ClassSlice only
	length    int           // ClassArray only
	container ContainerEnum // ClassContainer only
	elems     []Shape       // element(s): ref/array/slice hold one, tuples and containers hold their positions
}

// Prim returns the shape of a primitive kind.
// It panics if the kind is not one of the declared primitives.
func Prim(kind KindEnum) Shape {
	if !kind.IsValid() {
		panic("primitive shape requested for invalid kind: " + kind.String())
	}

	return Shape{class: ClassPrimitive, kind: kind}
}

// Unit returns the shape of the unit type. It is the same shape as
// Prim(KindUnit) and is distinct from the empty tuple.
func Unit() Shape {
	return Prim(KindUnit)
}

// Ref returns a borrowed reference to elem with the anonymous lifetime.
func Ref(elem Shape) Shape {
	return RefIn(Anon, elem)
}

// RefIn returns a borrowed reference to elem with an explicit lifetime label.
// It panics on an empty label.
func RefIn(life Lifetime, elem Shape) Shape {
	if life == "" {
		panic("reference shape requested with an empty lifetime label")
	}

	return Shape{class: ClassRef, life: life, elems: []Shape{elem}}
}

// SliceOf returns a borrowed slice view of elem with the anonymous lifetime.
func SliceOf(elem Shape) Shape {
	return SliceIn(Anon, elem)
}

// SliceIn returns a borrowed slice view of elem with an explicit lifetime label.
// It panics on an empty label.
func SliceIn(life Lifetime, elem Shape) Shape {
	if life == "" {
		panic("slice shape requested with an empty lifetime label")
	}

	return Shape{class: ClassSlice, life: life, elems: []Shape{elem}}
}

// ArrayOf returns a fixed-size array of length elements of elem.
// It panics on a negative length.
func ArrayOf(length int, elem Shape) Shape {
	if length < 0 {
		panic("array shape requested with negative length: " + strconv.Itoa(length))
	}

	return Shape{class: ClassArray, length: length, elems: []Shape{elem}}
}

// TupleOf returns the tuple of the given positions. TupleOf() is the empty
// tuple.
func TupleOf(elems ...Shape) Shape {
	s := Shape{class: ClassTuple}
	s.elems = append(s.elems, elems...)

	return s
}

// Box returns the owned heap cell container over elem.
func Box(elem Shape) Shape { return ContainerOf(ContainerBox, elem) }

// Option returns the optional-value container over elem.
func Option(elem Shape) Shape { return ContainerOf(ContainerOption, elem) }

// Result returns the success/failure container over the given parameters.
func Result(ok, fail Shape) Shape { return ContainerOf(ContainerResult, ok, fail) }

// Atomic returns the atomic cell container over elem.
func Atomic(elem Shape) Shape { return ContainerOf(ContainerAtomic, elem) }

// Vec returns the growable sequence container over elem.
func Vec(elem Shape) Shape { return ContainerOf(ContainerVec, elem) }

// Text returns the owned text buffer shape.
func Text() Shape { return ContainerOf(ContainerText) }

// MapOf returns the hash-based associative container over key and value.
func MapOf(key, value Shape) Shape { return ContainerOf(ContainerMap, key, value) }

// ContainerOf returns the container shape over the given type parameters.
// It panics when the parameter count does not match the container.
func ContainerOf(container ContainerEnum, params ...Shape) Shape {
	if got, want := len(params), container.TypeParams(); got != want {
		panic("container " + container.label() + " takes " + strconv.Itoa(want) +
			" type parameters, got " + strconv.Itoa(got))
	}

	s := Shape{class: ClassContainer, container: container}
	s.elems = append(s.elems, params...)

	return s
}

// Class returns the structural category of the shape.
func (s Shape) Class() ClassEnum { return s.class }

// Kind returns the primitive kind, or the zero KindEnum for non-primitives.
func (s Shape) Kind() KindEnum { return s.kind }

// Life returns the lifetime label of a reference or slice shape, or the
// empty label for every other class.
func (s Shape) Life() Lifetime { return s.life }

// Len returns the length of an array shape.
// It panics for every other class.
func (s Shape) Len() int {
	if s.class != ClassArray {
		panic("length requested for non-array shape: " + s.class.String())
	}

	return s.length
}

// Container returns the container name, or the zero ContainerEnum for
// non-container shapes.
func (s Shape) Container() ContainerEnum { return s.container }

// Arity returns the number of positions of a tuple shape.
// It panics for every other class.
func (s Shape) Arity() int {
	if s.class != ClassTuple {
		panic("arity requested for non-tuple shape: " + s.class.String())
	}

	return len(s.elems)
}

// Elem returns the single element shape of a reference, array or slice.
// It panics for every other class.
func (s Shape) Elem() Shape {
	switch s.class {
	default:
		panic("single element requested for shape class: " + s.class.String())
	case ClassRef, ClassArray, ClassSlice:
		return s.elems[0]
	}
}

// Elems returns a copy of the positions of a tuple or the type parameters of
// a container. The copy keeps callers from aliasing the descriptor.
func (s Shape) Elems() []Shape {
	if len(s.elems) == 0 {
		return nil
	}

	out := make([]Shape, len(s.elems))
	copy(out, s.elems)

	return out
}

// Equal reports structural equality, lifetimes included. Two shapes that
// differ only in lifetime labels are not Equal, though they resolve to the
// same static form.
func (s Shape) Equal(other Shape) bool {
	if s.class != other.class ||
		s.kind != other.kind ||
		s.life != other.life ||
		s.length != other.length ||
		s.container != other.container ||
		len(s.elems) != len(other.elems) {
		return false
	}

	for i := range s.elems {
		if !s.elems[i].Equal(other.elems[i]) {
			return false
		}
	}

	return true
}

// String renders the shape for diagnostics: "int32", "&'static int32",
// "&'_ []bool", "[4]uint8", "(int32, &'static int32)", "Option[int64]".
// The rendering is human-oriented and not guaranteed unique; use Canonical
// for an unambiguous encoding.
func (s Shape) String() string {
	var sb strings.Builder
	s.render(&sb)

	return sb.String()
}

func (s Shape) render(sb *strings.Builder) {
	switch s.class {
	default:
		sb.WriteString("<unknown>")

	case ClassPrimitive:
		sb.WriteString(s.kind.label())

	case ClassRef:
		sb.WriteString("&")
		sb.WriteString(s.life.String())
		sb.WriteString(" ")
		s.elems[0].render(sb)

	case ClassSlice:
		sb.WriteString("&")
		sb.WriteString(s.life.String())
		sb.WriteString(" []")
		s.elems[0].render(sb)

	case ClassArray:
		sb.WriteString("[")
		sb.WriteString(strconv.Itoa(s.length))
		sb.WriteString("]")
		s.elems[0].render(sb)

	case ClassTuple:
		sb.WriteString("(")
		for i, elem := range s.elems {
			if i > 0 {
				sb.WriteString(", ")
			}

			elem.render(sb)
		}
		if len(s.elems) == 1 {
			sb.WriteString(",") // distinguish the 1-tuple from grouping
		}
		sb.WriteString(")")

	case ClassContainer:
		sb.WriteString(s.container.label())
		if len(s.elems) > 0 {
			sb.WriteString("[")
			for i, elem := range s.elems {
				if i > 0 {
					sb.WriteString(", ")
				}

				elem.render(sb)
			}
			sb.WriteString("]")
		}
	}
}

// Canonical returns an unambiguous, class-prefixed encoding of the shape.
// It exists so that shapes with equal display text (e.g. the unit primitive
// and the empty tuple, both spelled "()") still encode differently. The
// encoding is an internal keying detail, never a display or persistence
// format.
func (s Shape) Canonical() string {
	var sb strings.Builder
	s.encode(&sb)

	return sb.String()
}

func (s Shape) encode(sb *strings.Builder) {
	switch s.class {
	default:
		sb.WriteString("?")

	case ClassPrimitive:
		sb.WriteString("p")
		sb.WriteString(strconv.Itoa(int(s.kind)))

	case ClassRef:
		sb.WriteString("r<")
		sb.WriteString(string(s.life))
		sb.WriteString(">")
		s.elems[0].encode(sb)

	case ClassSlice:
		sb.WriteString("s<")
		sb.WriteString(string(s.life))
		sb.WriteString(">")
		s.elems[0].encode(sb)

	case ClassArray:
		sb.WriteString("a")
		sb.WriteString(strconv.Itoa(s.length))
		sb.WriteString(";")
		s.elems[0].encode(sb)

	case ClassTuple:
		sb.WriteString("t")
		sb.WriteString(strconv.Itoa(len(s.elems)))
		sb.WriteString("(")
		for i, elem := range s.elems {
			if i > 0 {
				sb.WriteString(",")
			}

			elem.encode(sb)
		}
		sb.WriteString(")")

	case ClassContainer:
		sb.WriteString("c")
		sb.WriteString(strconv.Itoa(int(s.container)))
		sb.WriteString("(")
		for i, elem := range s.elems {
			if i > 0 {
				sb.WriteString(",")
			}

			elem.encode(sb)
		}
		sb.WriteString(")")
	}
}
