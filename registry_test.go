package staticize_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staticize"
	"staticize/options"
	"staticize/shape"
)

// corpus returns a representative set of shapes covered by the full
// registry, from bare primitives to nested borrows inside containers.
func corpus() []shape.Shape {
	intPrim := shape.Prim(shape.KindInt)
	boolPrim := shape.Prim(shape.KindBool)

	return []shape.Shape{
		intPrim,
		shape.Unit(),
		shape.TupleOf(),
		shape.Ref(intPrim),
		shape.RefIn("a", shape.RefIn("b", boolPrim)),
		shape.RefIn(shape.Static, intPrim),
		shape.SliceOf(shape.Ref(boolPrim)),
		shape.ArrayOf(16, shape.SliceOf(intPrim)),
		shape.TupleOf(intPrim, shape.Ref(intPrim), shape.ArrayOf(3, boolPrim)),
		shape.Box(shape.Ref(intPrim)),
		shape.Option(shape.SliceOf(boolPrim)),
		shape.Result(intPrim, shape.Text()),
		shape.Atomic(shape.Prim(shape.KindUint64)),
		shape.Vec(shape.Ref(intPrim)),
		shape.MapOf(shape.Prim(shape.KindString), shape.Vec(intPrim)),
	}
}

func TestPrimitiveTotality(t *testing.T) {
	t.Parallel()

	r := staticize.New(options.FeatureNone)

	for kind := shape.KindEnum(1); int(kind) < shape.KindTotal; kind++ {
		prim := shape.Prim(kind)

		got, err := r.Resolve(prim)
		require.NoError(t, err, "kind %s", kind)
		assert.True(t, got.Equal(prim), "primitive %s must be its own static form", prim)
	}
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	r := staticize.New(options.FeatureAll)

	for _, s := range corpus() {
		once, err := r.Resolve(s)
		require.NoError(t, err, "shape %s", s)

		twice, err := r.Resolve(once)
		require.NoError(t, err, "resolved shape %s", once)

		assert.True(t, twice.Equal(once), spew.Sdump(once, twice))
	}
}

func TestRefUnwrapping(t *testing.T) {
	t.Parallel()

	r := staticize.New(options.FeatureAll)

	for _, s := range corpus() {
		static, err := r.Resolve(s)
		require.NoError(t, err)

		got, err := r.Resolve(shape.RefIn("a", s))
		require.NoError(t, err)

		want := shape.RefIn(shape.Static, static)
		assert.True(t, got.Equal(want), "got %s, want %s", got, want)
	}
}

func TestTupleCongruence(t *testing.T) {
	t.Parallel()

	r := staticize.New(options.FeatureNone)
	intPrim := shape.Prim(shape.KindInt32)

	t.Run("positionwise over all covered arities", func(t *testing.T) {
		t.Parallel()

		for arity := 0; arity <= 16; arity++ {
			elems := make([]shape.Shape, 0, arity)
			want := make([]shape.Shape, 0, arity)

			for i := range arity {
				if i%2 == 0 {
					elems = append(elems, intPrim)
					want = append(want, intPrim)
				} else {
					elems = append(elems, shape.Ref(intPrim))
					want = append(want, shape.RefIn(shape.Static, intPrim))
				}
			}

			got, err := r.Resolve(shape.TupleOf(elems...))
			require.NoError(t, err, "arity %d", arity)
			assert.True(t, got.Equal(shape.TupleOf(want...)), "arity %d: got %s", arity, got)
		}
	})

	t.Run("mixed borrow depths", func(t *testing.T) {
		t.Parallel()

		in := shape.TupleOf(
			intPrim,
			shape.Ref(intPrim),
			shape.Ref(shape.Ref(shape.Prim(shape.KindBool))),
		)
		want := shape.TupleOf(
			intPrim,
			shape.RefIn(shape.Static, intPrim),
			shape.RefIn(shape.Static, shape.RefIn(shape.Static, shape.Prim(shape.KindBool))),
		)

		got, err := r.Resolve(in)
		require.NoError(t, err)
		assert.True(t, got.Equal(want), "got %s, want %s", got, want)
	})

	t.Run("arity above the covered bound", func(t *testing.T) {
		t.Parallel()

		elems := make([]shape.Shape, 17)
		for i := range elems {
			elems[i] = intPrim
		}

		_, err := r.Resolve(shape.TupleOf(elems...))
		assert.ErrorIs(t, err, staticize.ErrUnsupported)
	})
}

func TestArraySliceCongruence(t *testing.T) {
	t.Parallel()

	r := staticize.New(options.FeatureNone)
	elem := shape.Ref(shape.Prim(shape.KindInt16))
	staticElem := shape.RefIn(shape.Static, shape.Prim(shape.KindInt16))

	t.Run("covered array lengths", func(t *testing.T) {
		t.Parallel()

		for _, length := range []int{0, 1, 16, 32} {
			got, err := r.Resolve(shape.ArrayOf(length, elem))
			require.NoError(t, err, "length %d", length)

			want := shape.ArrayOf(length, staticElem)
			assert.True(t, got.Equal(want), "length %d: got %s", length, got)
		}
	})

	t.Run("length above the covered bound", func(t *testing.T) {
		t.Parallel()

		_, err := r.Resolve(shape.ArrayOf(33, elem))
		assert.ErrorIs(t, err, staticize.ErrUnsupported)
	})

	t.Run("slice view widens", func(t *testing.T) {
		t.Parallel()

		got, err := r.Resolve(shape.SliceIn("req", elem))
		require.NoError(t, err)

		want := shape.SliceIn(shape.Static, staticElem)
		assert.True(t, got.Equal(want), "got %s, want %s", got, want)
	})
}

func TestIdentifierAgreement(t *testing.T) {
	t.Parallel()

	r := staticize.New(options.FeatureAll)
	intPrim := shape.Prim(shape.KindInt)

	t.Run("lifetime variants share an id", func(t *testing.T) {
		t.Parallel()

		a, err := r.StaticTypeID(shape.RefIn("a", intPrim))
		require.NoError(t, err)

		b, err := r.StaticTypeID(shape.RefIn("borrow", intPrim))
		require.NoError(t, err)

		c, err := r.StaticTypeID(shape.RefIn(shape.Static, intPrim))
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.Equal(t, a, c)
	})

	t.Run("distinct static forms get distinct ids", func(t *testing.T) {
		t.Parallel()

		seen := make(map[staticize.TypeID]shape.Shape)

		for _, s := range corpus() {
			static, err := r.Resolve(s)
			require.NoError(t, err)

			id, err := r.StaticTypeID(s)
			require.NoError(t, err)

			if prev, ok := seen[id]; ok {
				assert.True(t, prev.Equal(static), "id collision between %s and %s", prev, static)

				continue
			}

			seen[id] = static
		}
	})

	t.Run("unit and the empty tuple stay apart", func(t *testing.T) {
		t.Parallel()

		unitID, err := r.StaticTypeID(shape.Unit())
		require.NoError(t, err)

		tupleID, err := r.StaticTypeID(shape.TupleOf())
		require.NoError(t, err)

		assert.NotEqual(t, unitID, tupleID)
	})
}

func TestNameNonEmpty(t *testing.T) {
	t.Parallel()

	r := staticize.New(options.FeatureAll)

	for _, s := range corpus() {
		name, err := r.StaticTypeName(s)
		require.NoError(t, err, "shape %s", s)
		assert.NotEmpty(t, name)
	}
}

func TestNameReportsStaticForm(t *testing.T) {
	t.Parallel()

	r := staticize.New(options.FeatureNone)

	name, err := r.StaticTypeName(shape.Ref(shape.Prim(shape.KindInt32)))
	require.NoError(t, err)
	assert.Equal(t, "&'static int32", name)
}

func TestExtensionAdditivity(t *testing.T) {
	t.Parallel()

	base := staticize.New(options.FeatureNone)
	lite := staticize.New(options.FeatureAllocLite)
	full := staticize.New(options.FeatureFullStd)

	t.Run("base resolutions never change", func(t *testing.T) {
		t.Parallel()

		baseCovered := []shape.Shape{
			shape.Prim(shape.KindInt),
			shape.Ref(shape.Prim(shape.KindBool)),
			shape.ArrayOf(8, shape.Prim(shape.KindUint8)),
			shape.SliceOf(shape.Prim(shape.KindString)),
			shape.TupleOf(shape.Prim(shape.KindInt), shape.Ref(shape.Prim(shape.KindInt))),
		}

		for _, s := range baseCovered {
			fromBase, err := base.Resolve(s)
			require.NoError(t, err)

			fromLite, err := lite.Resolve(s)
			require.NoError(t, err)

			fromFull, err := full.Resolve(s)
			require.NoError(t, err)

			assert.True(t, fromBase.Equal(fromLite), "lite changed resolution of %s", s)
			assert.True(t, fromBase.Equal(fromFull), "full changed resolution of %s", s)
		}
	})

	t.Run("containers need their feature", func(t *testing.T) {
		t.Parallel()

		box := shape.Box(shape.Prim(shape.KindInt))
		vec := shape.Vec(shape.Prim(shape.KindInt))

		_, err := base.Resolve(box)
		assert.ErrorIs(t, err, staticize.ErrUnsupported)

		_, err = lite.Resolve(box)
		assert.NoError(t, err)

		_, err = lite.Resolve(vec)
		assert.ErrorIs(t, err, staticize.ErrUnsupported)

		_, err = full.Resolve(vec)
		assert.NoError(t, err)
	})

	t.Run("full is a superset of lite", func(t *testing.T) {
		t.Parallel()

		_, err := full.Resolve(shape.Option(shape.Prim(shape.KindBool)))
		assert.NoError(t, err)
	})

	t.Run("owned containers resolve their parameters", func(t *testing.T) {
		t.Parallel()

		got, err := full.Resolve(shape.Vec(shape.Ref(shape.Prim(shape.KindInt))))
		require.NoError(t, err)

		want := shape.Vec(shape.RefIn(shape.Static, shape.Prim(shape.KindInt)))
		assert.True(t, got.Equal(want), "got %s, want %s", got, want)
	})
}
