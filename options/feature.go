package options

// FeatureEnum selects which optional registration sets a registry installs.
// The base set (primitives, references, slices, arrays of covered lengths,
// tuples of arity 0..16) is always installed and has no flag. Features only
// ever add registrations, they never change base resolutions.
type FeatureEnum int

const (
	FeatureAllocLite FeatureEnum = 1 << iota // allocation-free owned containers: Box, Option, Result, Atomic
	FeatureFullStd                           // full standard-runtime containers: Vec, Text, Map; implies FeatureAllocLite

	FeatureAll  FeatureEnum = (1 << iota) - 1 // all features combined
	FeatureNone FeatureEnum = 0               // base set only
)

// Has reports whether all features of the mask are enabled, after applying
// the FeatureFullStd superset rule.
func (f FeatureEnum) Has(mask FeatureEnum) bool {
	return f.normalize()&mask == mask
}

func (f FeatureEnum) normalize() FeatureEnum {
	if f&FeatureFullStd != 0 {
		f |= FeatureAllocLite
	}

	return f
}
