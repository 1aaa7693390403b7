package shape

// Lifetime is the label attached to borrowed shapes (references and slice
// views). Go types carry no lifetimes, so the label lives in the descriptor:
// it only ever matters as "Static or not", plus a spelling for diagnostics.
type Lifetime string

const (
	// Static is the longest-lived label. Resolving any borrowed shape
	// widens its lifetime to Static.
	Static Lifetime = "static"

	// Anon is the default label for borrows derived from Go types, where
	// no finer scope information exists.
	Anon Lifetime = "_"
)

// IsStatic reports whether the label is the longest-lived one.
func (l Lifetime) IsStatic() bool {
	return l == Static
}

// String renders the label with the conventional tick prefix, e.g. "'static".
func (l Lifetime) String() string {
	return "'" + string(l)
}
