package shape

//go:generate go tool stringer -type=ClassEnum -output=class_string.go

// ClassEnum is the structural category of a shape. The categories are
// mutually exclusive: a shape belongs to exactly one class, chosen by
// construction, never by priority or fallback.
type ClassEnum int

const (
	ClassUnknown ClassEnum = iota
	ClassPrimitive
	ClassRef
	ClassArray
	ClassSlice
	ClassTuple
	ClassContainer

	// ClassTotal is a constant that represents the total number of classes defined
	ClassTotal = int(iota)
)
