package shape

//go:generate go tool stringer -type=ContainerEnum -output=container_string.go

// ContainerEnum names the supported owned container shapes. Each container
// has a fixed number of type parameters (see TypeParams).
type ContainerEnum int

const (
	_ ContainerEnum = iota // skip zero value, use it as a default (invalid) value for ContainerEnum

	ContainerBox    // owned heap cell of one element
	ContainerOption // optional-value wrapper
	ContainerResult // success/failure wrapper, two parameters
	ContainerAtomic // atomic cell of one element
	ContainerVec    // growable sequence
	ContainerText   // owned text buffer, no parameters
	ContainerMap    // hash-based associative container, two parameters

	// ContainerTotal is a constant that represents the total number of containers defined
	ContainerTotal = int(iota)
)

// IsValid reports whether c is one of the declared containers.
func (c ContainerEnum) IsValid() bool {
	return 0 < c && int(c) < ContainerTotal
}

// TypeParams returns the number of type parameters the container takes.
func (c ContainerEnum) TypeParams() int {
	switch c {
	default:
		panic("type parameter count requested for invalid container: " + c.String())
	case ContainerBox, ContainerOption, ContainerAtomic, ContainerVec:
		return 1
	case ContainerResult, ContainerMap:
		return 2
	case ContainerText:
		return 0
	}
}

// label returns the display spelling of the container, as used by Shape.String.
func (c ContainerEnum) label() string {
	switch c {
	default:
		return "?"
	case ContainerBox:
		return "Box"
	case ContainerOption:
		return "Option"
	case ContainerResult:
		return "Result"
	case ContainerAtomic:
		return "Atomic"
	case ContainerVec:
		return "Vec"
	case ContainerText:
		return "Text"
	case ContainerMap:
		return "Map"
	}
}
