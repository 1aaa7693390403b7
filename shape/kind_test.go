package shape_test

import (
	"fmt"
	"reflect"

	"staticize/shape"
)

func Example() {
	fmt.Println(shape.FromReflectKind(reflect.Bool))
	fmt.Println(shape.FromReflectKind(reflect.Int32))
	fmt.Println(shape.FromReflectKind(reflect.Uintptr))
	fmt.Println(shape.FromReflectKind(reflect.Complex128))
	fmt.Println(shape.FromReflectKind(reflect.Chan))

	// Output:
	// KindBool
	// KindInt32
	// KindUintptr
	// KindComplex128
	// KindEnum(0)
}
