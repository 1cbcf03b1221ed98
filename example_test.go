package indenter_test

import (
	"fmt"
	"io"
	"os"

	"github.com/panyam/indenter"
)

func Example() {
	w := indenter.New(os.Stdout).WithFormat(indenter.Uniform("> "))
	fmt.Fprint(w, "verify\nthis")
	// Output:
	// > verify
	// > this
}

func ExampleNewNumbered() {
	w := indenter.NewNumbered(os.Stdout, 2)
	fmt.Fprint(w, "verify\nthis")
	// Output:
	//    2: verify
	//       this
}

func ExampleHanging() {
	w := indenter.New(os.Stdout).WithFormat(indenter.Hanging("note: "))
	fmt.Fprint(w, "disk is low\non space")
	// Output:
	// note: disk is low
	//       on space
}

func ExampleCustom() {
	n := 0
	w := indenter.New(os.Stdout).WithFormat(indenter.Custom(func(out io.Writer, _ int) error {
		n++
		_, err := fmt.Fprintf(out, "%d> ", n)
		return err
	}))
	fmt.Fprint(w, "first\nsecond\nthird")
	// Output:
	// 1> first
	// 2> second
	// 3> third
}
