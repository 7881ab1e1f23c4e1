package literal_test

import (
	"fmt"

	"github.com/coregx/bytere/literal"
	"github.com/coregx/bytere/syntax"
)

// ExamplePrefix shows the required prefix of a compiled program.
func ExamplePrefix() {
	prog, err := syntax.Compile("error: [0-9]+", syntax.DefaultCapacity)
	if err != nil {
		panic(err)
	}
	lit := literal.Prefix(prog)
	fmt.Printf("%q complete=%v\n", lit.Bytes, lit.Complete)
	// Output:
	// "error: " complete=false
}
