// Command greet prints the project's fixed smoke-test banner: the sum
// of two known integers followed by two greeting lines. It parses no
// flags and ignores any arguments, writes nothing to stderr, and
// always exits 0.
package main

import (
	"fmt"
	"io"
	"os"
)

const (
	left  = 100
	right = 200
)

func run(w io.Writer) {
	fmt.Fprintln(w, left+right)
	fmt.Fprintln(w, "hello kratos")
	fmt.Fprintln(w, "hi vinoth")
}

func main() {
	run(os.Stdout)
}
