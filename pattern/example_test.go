package pattern_test

import (
	"fmt"

	"github.com/isomatch/isomatch/pattern"
)

// Describe a small two-channel template inline instead of loading a file.
func ExampleParse() {
	g, _ := pattern.Parse("a -phone-> b -phone-> c; a -email*2-> c")

	adj, _ := g.Adj("email")
	v, _ := adj.At(0, 2)
	fmt.Println("nodes:", g.Nodes())
	fmt.Println("channels:", g.Channels())
	fmt.Println("a->c email count:", v)
	// Output:
	// nodes: [a b c]
	// channels: [phone email]
	// a->c email count: 2
}
