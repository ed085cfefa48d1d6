package main

import (
	"flag"
	"fmt"

	"github.com/gbmviz/gbm-visualizer/internal/simulation"
)

// Prints the first n uniform draws for a seed, for eyeballing the raw LCG
// stream when debugging reproducibility issues.
func main() {
	seed := flag.Int64("seed", 42, "PRNG seed")
	n := flag.Int("n", 10, "number of draws")
	flag.Parse()

	for i, v := range simulation.Sequence(*seed, *n) {
		fmt.Printf("%3d  %.12f\n", i, v)
	}
}
