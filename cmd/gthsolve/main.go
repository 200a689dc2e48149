// SPDX-License-Identifier: MIT

// Command gthsolve computes stationary distributions of finite Markov chains
// stored in YAML or JSON files.
//
//	gthsolve solve chain.yaml
//	gthsolve solve --out report.json chain.yaml
//	gthsolve kmr --n 27 --p 0.3333 --eps 0.01
package main

import "github.com/katalvlaran/stationary/internal/cli"

func main() {
	cli.Execute()
}
