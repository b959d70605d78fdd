// Command junction clusters 3-D points read from a file or stdin.
//
//	junction bounded points.txt --budget 1000
//	junction connect points.txt --metric x-product
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/junction/internal/config"
)

func main() {
	if err := newRootCmd(config.New()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "junction: %v\n", err)
		os.Exit(1)
	}
}
