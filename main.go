package main

import (
	"context"
	"os"

	"github.com/hemanth0525/contribuzz/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
