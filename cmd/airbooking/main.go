package main

import (
	"context"
	"os"

	"github.com/Domenick1991/airbooking-console/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
