package main

import (
	"context"
	"os"

	"github.com/Kalai-nithi-guhan/next-deploy/internal/cmd/agrismart"
)

func main() {
	if err := agrismart.NewRootCommand(nil).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
