package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dvcrn/ht/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ht: error: %v\n", err)
		os.Exit(1)
	}
}
