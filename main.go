package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/meadowhq/meadow/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.New().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}
