package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	simulatecmd "github.com/anaitab/montyhall/internal/cmd/simulate"
)

func main() {
	cfg, err := simulatecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SIMULATE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := simulatecmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("failed to simulate: %v", err)
	}
}
