package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	traitctl "github.com/louisbranch/novagenetica/internal/cmd/traitctl"
	platformcmd "github.com/louisbranch/novagenetica/internal/platform/cmd"
	"github.com/louisbranch/novagenetica/internal/platform/config"
)

func main() {
	cfg, err := traitctl.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix(platformcmd.LogPrefix(platformcmd.ServiceTraitctl))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := traitctl.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("traitctl: %v", err)
	}
}
