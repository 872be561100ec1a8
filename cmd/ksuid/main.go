// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"fmt"
	"os"

	"github.com/complex-gh/ksuid_go/internal/cli"
	"github.com/complex-gh/ksuid_go/internal/config"
	"github.com/complex-gh/ksuid_go/internal/logger"
)

func main() {
	// KSUID_CONFIG points at an optional JSON file; KSUID_* variables override it
	cfg, err := config.Load(os.Getenv("KSUID_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "ksuid:", err)
		os.Exit(1)
	}
	config.FromEnv(&cfg)

	log, err := logger.Build(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ksuid:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := cli.NewRoot(cfg, log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ksuid:", err)
		log.Sync()
		os.Exit(1)
	}
}
