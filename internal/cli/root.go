// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package cli implements the ksuid command line tool.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ksuid "github.com/complex-gh/ksuid_go"
	"github.com/complex-gh/ksuid_go/entropy"
	"github.com/complex-gh/ksuid_go/internal/config"
)

// NewRoot constructs the root command. Flag defaults come from base; with
// arguments the command parses and prints them, otherwise it generates
// --count new KSUIDs.
func NewRoot(base config.Config, log *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "ksuid [ids...]",
		Short:         "Generate and inspect KSUIDs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := base
			cfg.Count, _ = cmd.Flags().GetInt("count")
			cfg.Format, _ = cmd.Flags().GetString("format")
			cfg.Source, _ = cmd.Flags().GetString("source")
			if err := cfg.Validate(); err != nil {
				return err
			}
			write := printers[cfg.Format]
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				for _, arg := range args {
					id, err := ksuid.Parse(normalize(arg))
					if err != nil {
						log.Error("invalid ksuid", zap.String("input", arg), zap.Error(err))
						return fmt.Errorf("%q: %w", arg, err)
					}
					if err := write(out, id); err != nil {
						return err
					}
				}
				return nil
			}

			src, err := entropy.New(cfg.Source)
			if err != nil {
				return err
			}
			g := ksuid.NewGenerator(ksuid.WithSource(src))
			for i := 0; i < cfg.Count; i++ {
				id, err := g.New()
				if err != nil {
					log.Error("generate failed", zap.String("source", cfg.Source), zap.Error(err))
					return err
				}
				if err := write(out, id); err != nil {
					return err
				}
			}
			log.Debug("generated",
				zap.Int("count", cfg.Count),
				zap.String("source", cfg.Source),
				zap.String("format", cfg.Format),
			)
			return nil
		},
	}

	root.Flags().IntP("count", "n", base.Count, "Number of KSUIDs to generate")
	root.Flags().StringP("format", "f", base.Format, "Output format: "+strings.Join(config.Formats, "|"))
	root.Flags().StringP("source", "s", base.Source, "Payload source: "+strings.Join(entropy.Names(), "|"))
	return root
}
