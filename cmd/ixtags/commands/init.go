package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ixtags/pkg/config"
)

func initCmd(opts *options) *cobra.Command {
	var output string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively write an imgix configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.prompt == nil {
				return fmt.Errorf("init: no prompter available")
			}
			cfg, err := askConfig(opts.prompt)
			if err != nil {
				return err
			}

			if output == "-" {
				return config.Write(cmd.OutOrStdout(), cfg)
			}
			if !force {
				if _, err := os.Stat(output); err == nil {
					return fmt.Errorf("init: %s already exists (use --force to overwrite)", output)
				}
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			if err := writeAndClose(f, cfg); err != nil {
				return err
			}
			opts.logger.Info("configuration written", slog.String("path", output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "imgix.yaml", "file to write, or - for stdout")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func askConfig(prompt Prompter) (config.Config, error) {
	cfg := config.Default()

	source, err := prompt.Input(InputConfig{
		Message: "imgix source host:",
		Help:    "The domain of your imgix source, e.g. demo.imgix.net",
		Validator: func(value string) error {
			return (config.Config{Source: value}).Validate()
		},
	})
	if err != nil {
		return config.Config{}, err
	}
	cfg.Source = source

	if cfg.UseHTTPS, err = prompt.Confirm(ConfirmConfig{Message: "Use HTTPS?", Default: true}); err != nil {
		return config.Config{}, err
	}

	signed, err := prompt.Confirm(ConfirmConfig{
		Message: "Sign URLs with a secure URL token?",
		Help:    "Required when the source has secure URLs enabled",
	})
	if err != nil {
		return config.Config{}, err
	}
	if signed {
		if cfg.SecureURLToken, err = prompt.Password(InputConfig{Message: "Secure URL token:"}); err != nil {
			return config.Config{}, err
		}
	}

	raw, err := prompt.Input(InputConfig{
		Message: "Responsive resolutions:",
		Default: "1,2",
		Validator: func(value string) error {
			_, err := config.ParseResolutions(value)
			return err
		},
	})
	if err != nil {
		return config.Config{}, err
	}
	if cfg.ResponsiveResolutions, err = config.ParseResolutions(raw); err != nil {
		return config.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func writeAndClose(w io.WriteCloser, cfg config.Config) error {
	if err := config.Write(w, cfg); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	return nil
}
