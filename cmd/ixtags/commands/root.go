package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ixtags/pkg/config"
	"github.com/goliatone/go-ixtags/pkg/tags"
	"github.com/goliatone/go-ixtags/pkg/urlbuilder"
)

type options struct {
	configPath  string
	source      string
	token       string
	useHTTPS    bool
	resolutions string
	sanitize    bool
	verbose     bool

	logger *slog.Logger
	prompt Prompter
}

// Execute runs the CLI against os.Args.
func Execute() error {
	if err := NewRootCommand(newSurveyPrompter()).Execute(); err != nil {
		slog.Error("ixtags failed", slog.Any("error", err))
		return err
	}
	return nil
}

// NewRootCommand builds the command tree. prompt backs the interactive init
// command.
func NewRootCommand(prompt Prompter) *cobra.Command {
	opts := &options{prompt: prompt}

	root := &cobra.Command{
		Use:           "ixtags",
		Short:         "Render imgix image URLs and markup",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file (YAML or JSON)")
	flags.StringVar(&opts.source, "source", "", "imgix source host, e.g. demo.imgix.net")
	flags.StringVar(&opts.token, "token", "", "secure URL token used to sign URLs")
	flags.BoolVar(&opts.useHTTPS, "https", true, "build https URLs")
	flags.StringVar(&opts.resolutions, "resolutions", "", "srcset resolutions, e.g. 1,2,3")
	flags.BoolVar(&opts.sanitize, "sanitize", false, "sanitize rendered markup")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	for _, def := range renderDefs {
		root.AddCommand(renderCmd(opts, def))
	}
	root.AddCommand(initCmd(opts))

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return root
}

var version = "dev"

// resolveConfig layers file, environment and explicitly set flags.
func (o *options) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		data, err := os.ReadFile(o.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("read config: %w", err)
		}
		loaded, err := config.Parse(data, o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = o.source
	}
	if flags.Changed("token") {
		cfg.SecureURLToken = o.token
	}
	if flags.Changed("https") {
		cfg.UseHTTPS = o.useHTTPS
	}
	if flags.Changed("resolutions") {
		resolutions, err := config.ParseResolutions(o.resolutions)
		if err != nil {
			return config.Config{}, fmt.Errorf("--resolutions: %w", err)
		}
		cfg.ResponsiveResolutions = resolutions
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (o *options) buildTags(cmd *cobra.Command) (*tags.Tags, error) {
	cfg, err := o.resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("configuration resolved",
		slog.String("source", cfg.Source),
		slog.Bool("https", cfg.UseHTTPS),
		slog.Bool("signed", cfg.Signed()),
		slog.Any("resolutions", cfg.Resolutions()),
	)

	builder, err := urlbuilder.New(cfg)
	if err != nil {
		return nil, err
	}
	tagOptions := []tags.Option{tags.WithLogger(o.logger)}
	if o.sanitize {
		tagOptions = append(tagOptions, tags.WithSanitizer(tags.MarkupPolicy()))
	}
	return tags.New(builder, tagOptions...)
}
