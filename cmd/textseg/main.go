// Command textseg segments model responses from files or stdin.
//
// Usage:
//
//	textseg parse --kind tone response.txt
//	textseg analyze combined.txt --format yaml
//	textseg errors errors-section.txt
//	textseg watch --kind grammar response.txt
//	textseg batch --kind rewrite out/*.txt
//	textseg run --kind tone --command ollama --arg run --arg mistral prompt.txt
//	textseg schema
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sprifti/textkit/segment"
)

// app holds state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	format     string

	logger    *slog.Logger
	segmenter *segment.Segmenter
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "textseg",
		Short: "Segment free-form model responses into structured fields",
		Long: `textseg splits grammar, tone and rewrite responses written by a
generative model into named fields. Missing sections yield empty fields;
responses without any recognised section fall back to the full text.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "marker table config file (yaml, toml or json); env TEXTKIT_CONFIG")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error; env TEXTKIT_LOG_LEVEL")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", formatJSON, "output format: json or yaml")

	root.AddCommand(
		newParseCmd(a),
		newAnalyzeCmd(a),
		newSplitCmd(a),
		newErrorsCmd(a),
		newSchemaCmd(a),
		newWatchCmd(a),
		newBatchCmd(a),
		newRunCmd(a),
	)

	return root
}

// init configures logging and builds the segmenter.
func (a *app) init(cmd *cobra.Command) error {
	level := a.logLevel
	if level == "" {
		level = os.Getenv("TEXTKIT_LOG_LEVEL")
	}
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
	} else {
		lvl = slog.LevelWarn
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

	if a.format != formatJSON && a.format != formatYAML {
		return fmt.Errorf("unsupported output format %q", a.format)
	}

	path := a.configPath
	if path == "" {
		path = os.Getenv("TEXTKIT_CONFIG")
	}

	cfg := segment.DefaultConfig()
	if path != "" {
		loaded, err := segment.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
		a.logger.Debug("loaded segment config", slog.String("path", path), slog.Int("tables", len(cfg.Tables)))
	}
	cfg.LoadFromEnv()

	s, err := segment.New(cfg, segment.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.segmenter = s
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
