package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/sprifti/textkit/provider"
	"github.com/sprifti/textkit/segment"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		kindName string
		command  string
		cmdArgs  []string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run [--kind KIND] --command BIN [--arg ARG]... [prompt-file]",
		Short: "Send a prompt to a model CLI and segment its response",
		Long: `run writes the prompt to the stdin of a model CLI, reads the response
from its stdout and segments it. Without --kind the response is analyzed as a
combined response. Failed or empty completions are reported as errors and
never segmented.

Defaults come from TEXTKIT_PROVIDER, TEXTKIT_COMMAND, TEXTKIT_COMMAND_ARGS
and TEXTKIT_TIMEOUT.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := provider.FromEnv()
			if cmd.Flags().Changed("command") {
				cfg.Command = command
			}
			if cmd.Flags().Changed("arg") {
				cfg.Args = cmdArgs
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = timeout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var kind segment.Kind
			if kindName != "" {
				k, err := segment.ParseKind(kindName)
				if err != nil {
					return err
				}
				kind = k
			}

			prompt, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			completer, err := provider.NewCommand(cfg)
			if err != nil {
				return err
			}
			runner := provider.NewRunner(completer, a.segmenter, cfg).WithLogger(a.logger)
			a.logger.Debug("running model command",
				slog.String("provider", cfg.Name),
				slog.String("command", cfg.Command),
				slog.Duration("timeout", cfg.Timeout))

			if kind == "" {
				report, err := runner.Analyze(cmd.Context(), prompt)
				if err != nil {
					return err
				}
				return a.write(cmd.OutOrStdout(), newReportView(report))
			}

			rec, err := runner.Segment(cmd.Context(), kind, prompt)
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), newRecordView(rec))
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "response kind: grammar, tone or rewrite")
	cmd.Flags().StringVar(&command, "command", "", "model CLI to execute")
	cmd.Flags().StringArrayVar(&cmdArgs, "arg", nil, "argument passed to the model CLI (repeatable)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "completion timeout (0 disables)")

	return cmd
}
