package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sprifti/textkit/segment"
)

// batchResult is the outcome for one file of a batch.
type batchResult struct {
	File   string `json:"file" yaml:"file"`
	Result any    `json:"result" yaml:"result"`
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		kindName string
		jobs     int
	)

	cmd := &cobra.Command{
		Use:   "batch [--kind KIND] file...",
		Short: "Segment many response files concurrently",
		Long: `batch segments every file and prints the results in argument order.
Without --kind each file is treated as a combined response.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind segment.Kind
			if kindName != "" {
				k, err := segment.ParseKind(kindName)
				if err != nil {
					return err
				}
				kind = k
			}

			results, err := a.segmentFiles(cmd, kind, args, jobs)
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "response kind: grammar, tone or rewrite")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of files processed in parallel")

	return cmd
}

// segmentFiles reads and segments files with at most jobs in flight.
// An empty kind analyzes each file as a combined response.
func (a *app) segmentFiles(cmd *cobra.Command, kind segment.Kind, files []string, jobs int) ([]batchResult, error) {
	if jobs < 1 {
		jobs = 1
	}

	results := make([]batchResult, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			var out any
			if kind == "" {
				out = analyzeView(a.segmenter, string(data))
			} else {
				out = newRecordView(a.segmenter.Segment(kind, string(data)))
			}
			results[i] = batchResult{File: file, Result: out}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
