package main

import (
	"github.com/spf13/cobra"

	"github.com/sprifti/textkit/segment"
)

// recordView is a Record plus the interpretation of its fields.
type recordView struct {
	segment.Record `yaml:",inline"`

	Unparsed  bool                 `json:"errors_unparsed,omitempty" yaml:"errors_unparsed,omitempty"`
	Formality int                  `json:"formality,omitempty" yaml:"formality,omitempty"`
	Polarity  segment.Sentiment    `json:"polarity,omitempty" yaml:"polarity,omitempty"`
	Mode      string               `json:"rewrite_mode,omitempty" yaml:"rewrite_mode,omitempty"`
	Options   []segment.ToneOption `json:"options,omitempty" yaml:"options,omitempty"`
}

func newRecordView(rec segment.Record) recordView {
	v := recordView{Record: rec}
	switch rec.Kind {
	case segment.KindGrammar:
		if rec.Errors != nil {
			v.Unparsed = rec.Errors.Unparsed()
		}
	case segment.KindTone:
		if !rec.Fallback {
			tone := rec.Tone()
			v.Formality = tone.Formality()
			v.Polarity = tone.Polarity()
		}
	case segment.KindRewrite:
		rw := rec.Rewrite()
		v.Mode = rw.Mode().String()
		v.Options = rw.Options()
	}
	return v
}

func newParseCmd(a *app) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "parse --kind KIND [file]",
		Short: "Segment one response of a single kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := segment.ParseKind(kindName)
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), newRecordView(a.segmenter.Segment(kind, text)))
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "response kind: grammar, tone or rewrite")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

// reportView is a Report with every record interpreted.
type reportView struct {
	Grammar recordView `json:"grammar" yaml:"grammar"`
	Tone    recordView `json:"tone" yaml:"tone"`
	Rewrite recordView `json:"rewrite" yaml:"rewrite"`
}

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file]",
		Short: "Split a combined grammar, tone and rewrite response and segment each part",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), analyzeView(a.segmenter, text))
		},
	}
}

func analyzeView(s *segment.Segmenter, text string) reportView {
	return newReportView(s.Analyze(text))
}

func newReportView(report segment.Report) reportView {
	return reportView{
		Grammar: newRecordView(report.Grammar),
		Tone:    newRecordView(report.Tone),
		Rewrite: newRecordView(report.Rewrite),
	}
}

func newSplitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "split [file]",
		Short: "Split a combined response into grammar, tone and alternatives segments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), a.segmenter.Split(text))
		},
	}
}

// errorsView is an ErrorList with its unparsed state made explicit.
type errorsView struct {
	Items     []segment.GrammarError `json:"items" yaml:"items"`
	NoneFound bool                   `json:"none_found" yaml:"none_found"`
	Unparsed  bool                   `json:"unparsed" yaml:"unparsed"`
}

func newErrorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "errors [file]",
		Short: "Parse the body of a GRAMMATICAL ERRORS section",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			list := a.segmenter.ParseErrors(text)
			return a.write(cmd.OutOrStdout(), errorsView{
				Items:     list.Items,
				NoneFound: list.NoneFound,
				Unparsed:  list.Unparsed(),
			})
		},
	}
}

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the analyze report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := segment.Schema()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}
}
