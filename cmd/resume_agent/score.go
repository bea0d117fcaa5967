package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/experience"
)

type scoreOptions struct {
	requirements    string
	accomplishments string
	output          string
	refDate         string
}

func newScoreCmd(root *rootOptions) *cobra.Command {
	opts := &scoreOptions{}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score accomplishments against job requirements",
		Long:  "Scores every accomplishment in a file against a JobRequirements JSON and writes the scores in input order, with per-component breakdowns and reasons.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.requirements, "requirements", "r", "", "Path to input JobRequirements JSON file (required)")
	cmd.Flags().StringVarP(&opts.accomplishments, "accomplishments", "a", "", "Path to input accomplishments JSON file (required)")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Path to output scores JSON file (required)")
	cmd.Flags().StringVar(&opts.refDate, "ref-date", "", "Reference date for recency, YYYY-MM-DD (default today)")

	for _, name := range []string{"requirements", "accomplishments", "out"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
	return cmd
}

func runScore(cmd *cobra.Command, root *rootOptions, opts *scoreOptions) error {
	ref, err := referenceDate(opts.refDate)
	if err != nil {
		return err
	}

	// 1. Load inputs
	req, err := readRequirements(opts.requirements)
	if err != nil {
		return err
	}
	accs, err := experience.LoadAccomplishments(opts.accomplishments)
	if err != nil {
		return fmt.Errorf("failed to load accomplishments: %w", err)
	}

	a, err := root.newApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	// 2. Score
	scored := a.newScorer().Score(commandContext(cmd), req, accs, ref)
	if a.printer != nil {
		a.printer.PrintScores(scored)
	}

	// 3. Write
	if err := a.writeJSON(opts.output, scored, "scored_accomplishments.schema.json"); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully scored %d accomplishments to %s\n", len(scored), opts.output)
	return nil
}
