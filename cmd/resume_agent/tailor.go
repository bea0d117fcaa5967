package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/experience"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/pipeline"
)

type tailorOptions struct {
	job             string
	accomplishments string
	output          string
	requirementsOut string
	scoresOut       string
	refDate         string
}

// tailorFlagKeys maps selection config keys to tailor flags.
var tailorFlagKeys = map[string]string{
	"selection.use-remote-extraction": "remote",
	"selection.minimum-score":         "min-score",
	"selection.max-total":             "max-total",
	"selection.max-per-company":       "max-per-company",
	"selection.current-role-floor":    "current-role-floor",
}

func newTailorCmd(root *rootOptions) *cobra.Command {
	opts := &tailorOptions{}
	cmd := &cobra.Command{
		Use:   "tailor",
		Short: "Select accomplishments for a job posting",
		Long:  "Runs extraction, scoring and selection for one job posting and writes the TailoredResume JSON: selected accomplishments, skill coverage, gaps and recommendations.",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return root.bindFlags(cmd, tailorFlagKeys)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTailor(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.job, "job", "i", "", "Path to the job posting text file (required)")
	flags.StringVarP(&opts.accomplishments, "accomplishments", "a", "", "Path to input accomplishments JSON file (required)")
	flags.StringVarP(&opts.output, "out", "o", "", "Path to output TailoredResume JSON file (required)")
	flags.StringVar(&opts.requirementsOut, "requirements-out", "", "Also write the extracted JobRequirements JSON here")
	flags.StringVar(&opts.scoresOut, "scores-out", "", "Also write every accomplishment score here")
	flags.StringVar(&opts.refDate, "ref-date", "", "Reference date for recency, YYYY-MM-DD (default today)")
	flags.Bool("remote", false, "Also run model-based extraction")
	flags.Float64("min-score", 0, "Minimum final score for selection")
	flags.Int("max-total", 0, "Maximum number of selected accomplishments")
	flags.Int("max-per-company", 0, "Maximum selected accomplishments per company")
	flags.Float64("current-role-floor", 0, "Share of slots reserved for current roles")

	for _, name := range []string{"job", "accomplishments", "out"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
	return cmd
}

func runTailor(cmd *cobra.Command, root *rootOptions, opts *tailorOptions) error {
	ref, err := referenceDate(opts.refDate)
	if err != nil {
		return err
	}

	// 1. Load inputs
	jobText, _, err := ingestion.IngestFromFile(opts.job)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}
	accs, err := experience.LoadAccomplishments(opts.accomplishments)
	if err != nil {
		return fmt.Errorf("failed to load accomplishments: %w", err)
	}

	a, err := root.newApp(cmd, root.v.GetBool("selection.use-remote-extraction"))
	if err != nil {
		return err
	}
	defer a.close()

	// 2. Run the pipeline
	result, err := a.newEngine().Tailor(commandContext(cmd), pipeline.Request{
		JobText:         jobText,
		Accomplishments: accs,
		Config:          a.cfg.Selection,
		ReferenceDate:   ref,
		OnProgress: func(ev pipeline.ProgressEvent) {
			a.log.Debug(ev.Message, zap.String("step", ev.Step), zap.String("category", ev.Category))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to tailor resume: %w", err)
	}
	if a.printer != nil {
		a.printer.PrintRequirements(result.Requirements)
		a.printer.PrintScores(result.Scored)
		a.printer.PrintTailoredResume(result.Resume)
	}

	// 3. Write
	if opts.requirementsOut != "" {
		if err := a.writeJSON(opts.requirementsOut, result.Requirements, "job_requirements.schema.json"); err != nil {
			return err
		}
	}
	if opts.scoresOut != "" {
		if err := a.writeJSON(opts.scoresOut, result.Scored, "scored_accomplishments.schema.json"); err != nil {
			return err
		}
	}
	if err := a.writeJSON(opts.output, result.Resume, "tailored_resume.schema.json"); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully selected %d of %d accomplishments (%.0f%% coverage) to %s\n",
		len(result.Resume.SelectedAccomplishments), len(accs), result.Resume.CoveragePercentage, opts.output)
	return nil
}
