package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/ingestion"
)

type extractRequirementsOptions struct {
	job    string
	output string
	remote bool
}

func newExtractRequirementsCmd(root *rootOptions) *cobra.Command {
	opts := &extractRequirementsOptions{}
	cmd := &cobra.Command{
		Use:   "extract-requirements",
		Short: "Extract structured requirements from a job posting",
		Long:  "Reads a plain-text job posting and writes the extracted requirements as JobRequirements JSON. With --remote and an API key, a model-based pass is merged with the local one.",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return root.bindFlags(cmd, map[string]string{"selection.use-remote-extraction": "remote"})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtractRequirements(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.job, "job", "i", "", "Path to the job posting text file (required)")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Path to output JobRequirements JSON file (required)")
	cmd.Flags().BoolVar(&opts.remote, "remote", false, "Also run model-based extraction")

	for _, name := range []string{"job", "out"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
	return cmd
}

func runExtractRequirements(cmd *cobra.Command, root *rootOptions, opts *extractRequirementsOptions) error {
	// 1. Read the posting
	jobText, meta, err := ingestion.IngestFromFile(opts.job)
	if err != nil {
		return fmt.Errorf("failed to read job posting: %w", err)
	}

	a, err := root.newApp(cmd, root.v.GetBool("selection.use-remote-extraction"))
	if err != nil {
		return err
	}
	defer a.close()
	a.log.Debug("job posting loaded",
		zap.String("source", meta.Source),
		zap.String("hash", meta.Hash),
		zap.Int("lines", meta.Lines),
		zap.Int("bullets", meta.Bullets))

	// 2. Extract
	useRemote := a.cfg.Selection.UseRemoteExtraction
	req, err := a.newExtractor().Extract(commandContext(cmd), jobText, useRemote)
	if err != nil {
		return fmt.Errorf("failed to extract requirements: %w", err)
	}
	if a.printer != nil {
		a.printer.PrintRequirements(req)
	}

	// 3. Write
	if err := a.writeJSON(opts.output, req, "job_requirements.schema.json"); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully extracted %d required and %d preferred skills (%s, confidence %.2f) to %s\n",
		len(req.RequiredSkills), len(req.PreferredSkills), req.ExtractionMethod, req.ConfidenceScore, opts.output)
	return nil
}
