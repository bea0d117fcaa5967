// Package main implements the resume_agent CLI: requirement extraction,
// accomplishment scoring and resume tailoring over local files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootOptions is shared by every subcommand of one root command.
type rootOptions struct {
	v          *viper.Viper
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "resume_agent",
		Short:         "Job requirement matching and resume tailoring",
		Long:          "resume_agent extracts requirements from a job posting, scores a bank of accomplishments against them, and selects the accomplishments for a tailored resume.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML or JSON config file")
	flags.BoolP("debug", "d", false, "Enable debug logging")
	flags.Bool("json", false, "Log in JSON format")
	flags.String("api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print a summary of each result")

	for key, name := range map[string]string{
		"log.debug": "debug",
		"log.json":  "json",
		"api-key":   "api-key",
	} {
		if err := opts.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", name, err))
		}
	}

	rootCmd.AddCommand(
		newExtractRequirementsCmd(opts),
		newScoreCmd(opts),
		newTailorCmd(opts),
	)
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
