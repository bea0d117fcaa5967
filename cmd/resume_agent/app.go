package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/embedding"
	"github.com/jonathan/resume-tailor/internal/extraction"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
)

// app holds what a single command invocation needs.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	printer *observability.Printer
	vocab   *skills.Vocabulary
	client  *llm.GeminiClient
}

// bindFlags binds viper keys to flags of the running command. Binding in
// PreRunE keeps commands that share a key from overriding each other.
func (o *rootOptions) bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, name := range keys {
		if err := o.v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind %s flag: %w", name, err)
		}
	}
	return nil
}

// newApp loads configuration and builds the logger. The LLM client is
// created only when the run needs it and a key is configured.
func (o *rootOptions) newApp(cmd *cobra.Command, needRemote bool) (*app, error) {
	cfg, err := config.Load(o.v, o.configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{cfg: cfg, log: log, vocab: skills.Default()}
	if o.verbose {
		a.printer = observability.NewPrinter(cmd.OutOrStdout())
	}

	needClient := needRemote || cfg.Embeddings == config.EmbeddingsGemini
	switch {
	case !needClient:
	case cfg.APIKey == "":
		log.Warn("no API key configured, remote extraction disabled",
			zap.String("env", config.APIKeyEnv))
	default:
		client, err := llm.NewClient(commandContext(cmd), cfg.LLMConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		a.client = client
	}
	return a, nil
}

func (a *app) close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	_ = a.log.Sync()
}

func (a *app) newExtractor() *extraction.RequirementExtractor {
	var remote extraction.Extractor
	if a.client != nil {
		remote = extraction.NewRemoteExtractor(a.client, a.vocab, a.log, a.cfg.RemoteOptions())
	}
	return extraction.NewRequirementExtractor(extraction.NewLocalExtractor(a.vocab), remote, a.log)
}

func (a *app) newScorer() *ranking.Scorer {
	var model embedding.Model = embedding.NewHashingModel(a.cfg.EmbeddingDimensions)
	if a.cfg.Embeddings == config.EmbeddingsGemini && a.client != nil {
		model = a.client
	}
	return ranking.NewScorer(a.vocab, embedding.NewEmbedder(model, nil, a.log), a.log)
}

func (a *app) newEngine() *pipeline.Engine {
	return pipeline.NewEngine(a.newExtractor(), a.newScorer(), nil, a.log)
}

// referenceDate parses a --ref-date value. Empty means now.
func referenceDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	t, err := types.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --ref-date: %w", err)
	}
	return t, nil
}

// readRequirements loads a JobRequirements JSON file.
func readRequirements(path string) (*types.JobRequirements, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirements file %s: %w", path, err)
	}
	var req types.JobRequirements
	if err := json.Unmarshal(content, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requirements JSON: %w", err)
	}
	return &req, nil
}

// writeJSON writes v to path and checks it against schemaFile. A failed
// schema check is logged, not returned.
func (a *app) writeJSON(path string, v any, schemaFile string) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaFile)); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			a.log.Warn("output validation failed", zap.String("path", path), zap.Error(err))
		}
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
