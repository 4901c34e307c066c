package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rfpscope/internal/catalog"
	"rfpscope/internal/common"
	"rfpscope/internal/config"
	"rfpscope/internal/docsource"
	"rfpscope/internal/export"
	"rfpscope/internal/extract"
	"rfpscope/internal/matching"
	"rfpscope/internal/pipeline"
	"rfpscope/internal/riskscan"
	"rfpscope/internal/store"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <document>",
		Short: "Analyze a proposal request",
		Long: `Analyze a proposal request document: extract requirements, detect risky
contract language, and match requirements against the service catalog.

Examples:
  rfpscope analyze rfp.pdf                      # Analyze and print a summary
  rfpscope analyze rfp.txt --output markdown    # Emit a markdown report
  rfpscope analyze rfp.pdf --db scope.db        # Persist the analysis`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("catalog", "c", "", "service catalog file (JSON or YAML; built-in catalog when omitted)")
	cmd.Flags().String("db", "", "SQLite database to persist the analysis in")
	cmd.Flags().StringP("output", "o", "table", "output format (table, json, markdown)")
	cmd.Flags().Float64("min-confidence", 0, "drop findings below this confidence")
	cmd.Flags().Int("chunk-size", 0, "maximum characters per extraction chunk")
	cmd.Flags().Int("chunk-overlap", 0, "characters of overlap between chunks")
	cmd.Flags().Bool("no-progress", false, "disable the extraction progress bar")

	_ = viper.BindPFlag("catalog.path", cmd.Flags().Lookup("catalog"))
	_ = viper.BindPFlag("database.path", cmd.Flags().Lookup("db"))
	_ = viper.BindPFlag("analysis.min_confidence", cmd.Flags().Lookup("min-confidence"))
	_ = viper.BindPFlag("analysis.chunk_size", cmd.Flags().Lookup("chunk-size"))
	_ = viper.BindPFlag("analysis.chunk_overlap", cmd.Flags().Lookup("chunk-overlap"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	output, _ := cmd.Flags().GetString("output")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	doc, err := docsource.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	slog.Info("Loaded document", "name", doc.Name, "pages", len(doc.Pages()))

	client, err := createLLMClient()
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	extractCfg := extract.Config{
		ChunkSize:    viper.GetInt("analysis.chunk_size"),
		ChunkOverlap: viper.GetInt("analysis.chunk_overlap"),
		Retry: common.RetryOptions{
			MaxAttempts:  viper.GetInt("llm.max_retries"),
			InitialDelay: viper.GetDuration("llm.retry_delay"),
		},
	}
	if !noProgress {
		bar := newExtractionBar()
		extractCfg.OnChunk = func(_, _ int) { _ = bar.Add(1) }
		defer func() { _ = bar.Finish() }()
	}

	extractor := extract.NewExtractor(client, extractCfg, slog.Default())
	analyzer := pipeline.New(extractor, riskscan.NewDefaultScanner(), pipeline.Config{
		MinConfidence: viper.GetFloat64("analysis.min_confidence"),
	}, slog.Default())

	ac, err := analyzer.Analyze(ctx, doc)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	entries, err := catalog.Load(config.ExpandPath(viper.GetString("catalog.path")))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	matcher := matching.NewMatcher(entries, slog.Default())
	ac.Matches = matcher.MatchAll(ac.Requirements)
	ac.Coverage = matching.Summarize(ac.Matches)

	if dbPath := config.ExpandPath(viper.GetString("database.path")); dbPath != "" {
		if err := persistAnalysis(cmd, dbPath, ac); err != nil {
			return err
		}
	}

	return writeAnalysis(output, ac)
}

func persistAnalysis(cmd *cobra.Command, dbPath string, ac *pipeline.Context) error {
	db, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	if err := db.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := db.SaveAnalysis(cmd.Context(), ac); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	slog.Info("Saved analysis", "id", ac.ID, "db", dbPath)
	return nil
}

func writeAnalysis(format string, ac *pipeline.Context) error {
	switch format {
	case "json":
		return export.WriteJSON(os.Stdout, ac)
	case "markdown":
		return export.WriteMarkdown(os.Stdout, ac)
	case "table":
		fmt.Println(export.NewTerminalFormatter().FormatSummary(ac))
		return nil
	default:
		return fmt.Errorf("invalid output format: %s", format)
	}
}

func newExtractionBar() *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("Extracting findings..."),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
}
