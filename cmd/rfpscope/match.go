package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rfpscope/internal/catalog"
	"rfpscope/internal/config"
	"rfpscope/internal/matching"
	"rfpscope/internal/model"
)

func matchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <requirement text>",
		Short: "Match a single requirement against the catalog",
		Long: `Score one requirement against every catalog entry and print the
top-ranked services.

Examples:
  rfpscope match "Deploy on AWS with Kubernetes auto-scaling"
  rfpscope match "Annual HIPAA audit" --category compliance --top 5`,
		Args: cobra.ExactArgs(1),
		RunE: runMatch,
	}

	cmd.Flags().StringP("catalog", "c", "", "service catalog file (JSON or YAML; built-in catalog when omitted)")
	cmd.Flags().String("category", "", "requirement category (technical, functional, security, compliance, operational)")
	cmd.Flags().IntP("top", "n", matching.DefaultTopN, "number of matches to show")
	cmd.Flags().Float64("min-score", 0, "drop matches below this score")

	_ = viper.BindPFlag("catalog.path", cmd.Flags().Lookup("catalog"))

	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
	rawCategory, _ := cmd.Flags().GetString("category")
	topN, _ := cmd.Flags().GetInt("top")
	minScore, _ := cmd.Flags().GetFloat64("min-score")

	category, ok := model.ParseRequirementCategory(rawCategory)
	if rawCategory != "" && !ok {
		slog.Warn("unknown category, substituting default",
			"category", rawCategory, "default", string(category))
	}

	entries, err := catalog.Load(config.ExpandPath(viper.GetString("catalog.path")))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	matcher := matching.NewMatcher(entries, slog.Default())
	results := matcher.Match(model.Requirement{
		ID:          uuid.NewString(),
		Description: args[0],
		Category:    category,
		Priority:    model.DefaultPriority,
		Confidence:  1.0,
		Method:      model.MethodManual,
	}, matching.Options{TopN: topN, MinScore: minScore})

	if len(results) == 0 {
		fmt.Println("No matches above the score threshold.")
		return nil
	}

	for i, m := range results {
		approved := ""
		if m.Approved {
			approved = " [approved]"
		}
		fmt.Printf("%d. %.2f %s (%s)%s\n   %s\n",
			i+1, m.Score, m.EntryName, matching.ScoreBand(m.Score), approved, m.Rationale)
	}
	return nil
}
