package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rfpscope/internal/config"
	"rfpscope/internal/store"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show stored analyses",
	}

	cmd.PersistentFlags().String("db", "", "SQLite database holding stored analyses")
	_ = viper.BindPFlag("database.path", cmd.PersistentFlags().Lookup("db"))

	cmd.AddCommand(reportListCmd())
	cmd.AddCommand(reportShowCmd())

	return cmd
}

func openStore(cmd *cobra.Command) (*store.SQLiteStore, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))
	if dbPath == "" {
		return nil, fmt.Errorf("no database configured; pass --db or set database.path")
	}
	db, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Migrate(cmd.Context()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func reportListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored analyses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			summaries, err := db.ListAnalyses(cmd.Context())
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Println("No stored analyses.")
				return nil
			}

			for _, s := range summaries {
				fmt.Printf("%s  %s  %s  coverage %.0f%% (%d/%d approved)\n",
					s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.DocumentName,
					s.OverallCoverage*100, s.ApprovedMatches, s.TotalMatches)
			}
			return nil
		},
	}
}

func reportShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <analysis-id>",
		Short: "Show one stored analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			ac, err := db.GetAnalysis(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			return writeAnalysis(output, ac)
		},
	}

	cmd.Flags().StringP("output", "o", "table", "output format (table, json, markdown)")
	return cmd
}
