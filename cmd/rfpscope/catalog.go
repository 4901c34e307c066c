package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rfpscope/internal/catalog"
	"rfpscope/internal/config"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with the service catalog",
	}

	cmd.PersistentFlags().StringP("catalog", "c", "", "service catalog file (JSON or YAML; built-in catalog when omitted)")
	_ = viper.BindPFlag("catalog.path", cmd.PersistentFlags().Lookup("catalog"))

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogValidateCmd())

	return cmd
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		RunE: func(_ *cobra.Command, _ []string) error {
			entries, err := catalog.Load(config.ExpandPath(viper.GetString("catalog.path")))
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			for _, e := range entries {
				fmt.Printf("%-24s %-12s %.0f%% success\n", e.ID, e.Category, e.SuccessRate*100)
				fmt.Printf("  %s: %s\n", e.Name, e.Description)
				if len(e.Tags) > 0 {
					fmt.Printf("  tags: %v\n", e.Tags)
				}
			}
			fmt.Printf("%d entries\n", len(entries))
			return nil
		},
	}
}

func catalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a catalog file",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.ExpandPath(viper.GetString("catalog.path"))
			entries, err := catalog.Load(path)
			if err != nil {
				return fmt.Errorf("catalog is invalid: %w", err)
			}
			fmt.Printf("Catalog OK: %d entries\n", len(entries))
			return nil
		},
	}
}
