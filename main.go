package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"librarium/library"
)

var (
	ratePerDay int
	overdueFee int
	baseID     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "librarium",
		Short: "Interactive in-memory library catalog manager",
		Long: `Librarium tracks a small shelf of loanable items for one interactive
session: search, borrow, buy, and return items, simulate days passing,
and review fines and aggregate stats. Nothing is persisted; all state
lives in memory for the duration of the run.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession()
		},
	}

	rootCmd.Flags().IntVar(&ratePerDay, "rate", 10, "fine charged per borrowed day")
	rootCmd.Flags().IntVar(&overdueFee, "overdue-fee", library.DefaultOverdueFee,
		"flat fee added when an overdue item is returned")
	rootCmd.Flags().IntVar(&baseID, "base-id", library.DefaultBaseID,
		"first item id handed out")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
