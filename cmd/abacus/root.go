package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the abacus CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abacus",
		Short: "Abacus - a multi-tenant association ledger",
		Long: `Abacus is a small multi-tenant ledger service: associations
authenticate, hold named balances, and record income/expense
operations against them.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
