// Command roomie manages a shared household from the terminal: roommates, the pooled
// expense ledger, budgets, chores and the household chat.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprint("Error: ")+err.Error())
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "roomie",
		Short:         "RoomieSync - shared household management",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(roommatesCmd())
	rootCmd.AddCommand(expensesCmd())
	rootCmd.AddCommand(budgetsCmd())
	rootCmd.AddCommand(tasksCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(backupCmd())

	return rootCmd
}
