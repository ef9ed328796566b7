package main

import (
	"context"
	"fmt"
	"maps"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmynk/roomiesync/internal/calculator"
	"github.com/mmynk/roomiesync/internal/models"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Allocate the pool to categories",
	}
	cmd.AddCommand(budgetsShowCmd())
	cmd.AddCommand(budgetsSetCmd())
	cmd.AddCommand(budgetsRemoveCmd())
	return cmd
}

func budgetsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show budget health",
		Args:  cobra.NoArgs,
		RunE: run(func(_ context.Context, e *env, _ []string) error {
			overview := calculator.BudgetOverview(e.state.Budgets, e.state.Expenses)
			e.printf("Allocated:    %s\n", money(overview.TotalAllocated))
			e.printf("Unallocated:  %s\n\n", signedMoney(overview.Unallocated))

			rows := calculator.BudgetHealth(e.state.Budgets, e.state.Expenses)
			if len(rows) == 0 {
				e.printf("No budgets set. Use 'roomie budgets set <category> <amount>'.\n")
				return nil
			}
			renderBudgetRows(e, rows)
			return nil
		}),
	}
}

func renderBudgetRows(e *env, rows []calculator.BudgetRow) {
	table := newTable(e.out, "Key", "Category", "Spent", "Allocated", "Remaining", "")
	for _, row := range rows {
		table.Append([]string{
			row.Category,
			row.Label,
			money(row.Spent),
			money(row.Allocated),
			signedMoney(row.Remaining),
			progressBar(row.PercentUsed, row.Overrun()),
		})
	}
	table.Render()
}

func budgetsSetCmd() *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set a category allocation (admin only)",
		Long: `Set the allocation of a standard category or of an existing custom key.
Any other name creates a custom fund labeled with that name.`,
		Args: cobra.ExactArgs(2),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			b := cloneBudgets(e.state.Budgets)
			key := args[0]
			if _, exists := b.Allocations[key]; !exists && !models.IsKnownCategory(key) {
				if label == "" {
					label = key
				}
				key = fmt.Sprintf("%s%d", calculator.CustomPrefix, e.ctrl.Now().UnixMilli())
			}
			b.Allocations[key] = amount
			if label != "" {
				b.Labels[key] = label
			}

			next, err := e.ctrl.UpdateBudgets(ctx, e.state, b)
			if err != nil {
				return err
			}
			e.printf("%s: %s\n", calculator.CategoryLabel(key, next.Budgets.Labels), money(amount))
			return nil
		}),
	}
	cmd.Flags().StringVar(&label, "label", "", "Display name for the category")
	return cmd
}

func budgetsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category>",
		Short: "Remove a category allocation (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			b := cloneBudgets(e.state.Budgets)
			if _, ok := b.Allocations[args[0]]; !ok {
				return fmt.Errorf("no allocation for %s", args[0])
			}
			delete(b.Allocations, args[0])
			delete(b.Labels, args[0])
			if _, err := e.ctrl.UpdateBudgets(ctx, e.state, b); err != nil {
				return err
			}
			e.printf("Removed %s\n", args[0])
			return nil
		}),
	}
}

func cloneBudgets(b models.Budgets) models.Budgets {
	out := models.NewBudgets()
	maps.Copy(out.Allocations, b.Allocations)
	maps.Copy(out.Labels, b.Labels)
	return out
}
