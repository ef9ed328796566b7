package main

import (
	"context"
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/mmynk/roomiesync/internal/app"
	"github.com/mmynk/roomiesync/internal/calculator"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Show the pool balance, member dues and budget health",
		Args:    cobra.NoArgs,
		RunE: run(func(_ context.Context, e *env, _ []string) error {
			s := e.state
			totals := calculator.CalculateTotals(s.Expenses)

			heading(e.out, "Household pool")
			e.printf("Collected:  %s\n", money(totals.Collected))
			e.printf("Spent:      %s\n", money(totals.Spent))
			e.printf("Balance:    %s\n\n", signedMoney(totals.PoolBalance))

			heading(e.out, "Members")
			table := newTable(e.out, "Name", "Contributed", "Target", "Share", "Dues", "Pending")
			for _, m := range calculator.MemberStats(s.Roommates, s.Expenses) {
				dues := color.Green.Sprint("paid up")
				if !m.AllPaidUp() {
					dues = color.Red.Sprint(money(m.Dues))
				}
				table.Append([]string{
					m.Name,
					money(m.Contributed),
					money(m.Target),
					money(m.RoundedShare),
					dues,
					fmt.Sprint(app.PendingCount(s.Tasks, m.RoommateID)),
				})
			}
			table.Render()
			e.printf("\n")

			if rows := calculator.BudgetHealth(s.Budgets, s.Expenses); len(rows) > 0 {
				heading(e.out, "Budgets")
				renderBudgetRows(e, rows)
				e.printf("\n")
			}

			if spending := calculator.TopCategories(calculator.CategorySpending(s.Expenses)); len(spending) > 0 {
				heading(e.out, "Top categories")
				for i, c := range spending {
					if i == 3 {
						break
					}
					e.printf("%-14s %s\n", calculator.CategoryLabel(c.Category, s.Budgets.Labels), money(c.Amount))
				}
			}
			return nil
		}),
	}
}
