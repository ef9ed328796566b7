package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/mmynk/roomiesync/internal/app"
	"github.com/mmynk/roomiesync/internal/calculator"
	"github.com/mmynk/roomiesync/internal/models"
	"github.com/mmynk/roomiesync/internal/transfer"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expenses",
		Aliases: []string{"ex"},
		Short:   "Record and review the pooled ledger",
	}
	cmd.AddCommand(expensesListCmd())
	cmd.AddCommand(expensesAddCmd())
	cmd.AddCommand(expensesParseCmd())
	cmd.AddCommand(expensesReportCmd())
	return cmd
}

func expensesListCmd() *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger entries, newest first",
		Args:  cobra.NoArgs,
		RunE: run(func(_ context.Context, e *env, _ []string) error {
			expenses := e.state.Expenses
			if month != "" {
				year, m, err := parseMonth(month, e.ctrl.Now())
				if err != nil {
					return err
				}
				expenses = calculator.MonthlySummary(expenses, year, m, e.ctrl.Location()).Transactions
			}

			table := newTable(e.out, "Date", "Title", "Category", "Paid By", "Amount", "Split")
			for i := len(expenses) - 1; i >= 0; i-- {
				ex := expenses[i]
				amount := money(ex.Amount)
				if ex.IsContribution() {
					amount = color.Green.Sprint("+" + amount)
				}
				table.Append([]string{
					shortDate(ex.Date),
					ex.Title,
					calculator.CategoryLabel(ex.Category, e.state.Budgets.Labels),
					e.state.RoommateName(ex.PaidBy),
					amount,
					splitNames(e, ex),
				})
			}
			table.Render()
			return nil
		}),
	}
	cmd.Flags().StringVar(&month, "month", "", "Only show this month (YYYY-MM)")
	return cmd
}

func splitNames(e *env, ex models.Expense) string {
	if ex.IsContribution() {
		return ""
	}
	if len(ex.SplitAmong) == len(e.state.Roommates) {
		return "everyone"
	}
	names := make([]string, 0, len(ex.SplitAmong))
	for _, id := range ex.SplitAmong {
		names = append(names, e.state.RoommateName(id))
	}
	return strings.Join(names, ", ")
}

func expensesAddCmd() *cobra.Command {
	var (
		amount   float64
		category string
		paidBy   string
		split    []string
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an expense paid from the pool",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			in := app.NewExpense{Title: args[0], Amount: amount, Category: category}
			if err := fillPayerAndSplit(e, &in, paidBy, split); err != nil {
				return err
			}
			return addExpense(ctx, e, in)
		}),
	}
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "Amount paid")
	cmd.Flags().StringVarP(&category, "category", "c", models.CategoryOther, "Category key")
	cmd.Flags().StringVar(&paidBy, "paid-by", "", "Payer (default: you)")
	cmd.Flags().StringSliceVar(&split, "split", nil, "Roommates sharing the cost (default depends on category)")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func fillPayerAndSplit(e *env, in *app.NewExpense, paidBy string, split []string) error {
	if paidBy == "" {
		u, err := e.currentUser()
		if err != nil {
			return err
		}
		in.PaidBy = u.ID
	} else {
		r, err := e.resolveRoommate(paidBy)
		if err != nil {
			return err
		}
		in.PaidBy = r.ID
	}
	ids, err := e.resolveRoommates(split)
	if err != nil {
		return err
	}
	in.SplitAmong = ids
	return nil
}

func addExpense(ctx context.Context, e *env, in app.NewExpense) error {
	next, err := e.ctrl.AddExpense(ctx, e.state, in)
	if err != nil {
		return err
	}
	added := next.Expenses[len(next.Expenses)-1]
	e.printf("Added %q: %s in %s, paid by %s\n",
		added.Title, money(added.Amount), added.Category, next.RoommateName(added.PaidBy))
	return nil
}

func expensesParseCmd() *cobra.Command {
	var (
		save   bool
		paidBy string
	)
	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Turn a sentence like \"paid 450 for veggies\" into an expense",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(ctx context.Context, e *env, args []string) error {
			parsed, err := e.ctrl.ParseExpense(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			e.printf("Title:    %s\nAmount:   %s\nCategory: %s\n", parsed.Title, money(parsed.Amount), parsed.Category)
			if !save {
				return nil
			}
			in := app.NewExpense{Title: parsed.Title, Amount: parsed.Amount, Category: parsed.Category}
			if err := fillPayerAndSplit(e, &in, paidBy, nil); err != nil {
				return err
			}
			return addExpense(ctx, e, in)
		}),
	}
	cmd.Flags().BoolVar(&save, "save", false, "Add the parsed expense to the ledger")
	cmd.Flags().StringVar(&paidBy, "paid-by", "", "Payer when saving (default: you)")
	return cmd
}

func expensesReportCmd() *cobra.Command {
	var (
		month string
		dir   string
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the monthly CSV report",
		Args:  cobra.NoArgs,
		RunE: run(func(_ context.Context, e *env, _ []string) error {
			year, m, err := parseMonth(month, e.ctrl.Now().In(e.ctrl.Location()))
			if err != nil {
				return err
			}
			path := filepath.Join(dir, transfer.ReportFileName(year, m))
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create report: %w", err)
			}
			err = transfer.MonthlyReport(f, e.state.Expenses, e.state.Roommates, year, m, e.ctrl.Location())
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				_ = os.Remove(path)
				if errors.Is(err, transfer.ErrNoTransactions) {
					return fmt.Errorf("no transactions found for %s %d", m, year)
				}
				return err
			}
			e.printf("Report written to %s\n", path)
			return nil
		}),
	}
	cmd.Flags().StringVar(&month, "month", "", "Month to report (YYYY-MM, default: this month)")
	cmd.Flags().StringVarP(&dir, "out", "o", ".", "Output directory")
	return cmd
}
