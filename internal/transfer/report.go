package transfer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomiesync/internal/calculator"
	"github.com/mmynk/roomiesync/internal/models"
)

// ErrNoTransactions is returned when the requested month has no ledger entries.
var ErrNoTransactions = errors.New("no transactions found for month")

// MonthlyReport writes the CSV report for one calendar month in loc.
func MonthlyReport(w io.Writer, expenses []models.Expense, roommates []models.Roommate, year int, month time.Month, loc *time.Location) error {
	summary := calculator.MonthlySummary(expenses, year, month, loc)
	if summary.Empty() {
		return fmt.Errorf("%w: %s %d", ErrNoTransactions, month, year)
	}

	cw := csv.NewWriter(w)
	rows := [][]string{
		{fmt.Sprintf("ROOMIESYNC MONTHLY REPORT - %s %d", strings.ToUpper(month.String()), year)},
		{},
		{"SUMMARY"},
		{"Total Collected", rupees(summary.Totals.Collected)},
		{"Total Spent", rupees(summary.Totals.Spent)},
		{"Net Balance for Month", rupees(summary.Totals.PoolBalance)},
		{},
		{"CATEGORY BREAKDOWN"},
		{"Category", "Spent"},
	}
	for _, c := range summary.ByCategory {
		rows = append(rows, []string{c.Category, rupees(c.Amount)})
	}
	rows = append(rows,
		[]string{},
		[]string{"TRANSACTION DETAILS"},
		[]string{"Date", "Title", "Category", "Paid By", "Amount", "Type"},
	)
	for _, e := range summary.Transactions {
		payer := "Unknown"
		if r, ok := models.FindRoommate(roommates, e.PaidBy); ok {
			payer = r.Name
		}
		kind := "EXPENSE"
		if e.IsContribution() {
			kind = "INCOME"
		}
		rows = append(rows, []string{
			e.Date.In(loc).Format("2006-01-02"),
			strings.ReplaceAll(e.Title, ",", " "),
			e.Category,
			payer,
			rupees(e.Amount),
			kind,
		})
	}

	// an empty row is written as a blank line
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// ReportFileName is the suggested name for the report of the given month.
func ReportFileName(year int, month time.Month) string {
	return fmt.Sprintf("RoomieSync_Report_%04d-%02d.csv", year, int(month))
}

func rupees(v float64) string {
	return "Rs. " + decimal.NewFromFloat(v).String()
}
