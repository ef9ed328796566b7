package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}

func money(v float64) string {
	return "Rs. " + decimal.NewFromFloat(v).Round(2).String()
}

// signedMoney is green when v is positive and red when negative.
func signedMoney(v float64) string {
	switch {
	case v > 0:
		return color.Green.Sprint(money(v))
	case v < 0:
		return color.Red.Sprint(money(v))
	default:
		return money(v)
	}
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, color.Bold.Sprint(title))
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
}

// progressBar draws percent (0 to 100) as a fixed-width bar.
func progressBar(percent float64, overrun bool) string {
	const width = 20
	filled := int(percent / 100 * width)
	bar := strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
	if overrun {
		return color.Red.Sprint(bar)
	}
	if percent >= 80 {
		return color.Yellow.Sprint(bar)
	}
	return color.Green.Sprint(bar)
}

func shortDate(t time.Time) string {
	return t.Local().Format("02 Jan 2006")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

// parseMonth reads YYYY-MM, defaulting to the month of now.
func parseMonth(s string, now time.Time) (int, time.Month, error) {
	if s == "" {
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, want YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}
