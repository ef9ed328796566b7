package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/roomiesync/internal/models"
)

// MemberStat is the ledger position of one roommate.
type MemberStat struct {
	RoommateID string
	Name       string

	// Contributed is the sum of contribution entries paid by this roommate.
	Contributed float64

	// Share is how much of the pool this roommate consumed: for every non-contribution
	// expense they take part in, amount / len(SplitAmong).
	Share float64

	// RoundedShare is Share rounded to the nearest whole unit for display.
	RoundedShare float64

	// Target is the agreed monthly contribution.
	Target float64

	// Balance is Target - Contributed and goes negative on overpayment.
	Balance float64

	// Dues is Balance floored at zero.
	Dues float64
}

// AllPaidUp reports whether nothing is owed.
func (m MemberStat) AllPaidUp() bool {
	return m.Dues == 0
}

// MemberStats computes one MemberStat per roommate, in roommate order.
func MemberStats(roommates []models.Roommate, expenses []models.Expense) []MemberStat {
	stats := make([]MemberStat, 0, len(roommates))
	for _, r := range roommates {
		contributed := ContributedBy(expenses, r.ID)
		share := shareOf(expenses, r.ID)
		balance := amount(r.AgreedContribution).Sub(contributed)

		dues := balance
		if dues.IsNegative() {
			dues = decimal.Zero
		}

		stats = append(stats, MemberStat{
			RoommateID:   r.ID,
			Name:         r.Name,
			Contributed:  contributed.InexactFloat64(),
			Share:        share.InexactFloat64(),
			RoundedShare: share.Round(0).InexactFloat64(),
			Target:       r.AgreedContribution,
			Balance:      balance.InexactFloat64(),
			Dues:         dues.InexactFloat64(),
		})
	}
	return stats
}

// FindMemberStat returns the stat row for the given roommate.
func FindMemberStat(stats []MemberStat, roommateID string) (MemberStat, bool) {
	for _, s := range stats {
		if s.RoommateID == roommateID {
			return s, true
		}
	}
	return MemberStat{}, false
}

// ContributedBy sums the contribution entries paid by the roommate.
func ContributedBy(expenses []models.Expense, roommateID string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.IsContribution() && e.PaidBy == roommateID {
			total = total.Add(amount(e.Amount))
		}
	}
	return total
}

// ShareOf returns the roommate's consumed share of non-contribution expenses.
func ShareOf(expenses []models.Expense, roommateID string) float64 {
	return shareOf(expenses, roommateID).InexactFloat64()
}

func shareOf(expenses []models.Expense, roommateID string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.IsContribution() {
			continue
		}
		total = total.Add(splitPortion(e, roommateID))
	}
	return total
}

// splitPortion is the roommate's slice of one expense. An empty split set gives
// every roommate a zero portion.
func splitPortion(e models.Expense, roommateID string) decimal.Decimal {
	if len(e.SplitAmong) == 0 {
		return decimal.Zero
	}
	for _, id := range e.SplitAmong {
		if id == roommateID {
			return amount(e.Amount).Div(decimal.NewFromInt(int64(len(e.SplitAmong))))
		}
	}
	return decimal.Zero
}
