package models

import "time"

// Category keys. CategoryContribution is reserved: it records money paid into the
// pool rather than spent from it.
const (
	CategoryContribution = "Contribution"
	CategoryRent         = "Rent"
	CategoryGrocery      = "Grocery"
	CategoryVeg          = "Vegetables"
	CategoryNonVeg       = "Non-Veg"
	CategoryPetrol       = "Petrol"
	CategoryUtilities    = "Utilities"
	CategoryOther        = "Other"
)

// StandardCategories lists the built-in spend categories in display order.
// CategoryContribution is not a spend category and is not included.
var StandardCategories = []string{
	CategoryRent,
	CategoryGrocery,
	CategoryVeg,
	CategoryNonVeg,
	CategoryPetrol,
	CategoryUtilities,
	CategoryOther,
}

// IsKnownCategory reports whether key is a standard category or the contribution category.
func IsKnownCategory(key string) bool {
	if key == CategoryContribution {
		return true
	}
	for _, c := range StandardCategories {
		if c == key {
			return true
		}
	}
	return false
}

// Expense is one immutable ledger entry.
type Expense struct {
	// ID is the unique identifier for the expense.
	ID string `json:"id" validate:"required"`

	// Title is a short description ("Weekly vegetables").
	Title string `json:"title" validate:"required"`

	// Amount is the full amount paid.
	Amount float64 `json:"amount" validate:"gt=0"`

	// PaidBy is the ID of the roommate who paid.
	PaidBy string `json:"paidBy" validate:"required"`

	// Category is matched exactly; unknown keys are tolerated.
	Category string `json:"category" validate:"required"`

	// Date is when the expense was recorded.
	Date time.Time `json:"date"`

	// SplitAmong lists the roommate IDs sharing the cost.
	// Contributions carry only the payer.
	SplitAmong []string `json:"splitAmong"`
}

// IsContribution reports whether the expense is money paid into the pool.
func (e Expense) IsContribution() bool {
	return e.Category == CategoryContribution
}

// ContributionTitle is used for quick-add contributions.
const ContributionTitle = "Monthly Rent/Contribution"
