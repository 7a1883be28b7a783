package catalog

import "github.com/finflow/finflow/pkg/domain"

// SeedCategory is one entry of a category seed list.
type SeedCategory struct {
	Name string              `json:"name"`
	Type domain.CategoryType `json:"type"`
}

// DefaultCategories is the small onboarding tier.
var DefaultCategories = []SeedCategory{
	{Name: "Salary", Type: domain.CategoryTypeIncome},
	{Name: "Freelance", Type: domain.CategoryTypeIncome},
	{Name: "Investments", Type: domain.CategoryTypeIncome},
	{Name: "Other Income", Type: domain.CategoryTypeIncome},
	{Name: "Housing", Type: domain.CategoryTypeExpense},
	{Name: "Transportation", Type: domain.CategoryTypeExpense},
	{Name: "Food", Type: domain.CategoryTypeExpense},
	{Name: "Utilities", Type: domain.CategoryTypeExpense},
	{Name: "Healthcare", Type: domain.CategoryTypeExpense},
	{Name: "Entertainment", Type: domain.CategoryTypeExpense},
	{Name: "Shopping", Type: domain.CategoryTypeExpense},
	{Name: "Education", Type: domain.CategoryTypeExpense},
	{Name: "Savings", Type: domain.CategoryTypeExpense},
	{Name: "Other Expenses", Type: domain.CategoryTypeExpense},
}

// ExtendedCategories is the larger tier, including bank-feed and
// investment-specific labels. It overlaps DefaultCategories by name
// ("Entertainment", "Education"); seeding de-duplicates.
var ExtendedCategories = []SeedCategory{
	{Name: "Dining & Restaurants", Type: domain.CategoryTypeExpense},
	{Name: "Travel & Transportation", Type: domain.CategoryTypeExpense},
	{Name: "Groceries", Type: domain.CategoryTypeExpense},
	{Name: "Shopping & Retail", Type: domain.CategoryTypeExpense},
	{Name: "Entertainment", Type: domain.CategoryTypeExpense},
	{Name: "Bills & Utilities", Type: domain.CategoryTypeExpense},
	{Name: "Health & Wellness", Type: domain.CategoryTypeExpense},
	{Name: "Auto & Transport", Type: domain.CategoryTypeExpense},
	{Name: "Home & Garden", Type: domain.CategoryTypeExpense},
	{Name: "Education", Type: domain.CategoryTypeExpense},

	{Name: "Direct Deposit", Type: domain.CategoryTypeIncome},
	{Name: "Interest Income", Type: domain.CategoryTypeIncome},
	{Name: "Transfers", Type: domain.CategoryTypeIncome},
	{Name: "Refunds", Type: domain.CategoryTypeIncome},
	{Name: "ATM Withdrawal", Type: domain.CategoryTypeExpense},
	{Name: "Bank Fees", Type: domain.CategoryTypeExpense},
	{Name: "Mortgage/Rent", Type: domain.CategoryTypeExpense},
	{Name: "Insurance", Type: domain.CategoryTypeExpense},

	{Name: "Dividend Income", Type: domain.CategoryTypeIncome},
	{Name: "Capital Gains", Type: domain.CategoryTypeIncome},
	{Name: "Investment Income", Type: domain.CategoryTypeIncome},
	{Name: "Stock Purchase", Type: domain.CategoryTypeExpense},
	{Name: "Bond Purchase", Type: domain.CategoryTypeExpense},
	{Name: "ETF Purchase", Type: domain.CategoryTypeExpense},
	{Name: "Mutual Fund Purchase", Type: domain.CategoryTypeExpense},
	{Name: "Trading Fees", Type: domain.CategoryTypeExpense},
}

// SeedTier names a category seed list.
type SeedTier string

const (
	SeedTierDefault  SeedTier = "default"
	SeedTierExtended SeedTier = "extended"
)

// CategoriesForTier returns a copy of the seed list for the tier. The
// extended tier includes the default tier, de-duplicated by name, since
// extended onboarding is a superset of the basic one.
func CategoriesForTier(tier SeedTier) []SeedCategory {
	switch tier {
	case SeedTierExtended:
		seen := make(map[string]struct{}, len(DefaultCategories)+len(ExtendedCategories))
		out := make([]SeedCategory, 0, len(DefaultCategories)+len(ExtendedCategories))
		for _, list := range [][]SeedCategory{DefaultCategories, ExtendedCategories} {
			for _, c := range list {
				if _, dup := seen[c.Name]; dup {
					continue
				}
				seen[c.Name] = struct{}{}
				out = append(out, c)
			}
		}
		return out
	default:
		out := make([]SeedCategory, len(DefaultCategories))
		copy(out, DefaultCategories)
		return out
	}
}
