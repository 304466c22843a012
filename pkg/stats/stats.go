package stats

import "github.com/moneypal/moneypal/pkg/category"

// CategorySummary is the spending of one expense category in one month,
// joined with its resolved display definition and effective budget limit.
type CategorySummary struct {
	Category  category.Category `json:"category"`
	Total     float64           `json:"total"`
	Limit     *float64          `json:"limit,omitempty"`
	Remaining *float64          `json:"remaining,omitempty"`
}

// MonthlySummary is the derived overview for one month. It is computed at
// read time and never stored.
type MonthlySummary struct {
	Month      string            `json:"month"`
	Income     float64           `json:"income"`
	Expense    float64           `json:"expense"`
	Balance    float64           `json:"balance"`
	Categories []CategorySummary `json:"categories"`
}
