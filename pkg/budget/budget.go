package budget

// Limit caps spending for one category. Amounts are currency-agnostic.
type Limit struct {
	CategoryID string  `json:"categoryId"`
	Amount     float64 `json:"amount"`
}

// Document is the whole budget state persisted as one blob. Budget maps a
// month key (YYYY-MM) to that month's limits (unique categoryId per month);
// Default maps a categoryId to the amount applied to months with no explicit
// entry for that category.
type Document struct {
	Budget  map[string][]Limit `json:"budget"`
	Default map[string]float64 `json:"default"`
}

// NewDocument returns an empty budget document with both maps allocated.
func NewDocument() Document {
	return Document{Budget: map[string][]Limit{}, Default: map[string]float64{}}
}

// Normalize allocates missing maps; older persisted documents may lack one
// or both.
func (d *Document) Normalize() {
	if d.Budget == nil {
		d.Budget = map[string][]Limit{}
	}
	if d.Default == nil {
		d.Default = map[string]float64{}
	}
}
