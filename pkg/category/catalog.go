package category

// Sentinel ids that the built-in catalog always resolves, so category lookup
// for a transaction whose original category was deleted can never fail.
const (
	FallbackExpenseID = "other_expense"
	FallbackIncomeID  = "other_income"
)

var expenseCategories = []Category{
	{ID: "food", Name: "Food & Dining", Icon: "🍽️", Color: "#FF6B6B", Type: TypeExpense},
	{ID: "transport", Name: "Transportation", Icon: "🚗", Color: "#4ECDC4", Type: TypeExpense},
	{ID: "shopping", Name: "Shopping", Icon: "🛍️", Color: "#45B7D1", Type: TypeExpense},
	{ID: "entertainment", Name: "Entertainment", Icon: "🎬", Color: "#96CEB4", Type: TypeExpense},
	{ID: "health", Name: "Health & Medical", Icon: "🏥", Color: "#FFEAA7", Type: TypeExpense},
	{ID: "education", Name: "Education", Icon: "📚", Color: "#DDA0DD", Type: TypeExpense},
	{ID: "bills", Name: "Bills & Utilities", Icon: "💡", Color: "#98D8C8", Type: TypeExpense},
	{ID: "clothes", Name: "Clothes", Icon: "👕", Color: "#F7DC6F", Type: TypeExpense},
	{ID: "laundry", Name: "Laundry", Icon: "👚", Color: "#BB8FCE", Type: TypeExpense},
	{ID: "home", Name: "Home & Garden", Icon: "🏠", Color: "#85C1E9", Type: TypeExpense},
	{ID: "personal", Name: "Personal Care", Icon: "💄", Color: "#F8C471", Type: TypeExpense},
	{ID: FallbackExpenseID, Name: "Other", Icon: "📦", Color: "#BDC3C7", Type: TypeExpense},
}

var incomeCategories = []Category{
	{ID: "salary", Name: "Salary", Icon: "💰", Color: "#2ECC71", Type: TypeIncome},
	{ID: "freelance", Name: "Freelance", Icon: "💼", Color: "#3498DB", Type: TypeIncome},
	{ID: "investment", Name: "Investment", Icon: "📈", Color: "#E74C3C", Type: TypeIncome},
	{ID: "gift", Name: "Gift", Icon: "🎁", Color: "#9B59B6", Type: TypeIncome},
	{ID: "refund", Name: "Refund", Icon: "↩️", Color: "#F39C12", Type: TypeIncome},
	{ID: FallbackIncomeID, Name: "Other", Icon: "💵", Color: "#1ABC9C", Type: TypeIncome},
}

// BuiltIn returns a copy of the immutable built-in catalog for the type.
func BuiltIn(t Type) []Category {
	var source []Category
	if t == TypeIncome {
		source = incomeCategories
	} else {
		source = expenseCategories
	}
	catalog := make([]Category, len(source))
	copy(catalog, source)
	return catalog
}

// Resolve looks an id up in the built-in catalog for the type first, then in
// the user categories filtered to the type. When a user category reuses a
// built-in id the built-in definition wins; the shadowing order is part of
// the contract.
func Resolve(id string, t Type, userCategories []Category) (Category, bool) {
	for _, c := range BuiltIn(t) {
		if c.ID == id {
			return c, true
		}
	}
	for _, c := range userCategories {
		if c.Type == t && c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Fallback returns the guaranteed-present sentinel category for the type.
func Fallback(t Type) Category {
	id := FallbackExpenseID
	if t == TypeIncome {
		id = FallbackIncomeID
	}
	c, _ := Resolve(id, t, nil)
	return c
}
