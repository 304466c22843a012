package category

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Category is a display definition for grouping transactions. Ids are unique
// within a type; income and expense ids are independent namespaces.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  Type   `json:"type"`
}

func (c Category) RecordID() string {
	return c.ID
}
