package transaction

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Transaction is a single income or expense record. Category references a
// built-in or user-defined category id and may be empty. ImageURI points at
// an image asset on disk, not its content.
type Transaction struct {
	ID          string  `json:"id"`
	Type        Type    `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	ImageURI    string  `json:"imageUri,omitempty"`
}

func (t Transaction) RecordID() string {
	return t.ID
}
