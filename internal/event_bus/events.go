package event_bus

const (
	TransactionCreatedEvent EventType = "transaction.created"
	BackupRestoredEvent     EventType = "backup.restored"
)

type TransactionCreated struct {
	ID         string
	Type       string
	Amount     float64
	Date       string
	CategoryID string
}

type BackupRestored struct {
	Transactions int
	Categories   int
	Images       int
}
