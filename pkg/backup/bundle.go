package backup

import (
	"time"

	"github.com/moneypal/moneypal/pkg/budget"
	"github.com/moneypal/moneypal/pkg/category"
	"github.com/moneypal/moneypal/pkg/preferences"
	"github.com/moneypal/moneypal/pkg/transaction"
)

// Version is the bundle envelope version written on export. Import accepts
// any parseable bundle carrying a version field; there is no migration
// machinery beyond this tag.
const Version = 1

// Bundle is the portable document holding the entire application state,
// including image contents keyed by their original reference. It exists only
// for the duration of an export or import.
type Bundle struct {
	Transactions    []transaction.Transaction `json:"transactions"`
	Categories      []category.Category       `json:"categories"`
	Images          map[string]string         `json:"images"`
	Budget          budget.Document           `json:"budget"`
	Preference      preferences.Preferences   `json:"preference"`
	BackupCreatedAt string                    `json:"backupCreatedAt"`
	Version         int                       `json:"version"`
}

// requiredFields must be present (and non-null) in an imported document.
// Presence only; field types and record shapes are checked by decoding.
var requiredFields = []string{"transactions", "categories", "images", "version"}

// FileName returns the conventional backup file name for the given day.
func FileName(now time.Time) string {
	return "moneypal-backup-" + now.Format("2006-01-02") + ".json"
}

// ImageResult records the outcome for one referenced image: omitted images
// keep their original reference in the affected transactions, which becomes
// dangling after a restore on another device.
type ImageResult struct {
	Ref      string `json:"ref"`
	Included bool   `json:"included"`
	NewRef   string `json:"newRef,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// ExportResult carries the serialized bundle plus per-image outcomes.
type ExportResult struct {
	Data     []byte
	FileName string
	Images   []ImageResult
}

// ImportReport tells the caller exactly how far a restore got. Stages appear
// in CompletedStages in apply order (preferences, budget, categories,
// transactions); on failure the report still describes everything that was
// applied before the error.
type ImportReport struct {
	Images               []ImageResult `json:"images"`
	RestoredCategories   int           `json:"restoredCategories"`
	RestoredTransactions int           `json:"restoredTransactions"`
	CompletedStages      []string      `json:"completedStages"`
}
