package backup

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/moneypal/moneypal/internal/event_bus"
	"github.com/moneypal/moneypal/internal/utils"
	"github.com/moneypal/moneypal/pkg/asset"
	"github.com/moneypal/moneypal/pkg/budget"
	"github.com/moneypal/moneypal/pkg/category"
	"github.com/moneypal/moneypal/pkg/preferences"
	"github.com/moneypal/moneypal/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	Export(ctx context.Context) (*ExportResult, error)
	// Import replaces all stores from the bundle. Validation failures leave
	// every store untouched; a failure during the apply phase returns a
	// *RestoreError and a report describing the partially applied state.
	Import(ctx context.Context, data []byte) (*ImportReport, error)
}

type ServiceImpl struct {
	transactions transaction.Repository
	categories   category.Repository
	budget       budget.Repository
	preferences  preferences.Repository
	assets       asset.Store
	eventBus     *event_bus.EventBus
	clock        utils.Clock
}

func NewServiceImpl(
	transactions transaction.Repository,
	categories category.Repository,
	budgetRepo budget.Repository,
	preferencesRepo preferences.Repository,
	assets asset.Store,
	eventBus *event_bus.EventBus,
	clock utils.Clock,
) *ServiceImpl {
	return &ServiceImpl{
		transactions: transactions,
		categories:   categories,
		budget:       budgetRepo,
		preferences:  preferencesRepo,
		assets:       assets,
		eventBus:     eventBus,
		clock:        clock,
	}
}

func (s *ServiceImpl) Export(ctx context.Context) (*ExportResult, error) {
	transactions, err := s.transactions.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not snapshot transactions: %w", err)
	}
	categories, err := s.categories.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not snapshot categories: %w", err)
	}
	budgetDoc, err := s.budget.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not snapshot budget: %w", err)
	}
	prefs, err := s.preferences.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not snapshot preferences: %w", err)
	}

	images, results := s.encodeImages(ctx, transactions)

	now := s.clock.Now()
	bundle := Bundle{
		Transactions:    transactions,
		Categories:      categories,
		Images:          images,
		Budget:          budgetDoc,
		Preference:      prefs,
		BackupCreatedAt: now.UTC().Format(time.RFC3339),
		Version:         Version,
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not encode backup bundle: %w", err)
	}

	log.Infof("exported backup: %d transactions, %d categories, %d/%d images",
		len(transactions), len(categories), len(images), len(results))

	return &ExportResult{Data: data, FileName: FileName(now), Images: results}, nil
}

// encodeImages collects the distinct non-empty image references and encodes
// their contents. An unreadable image is omitted with a reason; the
// transaction keeps its reference, which goes dangling after a restore on a
// different device. Omission is a documented limitation, not an export error.
func (s *ServiceImpl) encodeImages(ctx context.Context, transactions []transaction.Transaction) (map[string]string, []ImageResult) {
	images := map[string]string{}
	results := make([]ImageResult, 0)
	seen := map[string]bool{}

	for _, t := range transactions {
		ref := t.ImageURI
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true

		data, err := s.assets.Read(ctx, ref)
		if err != nil {
			log.Warnf("omitting image %q from backup: %v", ref, err)
			results = append(results, ImageResult{Ref: ref, Included: false, Reason: err.Error()})
			continue
		}
		images[ref] = base64.StdEncoding.EncodeToString(data)
		results = append(results, ImageResult{Ref: ref, Included: true})
	}

	return images, results
}

func (s *ServiceImpl) Import(ctx context.Context, data []byte) (*ImportReport, error) {
	// Validation happens entirely before any store is touched.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	for _, field := range requiredFields {
		raw, ok := probe[field]
		if !ok || string(raw) == "null" {
			return nil, fmt.Errorf("%w: missing field %q", ErrInvalidBackup, field)
		}
	}

	var bundle Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	report := &ImportReport{CompletedStages: []string{}}
	refMap := s.materializeImages(ctx, bundle.Images, report)

	// Apply phase. Each store is cleared and repopulated in turn; stores
	// already replaced stay replaced when a later stage fails.
	if err := s.preferences.Save(ctx, bundle.Preference); err != nil {
		return report, &RestoreError{Stage: "preferences", Err: err}
	}
	report.CompletedStages = append(report.CompletedStages, "preferences")

	if err := s.budget.Clear(ctx); err != nil {
		return report, &RestoreError{Stage: "budget", Err: err}
	}
	if err := s.budget.Save(ctx, bundle.Budget); err != nil {
		return report, &RestoreError{Stage: "budget", Err: err}
	}
	report.CompletedStages = append(report.CompletedStages, "budget")

	if err := s.categories.Clear(ctx); err != nil {
		return report, &RestoreError{Stage: "categories", Err: err}
	}
	for _, c := range bundle.Categories {
		if _, err := s.categories.Add(ctx, c); err != nil {
			return report, &RestoreError{Stage: "categories", Err: err}
		}
		report.RestoredCategories++
	}
	report.CompletedStages = append(report.CompletedStages, "categories")

	if err := s.transactions.Clear(ctx); err != nil {
		return report, &RestoreError{Stage: "transactions", Err: err}
	}
	for _, t := range bundle.Transactions {
		if newRef, ok := refMap[t.ImageURI]; ok {
			t.ImageURI = newRef
		}
		if _, err := s.transactions.Add(ctx, t); err != nil {
			return report, &RestoreError{Stage: "transactions", Err: err}
		}
		report.RestoredTransactions++
	}
	report.CompletedStages = append(report.CompletedStages, "transactions")

	err := s.eventBus.Publish(event_bus.NewEvent(ctx, event_bus.BackupRestoredEvent, event_bus.BackupRestored{
		Transactions: report.RestoredTransactions,
		Categories:   report.RestoredCategories,
		Images:       len(refMap),
	}))
	if err != nil {
		log.Errorf("failed to publish backup restored event: %v", err)
	}

	log.Infof("restored backup: %d transactions, %d categories, %d images",
		report.RestoredTransactions, report.RestoredCategories, len(refMap))

	return report, nil
}

// materializeImages decodes every bundled image into a fresh asset and maps
// the original reference to the new one. A failing image is skipped with a
// recorded reason; transactions referencing it keep the original reference.
func (s *ServiceImpl) materializeImages(ctx context.Context, images map[string]string, report *ImportReport) map[string]string {
	refMap := map[string]string{}
	for ref, encoded := range images {
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			log.Warnf("skipping image %q: not valid base64: %v", ref, err)
			report.Images = append(report.Images, ImageResult{Ref: ref, Included: false, Reason: "invalid base64: " + err.Error()})
			continue
		}
		newRef, err := s.assets.Write(ctx, data, imageExt(ref))
		if err != nil {
			log.Warnf("skipping image %q: %v", ref, err)
			report.Images = append(report.Images, ImageResult{Ref: ref, Included: false, Reason: err.Error()})
			continue
		}
		refMap[ref] = newRef
		report.Images = append(report.Images, ImageResult{Ref: ref, Included: true, NewRef: newRef})
	}
	return refMap
}

func imageExt(ref string) string {
	ext := strings.TrimPrefix(path.Ext(ref), ".")
	if ext == "" {
		return "jpg"
	}
	return ext
}
