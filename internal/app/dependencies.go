package app

import (
	"database/sql"

	"github.com/moneypal/moneypal/internal/config"
	"github.com/moneypal/moneypal/internal/event_bus"
	"github.com/moneypal/moneypal/internal/kv"
	"github.com/moneypal/moneypal/internal/utils"
	"github.com/moneypal/moneypal/pkg/asset"
	"github.com/moneypal/moneypal/pkg/backup"
	"github.com/moneypal/moneypal/pkg/budget"
	"github.com/moneypal/moneypal/pkg/category"
	"github.com/moneypal/moneypal/pkg/google"
	"github.com/moneypal/moneypal/pkg/preferences"
	"github.com/moneypal/moneypal/pkg/stats"
	"github.com/moneypal/moneypal/pkg/transaction"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	KVStore  kv.Store
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	TransactionRepo    transaction.Repository
	TransactionService transaction.Service
	TransactionHandler *transaction.Handler

	CategoryRepo    category.Repository
	CategoryService category.Service
	CategoryHandler *category.Handler

	BudgetRepo    budget.Repository
	BudgetService budget.Service
	BudgetHandler *budget.Handler
	BudgetAlerter *budget.Alerter

	PreferencesRepo    preferences.Repository
	PreferencesService preferences.Service
	PreferencesHandler *preferences.Handler

	AssetStore asset.Store

	GoogleAuth    *google.Auth
	GoogleService google.Service

	BackupService backup.Service
	BackupHandler *backup.Handler

	StatsService stats.Service
	CsvRenderer  *stats.CsvRendererImpl
	StatsHandler *stats.Handler
}

// BuildDependencies constructs all application components and wires them together.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	kvStore := kv.NewSQLStore(db)
	eventBus := event_bus.NewEventBus()
	clock := utils.SystemClock{}

	transactionRepo := transaction.NewRepository(kvStore)
	transactionService := transaction.NewServiceImpl(transactionRepo, eventBus)
	transactionHandler := transaction.NewHandler(transactionService)

	categoryRepo := category.NewRepository(kvStore)
	categoryService := category.NewServiceImpl(categoryRepo)
	categoryHandler := category.NewHandler(categoryService)

	budgetRepo := budget.NewRepository(kvStore)
	budgetService := budget.NewServiceImpl(budgetRepo)
	budgetHandler := budget.NewHandler(budgetService)
	budgetAlerter := budget.NewAlerter(budgetService, transactionRepo)
	budgetAlerter.Register(eventBus)

	preferencesRepo := preferences.NewRepository(kvStore)
	preferencesService := preferences.NewServiceImpl(preferencesRepo)
	preferencesHandler := preferences.NewHandler(preferencesService)

	assetStore := asset.NewFileStore(cfg.Storage.AssetsDir)

	googleAuth := google.NewAuth(kvStore, cfg)
	googleService := google.NewService(googleAuth)

	backupService := backup.NewServiceImpl(
		transactionRepo,
		categoryRepo,
		budgetRepo,
		preferencesRepo,
		assetStore,
		eventBus,
		clock,
	)
	backupHandler := backup.NewHandler(backupService, googleService)

	statsService := stats.NewServiceImpl(transactionRepo, categoryService, budgetService)
	csvRenderer := stats.NewCsvRenderer()
	statsHandler := stats.NewHandler(statsService, csvRenderer)

	return &Dependencies{
		KVStore:  kvStore,
		EventBus: eventBus,
		Clock:    clock,

		TransactionRepo:    transactionRepo,
		TransactionService: transactionService,
		TransactionHandler: transactionHandler,

		CategoryRepo:    categoryRepo,
		CategoryService: categoryService,
		CategoryHandler: categoryHandler,

		BudgetRepo:    budgetRepo,
		BudgetService: budgetService,
		BudgetHandler: budgetHandler,
		BudgetAlerter: budgetAlerter,

		PreferencesRepo:    preferencesRepo,
		PreferencesService: preferencesService,
		PreferencesHandler: preferencesHandler,

		AssetStore: assetStore,

		GoogleAuth:    googleAuth,
		GoogleService: googleService,

		BackupService: backupService,
		BackupHandler: backupHandler,

		StatsService: statsService,
		CsvRenderer:  csvRenderer,
		StatsHandler: statsHandler,
	}
}
