package api

import (
	"log"
	"time"

	"github.com/rsahoo0530/LifeSync-V2/internal/assets"
	"github.com/rsahoo0530/LifeSync-V2/internal/cache"
	"github.com/rsahoo0530/LifeSync-V2/internal/db"
	"github.com/rsahoo0530/LifeSync-V2/internal/docstore"
	"github.com/rsahoo0530/LifeSync-V2/internal/events"
	"github.com/rsahoo0530/LifeSync-V2/internal/mail"
	"github.com/rsahoo0530/LifeSync-V2/internal/services"
	"github.com/rsahoo0530/LifeSync-V2/internal/syncer"
	"gorm.io/gorm"
)

// HandlerConfig carries everything the HTTP surface needs; zero values
// fall back to sensible defaults in NewHandler.
type HandlerConfig struct {
	Database     *gorm.DB
	Secret       string
	Location     *time.Location
	CookieSecure bool
	Logger       *log.Logger
	Clock        services.Clock
	CacheDir     string
	UploadDir    string
	Mailer       *mail.Mailer
}

func NewHandler(config HandlerConfig) (*Handler, error) {
	if config.Location == nil {
		config.Location = time.Local
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	if config.Clock == nil {
		config.Clock = services.SystemClock()
	}
	if config.CacheDir == "" {
		config.CacheDir = "data/cache"
	}
	if config.UploadDir == "" {
		config.UploadDir = "data/uploads"
	}
	if config.Mailer == nil {
		config.Mailer = mail.NewMailer(mail.Config{}, config.Logger)
	}

	localCache, err := cache.NewFileCache(config.CacheDir)
	if err != nil {
		return nil, err
	}
	uploads, err := assets.NewStore(config.UploadDir)
	if err != nil {
		return nil, err
	}

	repositories := db.NewRepositories(config.Database)
	store := docstore.NewSQLiteStore(repositories)
	bus := events.NewBus()

	handler := &Handler{
		db:           config.Database,
		repositories: repositories,
		secretKey:    []byte(config.Secret),
		location:     config.Location,
		cookieSecure: config.CookieSecure,
		logger:       config.Logger,
		clock:        config.Clock,

		store:    store,
		sessions: syncer.NewManager(store, localCache, config.Logger),
		bus:      bus,
		uploads:  uploads,
		mailer:   config.Mailer,
	}

	handler.authService = services.NewAuthService(repositories.Users, handler.secretKey)
	handler.habitService = services.NewHabitService(store, bus, config.Clock, config.Location)
	handler.journalService = services.NewJournalService(store, config.Clock)
	handler.todoService = services.NewTodoService(store, config.Clock)
	handler.expenseService = services.NewExpenseService(store)
	handler.settingsService = services.NewSettingsService(store)
	handler.exportService = services.NewExportService(config.Clock)
	handler.statsService = services.NewStatsService(config.Clock, config.Location)

	return handler, nil
}

// Sessions exposes the session manager so the server can drain it on
// shutdown.
func (handler *Handler) Sessions() *syncer.Manager { return handler.sessions }

// UploadDir is where uploaded images land; the server mounts it as a
// static route.
func (handler *Handler) UploadDir() string { return handler.uploads.Dir() }
