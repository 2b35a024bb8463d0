package api

import (
	"log"
	"time"

	"github.com/rsahoo0530/LifeSync-V2/internal/assets"
	"github.com/rsahoo0530/LifeSync-V2/internal/db"
	"github.com/rsahoo0530/LifeSync-V2/internal/docstore"
	"github.com/rsahoo0530/LifeSync-V2/internal/events"
	"github.com/rsahoo0530/LifeSync-V2/internal/mail"
	"github.com/rsahoo0530/LifeSync-V2/internal/services"
	"github.com/rsahoo0530/LifeSync-V2/internal/syncer"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	repositories *db.Repositories
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	logger       *log.Logger
	clock        services.Clock

	store    docstore.Store
	sessions *syncer.Manager
	bus      *events.Bus
	uploads  *assets.Store
	mailer   *mail.Mailer

	authService     *services.AuthService
	habitService    *services.HabitService
	journalService  *services.JournalService
	todoService     *services.TodoService
	expenseService  *services.ExpenseService
	settingsService *services.SettingsService
	exportService   *services.ExportService
	statsService    *services.StatsService
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)
