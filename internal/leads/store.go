package leads

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"coastfire/internal/config"
	"coastfire/internal/logger"
	"coastfire/internal/model"
)

// Store is the gorm-backed Gateway.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStore(db *gorm.DB, baseLog *logger.Logger) *Store {
	return &Store{db: db, log: baseLog.With("repo", "LeadStore")}
}

// Open connects to the database named by cfg. postgres:// and postgresql://
// URLs use the postgres driver; sqlite: and file: DSNs use sqlite.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormLog := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLog,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect lead store: %w", err)
	}
	return db, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	dsn := strings.TrimSpace(cfg.URL)
	switch {
	case dsn == "":
		return nil, ErrNotConfigured
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		dsn, err := withPassword(dsn, cfg.Key)
		if err != nil {
			return nil, err
		}
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, "sqlite:"):
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite:")), nil
	case strings.HasPrefix(dsn, "file:"):
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DATABASE_URL scheme")
	}
}

// withPassword sets key as the password of a postgres URL when given.
func withPassword(dsn, key string) (string, error) {
	if key == "" {
		return dsn, nil
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	u.User = url.UserPassword(user, key)
	return u.String(), nil
}

// Migrate creates the email_leads table and its unique email index.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.EmailLead{}); err != nil {
		return fmt.Errorf("migrate email_leads: %w", err)
	}
	return nil
}

func (s *Store) Lookup(ctx context.Context, email string) (bool, error) {
	var row model.EmailLead
	err := s.db.WithContext(ctx).
		Select("id").
		Where("email = ?", email).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("lookup lead: %w", err)
	}
	return true, nil
}

func (s *Store) Save(ctx context.Context, lead *model.EmailLead) (*model.EmailLead, error) {
	if lead == nil {
		return nil, fmt.Errorf("save lead: nil lead")
	}
	if err := s.db.WithContext(ctx).Create(lead).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("save lead: %w", err)
	}
	s.log.Info("Lead saved", "email", lead.Email, "source", lead.Source)
	return lead, nil
}

// isUniqueViolation also matches the raw driver messages in case the dialect
// did not translate the error.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
