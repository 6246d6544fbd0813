package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/saulo-duarte/question-bank/internal/answer"
	"github.com/saulo-duarte/question-bank/internal/category"
	"github.com/saulo-duarte/question-bank/internal/config"
	"github.com/saulo-duarte/question-bank/internal/question"
	"github.com/saulo-duarte/question-bank/internal/user"
)

// ErrLegacyIntegerKeys is returned when an existing questions table still
// uses integer ids. Those rows must be exported and re-imported; the keys
// cannot be converted to UUIDs in place.
var ErrLegacyIntegerKeys = errors.New("questions table uses integer ids; re-import the data into a fresh schema")

// Migrate brings the schema up to date. It is idempotent and runs on
// every start.
func Migrate(ctx context.Context, db *gorm.DB) error {
	log := config.WithContext(ctx)
	log.Info("Starting migration...")

	if err := UpgradeLegacySchema(ctx, db); err != nil {
		return err
	}

	if err := db.WithContext(ctx).AutoMigrate(
		&user.User{},
		&category.Category{},
		&question.Question{},
		&answer.UserAnswer{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	log.Info("Migration completed successfully")
	return nil
}

// UpgradeLegacySchema adds the category table and the hardness and
// category_id columns to a questions table created before they existed.
func UpgradeLegacySchema(ctx context.Context, db *gorm.DB) error {
	log := config.WithContext(ctx)
	m := db.WithContext(ctx).Migrator()
	legacy := m.HasTable(&question.Question{})

	if legacy {
		if err := checkKeyType(m); err != nil {
			return err
		}
	}

	if !m.HasTable(&category.Category{}) {
		if err := m.CreateTable(&category.Category{}); err != nil {
			return fmt.Errorf("create categories table: %w", err)
		}
		log.Info("Categories table created")
	}

	if !legacy {
		return nil
	}

	if !m.HasColumn(&question.Question{}, "Hardness") {
		if err := m.AddColumn(&question.Question{}, "Hardness"); err != nil {
			return fmt.Errorf("add hardness column: %w", err)
		}
		log.Info("Added hardness column to questions table")
	}

	if !m.HasColumn(&question.Question{}, "CategoryID") {
		if err := m.AddColumn(&question.Question{}, "CategoryID"); err != nil {
			return fmt.Errorf("add category_id column: %w", err)
		}
		log.Info("Added category_id column to questions table")
	}
	return nil
}

func checkKeyType(m gorm.Migrator) error {
	columns, err := m.ColumnTypes(&question.Question{})
	if err != nil {
		return fmt.Errorf("inspect questions table: %w", err)
	}
	for _, c := range columns {
		if c.Name() != "id" {
			continue
		}
		typ := strings.ToLower(c.DatabaseTypeName())
		if strings.Contains(typ, "int") || strings.Contains(typ, "serial") {
			return ErrLegacyIntegerKeys
		}
	}
	return nil
}
