package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"tcg-price-service/internal/domain"
)

// CardStore persists collected price records in a local sqlite catalog.
type CardStore struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite catalog at path and migrates the schema.
func Open(path string) (*CardStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open card store: %w", err)
	}

	if err := db.AutoMigrate(&priceRow{}); err != nil {
		return nil, fmt.Errorf("migrate card store: %w", err)
	}

	return &CardStore{db: db}, nil
}

// Close releases the underlying sqlite handle.
func (s *CardStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// UpsertRecords writes records keyed by (card id, condition). Replaying the
// same collection run leaves the catalog unchanged apart from fetched_at.
func (s *CardStore) UpsertRecords(records []domain.PriceRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]priceRow, 0, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
		rows = append(rows, toRow(rec))
	}

	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "card_id"}, {Name: "condition"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "set", "number", "rarity", "supertype", "hp", "set_size",
			"price", "updated_at", "fetched_at",
		}),
	}).Create(&rows).Error
}

// Count returns the number of stored price records.
func (s *CardStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&priceRow{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListBySet returns records for one set, in dataset order.
func (s *CardStore) ListBySet(set string) ([]domain.PriceRecord, error) {
	var rows []priceRow
	if err := s.db.Where("`set` = ?", set).Find(&rows).Error; err != nil {
		return nil, err
	}
	return sortedRecords(rows), nil
}

// Dataset returns every stored record ordered by set, card number
// (numeric part, then letter suffix), and condition.
func (s *CardStore) Dataset() ([]domain.PriceRecord, error) {
	var rows []priceRow
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return sortedRecords(rows), nil
}

var (
	numberDigits  = regexp.MustCompile(`(\d+)`)
	numberLetters = regexp.MustCompile(`([a-zA-Z]+)`)
)

// Card numbers mix digits and promo suffixes ("4", "25a", "SWSH001"), so
// ordering splits them into a numeric part and a letter part.
func numericPart(number string) int {
	match := numberDigits.FindString(number)
	if match == "" {
		return int(^uint(0) >> 1) // non-numeric numbers sort last
	}
	val, err := strconv.Atoi(match)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return val
}

func alphaPart(number string) string {
	return numberLetters.FindString(number)
}

func sortedRecords(rows []priceRow) []domain.PriceRecord {
	records := make([]domain.PriceRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toRecord(row))
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Set != b.Set {
			return a.Set < b.Set
		}
		an, bn := numericPart(a.Number), numericPart(b.Number)
		if an != bn {
			return an < bn
		}
		if aa, ba := alphaPart(a.Number), alphaPart(b.Number); aa != ba {
			return aa < ba
		}
		return a.Condition < b.Condition
	})
	return records
}
