package store

import "tcg-price-service/internal/domain"

// priceRow is the persisted form of a domain.PriceRecord.
// One row per card per condition; re-collection updates in place.
type priceRow struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	CardID    string  `gorm:"size:64;not null;index;uniqueIndex:idx_card_condition,priority:1"`
	Condition string  `gorm:"size:48;not null;uniqueIndex:idx_card_condition,priority:2"`
	Name      string  `gorm:"size:128;not null"`
	Set       string  `gorm:"size:128;not null;index"`
	Number    string  `gorm:"size:16"`
	Rarity    string  `gorm:"size:64"`
	Supertype string  `gorm:"size:32"`
	HP        string  `gorm:"size:8"`
	SetSize   int     `gorm:"not null;default:0"`
	Price     float64 `gorm:"not null"`
	UpdatedAt string  `gorm:"size:32"`
	FetchedAt string  `gorm:"size:32"`
}

func (priceRow) TableName() string {
	return "price_records"
}

func toRow(rec domain.PriceRecord) priceRow {
	return priceRow{
		CardID:    rec.CardID,
		Condition: rec.Condition,
		Name:      rec.Name,
		Set:       rec.Set,
		Number:    rec.Number,
		Rarity:    rec.Rarity,
		Supertype: rec.Supertype,
		HP:        rec.HP,
		SetSize:   rec.SetSize,
		Price:     rec.Price,
		UpdatedAt: rec.UpdatedAt,
		FetchedAt: rec.FetchedAt,
	}
}

func toRecord(row priceRow) domain.PriceRecord {
	return domain.PriceRecord{
		CardID:    row.CardID,
		Condition: row.Condition,
		Name:      row.Name,
		Set:       row.Set,
		Number:    row.Number,
		Rarity:    row.Rarity,
		Supertype: row.Supertype,
		HP:        row.HP,
		SetSize:   row.SetSize,
		Price:     row.Price,
		UpdatedAt: row.UpdatedAt,
		FetchedAt: row.FetchedAt,
	}
}
