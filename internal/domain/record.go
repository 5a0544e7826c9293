package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord marks records that cannot enter the dataset.
var ErrInvalidRecord = errors.New("invalid price record")

// PriceRecord is one flat row of the collected dataset:
// a single card in a single condition with its observed market price.
type PriceRecord struct {
	CardID    string
	Name      string
	Set       string
	Number    string
	Rarity    string
	Supertype string
	HP        string
	SetSize   int
	Condition string
	Price     float64
	UpdatedAt string
	FetchedAt string
}

// Validate checks the supervised-learning invariants: an identifier,
// a condition bucket, and a strictly positive price target.
func (r PriceRecord) Validate() error {
	if r.CardID == "" {
		return fmt.Errorf("%w: missing card id", ErrInvalidRecord)
	}
	if r.Condition == "" {
		return fmt.Errorf("%w: missing condition for card %s", ErrInvalidRecord, r.CardID)
	}
	if r.Price <= 0 {
		return fmt.Errorf("%w: card %s (%s) has no market price", ErrInvalidRecord, r.CardID, r.Condition)
	}
	return nil
}

// Flatten expands a card into one PriceRecord per priced condition,
// keeping only listings with a market price, as the dataset requires.
func Flatten(card Card, fetchedAt string) []PriceRecord {
	records := make([]PriceRecord, 0, len(card.Prices))
	for _, p := range card.Prices {
		if p.Market <= 0 {
			continue
		}
		records = append(records, PriceRecord{
			CardID:    card.ID,
			Name:      card.Name,
			Set:       card.Set.Name,
			Number:    card.Number,
			Rarity:    card.Rarity,
			Supertype: card.Supertype,
			HP:        card.HP,
			SetSize:   card.Set.Total,
			Condition: p.Condition,
			Price:     p.Market,
			UpdatedAt: card.UpdatedAt,
			FetchedAt: fetchedAt,
		})
	}
	return records
}
