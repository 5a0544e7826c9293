package domain

// SetInfo describes a card set as reported by the upstream catalog.
type SetInfo struct {
	ID           string
	Name         string
	Series       string
	PrintedTotal int
	Total        int
	ReleaseDate  string
}

// Card is a normalized card with its tcgplayer price listings.
type Card struct {
	ID        string
	Name      string
	Set       SetInfo
	Number    string
	Rarity    string
	Supertype string
	Subtypes  []string
	HP        string
	Prices    []CardPrice
	UpdatedAt string
}

// CardPrice is one tcgplayer listing variant for a card.
// Condition is the printing/finish bucket (normal, holofoil, ...).
type CardPrice struct {
	Condition string
	Low       float64
	Mid       float64
	High      float64
	Market    float64
}

// HasMarketPrice reports whether any listing carries a usable market price.
func (c Card) HasMarketPrice() bool {
	for _, p := range c.Prices {
		if p.Market > 0 {
			return true
		}
	}
	return false
}
