package pokemontcg

const providerName = "pokemontcg"

type cardsResponse struct {
	Data       []cardResponse `json:"data"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	Count      int            `json:"count"`
	TotalCount int            `json:"totalCount"`
}

type setsResponse struct {
	Data       []setResponse `json:"data"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	Count      int           `json:"count"`
	TotalCount int           `json:"totalCount"`
}

type cardResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Supertype string            `json:"supertype"`
	Subtypes  []string          `json:"subtypes"`
	HP        string            `json:"hp"`
	Number    string            `json:"number"`
	Rarity    string            `json:"rarity"`
	Set       setResponse       `json:"set"`
	TCGPlayer tcgplayerResponse `json:"tcgplayer"`
}

type setResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Series       string `json:"series"`
	PrintedTotal int    `json:"printedTotal"`
	Total        int    `json:"total"`
	ReleaseDate  string `json:"releaseDate"`
}

type tcgplayerResponse struct {
	URL       string                   `json:"url"`
	UpdatedAt string                   `json:"updatedAt"`
	Prices    map[string]priceResponse `json:"prices"`
}

type priceResponse struct {
	Low    *float64 `json:"low"`
	Mid    *float64 `json:"mid"`
	High   *float64 `json:"high"`
	Market *float64 `json:"market"`
}
