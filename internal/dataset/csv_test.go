package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcg-price-service/internal/domain"
)

func sampleRecords() []domain.PriceRecord {
	return []domain.PriceRecord{
		{
			CardID: "base1-4", Name: "Charizard", Set: "Base", Number: "4",
			Rarity: "Rare Holo", Supertype: "Pokémon", HP: "120", SetSize: 102,
			Condition: "holofoil", Price: 350.5,
			UpdatedAt: "2024/01/02", FetchedAt: "2024-01-02 10:00:00",
		},
		{
			CardID: "base1-58", Name: "Pikachu", Set: "Base", Number: "58",
			Rarity: "Common", Supertype: "Pokémon", HP: "40", SetSize: 102,
			Condition: "normal", Price: 3.75,
			UpdatedAt: "2024/01/02", FetchedAt: "2024-01-02 10:00:00",
		},
	}
}

func TestWriteAndReadCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")

	require.NoError(t, WriteCSV(path, sampleRecords()))

	records, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, sampleRecords(), records)
}

func TestReadCSVSkipsMissingPrices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")
	body := "id,name,set,number,rarity,supertype,hp,set_size,condition,price,updated_at,fetched_at\n" +
		"base1-4,Charizard,Base,4,Rare Holo,Pokémon,120,102,holofoil,350.5,2024/01/02,2024-01-02 10:00:00\n" +
		"base1-5,Clefairy,Base,5,Rare Holo,Pokémon,70,102,holofoil,,2024/01/02,2024-01-02 10:00:00\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	records, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "base1-4", records[0].CardID)
}

func TestReadCSVRejectsNegativePrice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")
	body := "id,name,set,number,rarity,supertype,hp,set_size,condition,price,updated_at,fetched_at\n" +
		"base1-4,Charizard,Base,4,Rare Holo,Pokémon,120,102,holofoil,-2,2024/01/02,2024-01-02 10:00:00\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := ReadCSV(path)
	require.ErrorIs(t, err, domain.ErrInvalidRecord)
}

func TestReadCSVRejectsMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,name\nx,y\n"), 0o644))

	_, err := ReadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestReadCSVEmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")
	require.NoError(t, WriteCSV(path, nil))

	_, err := ReadCSV(path)
	require.ErrorIs(t, err, ErrEmptyDataset)
}
