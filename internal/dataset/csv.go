package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"tcg-price-service/internal/domain"
)

// Header is the canonical column order of the exported dataset.
var Header = []string{
	"id", "name", "set", "number", "rarity", "supertype", "hp",
	"set_size", "condition", "price", "updated_at", "fetched_at",
}

// ErrEmptyDataset signals a CSV with no usable rows.
var ErrEmptyDataset = errors.New("dataset contains no records")

// WriteCSV writes records to path in the canonical column order,
// creating parent directories as needed.
func WriteCSV(path string, records []domain.PriceRecord) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dataset directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.CardID,
			rec.Name,
			rec.Set,
			rec.Number,
			rec.Rarity,
			rec.Supertype,
			rec.HP,
			strconv.Itoa(rec.SetSize),
			rec.Condition,
			strconv.FormatFloat(rec.Price, 'f', -1, 64),
			rec.UpdatedAt,
			rec.FetchedAt,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// ReadCSV loads a dataset written by WriteCSV. Rows with an empty price cell
// are skipped (explicitly missing target); rows with a negative or
// unparseable price fail the load.
func ReadCSV(path string) ([]domain.PriceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []domain.PriceRecord
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row %d: %w", line, err)
		}
		line++

		rawPrice := row[cols["price"]]
		if rawPrice == "" {
			continue
		}
		price, err := strconv.ParseFloat(rawPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: bad price %q", line, domain.ErrInvalidRecord, rawPrice)
		}
		if price < 0 {
			return nil, fmt.Errorf("row %d: %w: negative price %f", line, domain.ErrInvalidRecord, price)
		}

		setSize := 0
		if raw := row[cols["set_size"]]; raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				setSize = parsed
			}
		}

		records = append(records, domain.PriceRecord{
			CardID:    row[cols["id"]],
			Name:      row[cols["name"]],
			Set:       row[cols["set"]],
			Number:    row[cols["number"]],
			Rarity:    row[cols["rarity"]],
			Supertype: row[cols["supertype"]],
			HP:        row[cols["hp"]],
			SetSize:   setSize,
			Condition: row[cols["condition"]],
			Price:     price,
			UpdatedAt: row[cols["updated_at"]],
			FetchedAt: row[cols["fetched_at"]],
		})
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	return records, nil
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range Header {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("dataset missing column %q", required)
		}
	}
	return cols, nil
}
