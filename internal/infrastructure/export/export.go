// Package export writes scan results to disk for downstream analysis.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pizzavfm/backend/internal/domain"
)

var csvHeader = []string{
	"restaurant", "rating", "deal", "quantity", "size_cm",
	"price", "total_area", "area_per_euro", "vfm_index",
}

// WriteCSV writes one row per deal, sorted by VFM index descending.
// Parent directories are created as needed.
func WriteCSV(path string, result *domain.ScrapeResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	rows := result.Flatten()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].VFMIndex > rows[j].VFMIndex
	})

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		rating := ""
		if row.Rating != nil {
			rating = strconv.FormatFloat(*row.Rating, 'f', -1, 64)
		}
		record := []string{
			row.Restaurant,
			rating,
			row.Deal,
			strconv.Itoa(row.Quantity),
			strconv.Itoa(row.DiameterCM),
			strconv.FormatFloat(row.Price, 'f', 2, 64),
			strconv.FormatFloat(row.TotalArea, 'f', 2, 64),
			strconv.FormatFloat(row.AreaPerEuro, 'f', 2, 64),
			strconv.FormatFloat(row.VFMIndex, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteJSON writes the full scrape result as indented UTF-8 JSON. Greek text
// is written as-is, not escaped.
func WriteJSON(path string, result *domain.ScrapeResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
