package presenter

import (
	"encoding/csv"
	"fmt"
	"io"

	"house-recommendation-api/internal/models"
)

// Export file metadata.
const (
	ExportFilename    = "rekomendasi_rumah.csv"
	ExportContentType = "text/csv"
)

// WriteCSV writes the formatted recommendation table with a header row.
func WriteCSV(w io.Writer, result *models.RecommendationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("presenter: write csv header: %w", err)
	}
	for _, row := range Rows(result) {
		if err := cw.Write(row.record()); err != nil {
			return fmt.Errorf("presenter: write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("presenter: flush csv: %w", err)
	}
	return nil
}
