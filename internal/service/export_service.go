package service

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/dourado/shopdash-backend/internal/util"
)

// utf8BOM makes spreadsheet tools detect the file as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportService renders ledger ranges as CSV
type ExportService struct {
	saleService *SaleService
}

// NewExportService creates a new ExportService
func NewExportService(saleService *SaleService) *ExportService {
	return &ExportService{saleService: saleService}
}

// ExportCSV renders all sales in the range as a CSV document, BOM
// prefixed, fields quoted with embedded quotes doubled.
func (s *ExportService) ExportCSV(start, end time.Time, profileID *int32) ([]byte, error) {
	sales, err := s.saleService.GetByDateRange(start, end, profileID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Date", "Profile", "Amount", "Notes"}); err != nil {
		return nil, err
	}
	for _, sale := range sales {
		notes := ""
		if sale.Notes != nil {
			notes = *sale.Notes
		}
		record := []string{
			util.FormatDate(sale.SaleDate),
			sale.ProfileName,
			sale.Amount.StringFixed(2),
			notes,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename builds the attachment name for a range export.
func (s *ExportService) Filename(start, end time.Time) string {
	return "sales_" + util.FormatDate(start) + "_" + util.FormatDate(end) + ".csv"
}
