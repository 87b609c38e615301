// Package export renders a chatbot's knowledge base as a downloadable
// workbook: one row per parsed item with its enrichment alongside.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"pitchbot/internal/domain"
	"pitchbot/internal/enrichment"
)

const sheetName = "Knowledge Base"

var columns = []string{
	"Section",
	"Item #",
	"Title",
	"Subtitle",
	"Date",
	"Description",
	"Additional User Context",
}

// WriteWorkbook writes the knowledge report for one parsed resume to w.
func WriteWorkbook(w io.Writer, parsed domain.ParsedResumeData, enrichments map[string]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	row := 2
	for _, section := range parsed.SectionOrder {
		for i, item := range parsed.Sections[section] {
			values := []interface{}{
				section,
				i + 1,
				item.Title,
				item.Subtitle,
				item.Date,
				item.Description,
				enrichments[enrichment.Key(section, i)],
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return fmt.Errorf("data cell: %w", err)
				}
				if err := f.SetCellValue(sheetName, cell, v); err != nil {
					return fmt.Errorf("writing row %d: %w", row, err)
				}
			}
			row++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
