package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ellisvega/mlmuse/internal/saved"
)

// Markdown renders the saved collection as a readable document, one section
// per proposal, in the order the store returns them (newest first).
func Markdown(items []saved.Item) string {
	var sb strings.Builder
	sb.WriteString("# Saved project proposals\n\n")
	if len(items) == 0 {
		sb.WriteString("Nothing saved yet.\n")
		return sb.String()
	}
	for _, it := range items {
		sb.WriteString(fmt.Sprintf("## %s\n\n", it.Title))
		sb.WriteString(fmt.Sprintf("**Difficulty:** %s\n\n", it.Difficulty))
		sb.WriteString(it.Summary + "\n\n")
		if len(it.Tags) > 0 {
			sb.WriteString(fmt.Sprintf("Tags: %s\n\n", strings.Join(it.Tags, ", ")))
		}
		if len(it.Datasets) > 0 {
			sb.WriteString("Datasets:\n")
			for _, d := range it.Datasets {
				sb.WriteString(fmt.Sprintf("- %s\n", d))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// WriteMarkdown writes the Markdown rendering to path.
func WriteMarkdown(items []saved.Item, path string) error {
	return os.WriteFile(path, []byte(Markdown(items)), 0644)
}

var workbookHeader = []string{"Title", "Difficulty", "Summary", "Tags", "Datasets", "Saved at"}

// WriteWorkbook writes the collection as an .xlsx sheet, one row per
// proposal, for students who track their shortlist in a spreadsheet.
func WriteWorkbook(items []saved.Item, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Proposals"
	f.SetSheetName("Sheet1", sheet)

	for col, h := range workbookHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, it := range items {
		values := []string{
			it.Title,
			it.Difficulty,
			it.Summary,
			strings.Join(it.Tags, ", "),
			strings.Join(it.Datasets, ", "),
			it.SavedAt,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
