// Package extract converts uploaded research documents into plain text and
// aggregates them into a single research blob with provenance markers.
package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"

	"github.com/uxrlab/uxr-backend/internal/apperr"
)

// Extensions lists every file extension the extractor accepts, in the order
// the upload boundary advertises them.
var Extensions = []string{".pdf", ".docx", ".doc", ".csv", ".xlsx", ".xls", ".txt", ".md"}

// Supported reports whether the given extension (with leading dot, any case)
// can be extracted.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Extract reads the file at path and returns its text content. Dispatch is
// purely on the file extension; the declared media type is ignored. Parse
// failures come back as ExtractionFailed carrying the cause, never as a
// partial result.
func Extract(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx", ".doc":
		text, err = extractWord(path)
	case ".csv":
		text, err = extractCSV(path)
	case ".xlsx":
		text, err = extractXLSX(path)
	case ".xls":
		text, err = extractXLS(path)
	case ".txt", ".md":
		text, err = extractText(path)
	default:
		return "", apperr.Newf(apperr.CodeUnsupportedFormat, "Unsupported file type: %s", ext)
	}

	if err != nil {
		return "", apperr.Wrap(apperr.CodeExtractionFailed, "Failed to parse file", err)
	}
	return text, nil
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractWord(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", err
	}

	doc, err := docx.Parse(f, st.Size())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch v := item.(type) {
		case *docx.Paragraph, *docx.Table:
			fmt.Fprintln(&sb, v)
		}
	}
	return sb.String(), nil
}

// extractCSV treats a bare CSV file as a workbook with one implicit sheet.
func extractCSV(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	writeSheet(&sb, "Sheet1", records)
	return strings.TrimSpace(sb.String()), nil
}

func extractXLSX(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return "", err
		}
		writeSheet(&sb, name, rows)
	}
	return strings.TrimSpace(sb.String()), nil
}

func extractXLS(path string) (string, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		var rows [][]string
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			var cells []string
			for c := row.FirstCol(); c <= row.LastCol(); c++ {
				cells = append(cells, row.Col(c))
			}
			rows = append(rows, cells)
		}
		writeSheet(&sb, sheet.Name, rows)
	}
	return strings.TrimSpace(sb.String()), nil
}

func extractText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// writeSheet renders one sheet: a header line naming it, then the rows as
// comma-separated values in reading order.
func writeSheet(sb *strings.Builder, name string, rows [][]string) {
	sb.WriteString("\n=== " + name + " ===\n")
	w := csv.NewWriter(sb)
	for _, row := range rows {
		if len(row) == 0 {
			row = []string{""}
		}
		_ = w.Write(row)
	}
	w.Flush()
	sb.WriteString("\n")
}

// Preview returns the first max runes of content, with an ellipsis when
// truncated. Used by the upload endpoint's response.
func Preview(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "..."
}
