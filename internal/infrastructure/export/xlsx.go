package export

import (
	"bytes"
	"context"
	"fmt"

	"ucraft_estimates/internal/domain/document"
	"ucraft_estimates/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	FormatXLSX      = "xlsx"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	xlsxSheet       = "견적서"
)

var xlsxColumns = []string{"A", "B", "C", "D", "E", "F", "G"}

// XLSXExporter writes the document as a single worksheet. All figures are
// written as the formatted strings of the document.
type XLSXExporter struct{}

var _ interfaces.IDocumentExporter = (*XLSXExporter)(nil)

func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

func (e *XLSXExporter) Format() string { return FormatXLSX }

func (e *XLSXExporter) Export(ctx context.Context, doc document.Document, layout document.Layout, filename string) (interfaces.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.Artifact{}, err
	}
	data, err := writeWorkbook(doc, layout)
	if err != nil {
		return interfaces.Artifact{}, &interfaces.ExportFailure{Format: FormatXLSX, Retryable: true, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return interfaces.Artifact{}, err
	}
	return interfaces.Artifact{Filename: filename, ContentType: xlsxContentType, Data: data}, nil
}

type xlsxStyles struct {
	title, label, header, cell, number, total int
}

func newXLSXStyles(f *excelize.File, layout document.Layout) (xlsxStyles, error) {
	accent := "#212529"
	switch layout {
	case document.LayoutModern:
		accent = "#0F4C5C"
	case document.LayoutBoxed:
		accent = "#3C3C3C"
	}
	var cellBorders []excelize.Border
	if layout == document.LayoutBoxed {
		cellBorders = thinBorders()
	}

	var s xlsxStyles
	var err error
	if s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 18, Color: accent},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}
	if s.label, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Border: cellBorders,
	}); err != nil {
		return s, fmt.Errorf("create label style: %w", err)
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{accent}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}
	if s.cell, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "center"},
		Border:    thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create cell style: %w", err)
	}
	if s.number, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    thinBorders(),
	}); err != nil {
		return s, fmt.Errorf("create number style: %w", err)
	}
	if s.total, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: accent},
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    cellBorders,
	}); err != nil {
		return s, fmt.Errorf("create total style: %w", err)
	}
	return s, nil
}

func writeWorkbook(doc document.Document, layout document.Layout) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	widths := []float64{6, 24, 36, 8, 8, 14, 16}
	for i, c := range xlsxColumns {
		if err := f.SetColWidth(xlsxSheet, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}
	st, err := newXLSXStyles(f, layout)
	if err != nil {
		return nil, err
	}
	last := xlsxColumns[len(xlsxColumns)-1]

	w := &sheetWriter{f: f, row: 1}

	// heading
	if err := f.MergeCell(xlsxSheet, "A1", last+"1"); err != nil {
		return nil, fmt.Errorf("merge heading: %w", err)
	}
	w.set("A", doc.Heading, st.title)
	w.next()
	w.set("A", sanitizeExcelCell(doc.CategoryLabel+" "+doc.Title), st.label)
	w.set("F", "No. "+doc.Number, st.label)
	w.set("G", doc.Date, st.label)
	w.next()
	w.next()

	// parties
	n := max(len(doc.Customer), len(doc.Supplier))
	for i := 0; i < n; i++ {
		if i < len(doc.Customer) {
			w.set("A", doc.Customer[i].Label, st.label)
			w.set("B", sanitizeExcelCell(doc.Customer[i].Value), st.cell)
		}
		if i < len(doc.Supplier) {
			w.set("D", doc.Supplier[i].Label, st.label)
			w.set("F", sanitizeExcelCell(doc.Supplier[i].Value), st.cell)
		}
		w.next()
	}
	w.next()

	w.set("A", "합계금액 (VAT 별도)", st.label)
	w.set("G", doc.Final, st.total)
	w.next()
	w.next()

	// items
	headers := append([]string{"No."}, doc.Columns[:1]...)
	headers = append(headers, "설명")
	headers = append(headers, doc.Columns[1:]...)
	for i, h := range headers {
		w.set(xlsxColumns[i], h, st.header)
	}
	w.next()
	for _, r := range doc.Rows {
		if r.Blank {
			for _, c := range xlsxColumns {
				w.set(c, "", st.cell)
			}
			w.next()
			continue
		}
		w.set("A", r.No, st.cell)
		w.set("B", sanitizeExcelCell(r.Name), st.cell)
		w.set("C", sanitizeExcelCell(r.Description), st.cell)
		w.set("D", sanitizeExcelCell(r.Unit), st.cell)
		w.set("E", r.Quantity, st.number)
		w.set("F", r.UnitPrice, st.number)
		w.set("G", r.LineTotal, st.number)
		w.next()
	}
	w.set("F", "소계", st.label)
	w.set("G", doc.Subtotal, st.total)
	w.next()
	w.set("F", "최종 견적가", st.label)
	w.set("G", doc.Final, st.total)
	w.next()
	w.next()

	// payments
	w.set("A", "결제 조건", st.label)
	w.next()
	for _, p := range doc.Payments {
		w.set("B", fmt.Sprintf("%s (%d%%)", p.Label, p.Percent), st.label)
		w.set("G", p.Formatted, st.total)
		w.next()
	}
	w.next()
	for _, b := range doc.Bank {
		w.set("A", b.Label, st.label)
		w.set("B", sanitizeExcelCell(b.Value), 0)
		w.next()
	}
	w.next()
	for _, r := range doc.Remarks {
		w.set("A", "· "+r, 0)
		w.next()
	}
	w.next()
	w.set("A", doc.Closing, st.label)

	if w.err != nil {
		return nil, w.err
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the current row and the first error.
type sheetWriter struct {
	f   *excelize.File
	row int
	err error
}

func (w *sheetWriter) next() { w.row++ }

func (w *sheetWriter) set(column string, value any, style int) {
	if w.err != nil {
		return
	}
	cell := fmt.Sprintf("%s%d", column, w.row)
	if err := w.f.SetCellValue(xlsxSheet, cell, value); err != nil {
		w.err = fmt.Errorf("set %s: %w", cell, err)
		return
	}
	if style != 0 {
		if err := w.f.SetCellStyle(xlsxSheet, cell, cell, style); err != nil {
			w.err = fmt.Errorf("style %s: %w", cell, err)
		}
	}
}

// sanitizeExcelCell prefixes leading formula characters with a quote so
// user text is never evaluated.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
