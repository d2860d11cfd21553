package export

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ucraft_estimates/internal/domain/document"
	"ucraft_estimates/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

const (
	FormatPDF      = "pdf"
	pdfContentType = "application/pdf"
	pdfFontFamily  = "estimate"
)

// pdfTheme is what differs between the three printed designs.
type pdfTheme struct {
	headingAlign align.Type
	headingSize  float64
	accent       *props.Color
	cell         *props.Cell
}

func themeFor(l document.Layout) pdfTheme {
	switch l {
	case document.LayoutModern:
		return pdfTheme{
			headingAlign: align.Left,
			headingSize:  22,
			accent:       &props.Color{Red: 15, Green: 76, Blue: 92},
		}
	case document.LayoutBoxed:
		boxed := &props.Cell{BorderType: border.Full, BorderColor: &props.Color{Red: 0, Green: 0, Blue: 0}, BorderThickness: 0.2}
		return pdfTheme{
			headingAlign: align.Center,
			headingSize:  20,
			accent:       &props.Color{Red: 60, Green: 60, Blue: 60},
			cell:         boxed,
		}
	default:
		return pdfTheme{
			headingAlign: align.Center,
			headingSize:  18,
			accent:       &props.Color{Red: 33, Green: 37, Blue: 41},
		}
	}
}

// PDFExporter draws documents with maroto. Without a font file the
// built-in font is used, which cannot render Hangul glyphs.
type PDFExporter struct {
	fontPath string
}

var _ interfaces.IDocumentExporter = (*PDFExporter)(nil)

func NewPDFExporter(fontPath string) *PDFExporter {
	return &PDFExporter{fontPath: strings.TrimSpace(fontPath)}
}

// RendersHangul reports whether a UTF-8 font is configured.
func (e *PDFExporter) RendersHangul() bool { return e.fontPath != "" }

func (e *PDFExporter) Format() string { return FormatPDF }

func (e *PDFExporter) Export(ctx context.Context, doc document.Document, layout document.Layout, filename string) (interfaces.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.Artifact{}, err
	}

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12)
	if e.fontPath != "" {
		fonts, err := repository.New().
			AddUTF8Font(pdfFontFamily, fontstyle.Normal, e.fontPath).
			AddUTF8Font(pdfFontFamily, fontstyle.Bold, e.fontPath).
			Load()
		if err != nil {
			return interfaces.Artifact{}, &interfaces.ExportFailure{Format: FormatPDF, Err: fmt.Errorf("load font: %w", err)}
		}
		builder = builder.WithCustomFonts(fonts).WithDefaultFont(&props.Font{Family: pdfFontFamily})
	}

	m := maroto.New(builder.Build())
	th := themeFor(layout)

	addPDFHeading(m, doc, th)
	addPDFParties(m, doc, th)
	addPDFTotal(m, doc, th)
	addPDFItems(m, doc, th)
	addPDFPayments(m, doc, th)
	addPDFFooter(m, doc, th)

	out, err := m.Generate()
	if err != nil {
		return interfaces.Artifact{}, &interfaces.ExportFailure{Format: FormatPDF, Retryable: true, Err: fmt.Errorf("generate pdf: %w", err)}
	}
	if err := ctx.Err(); err != nil {
		return interfaces.Artifact{}, err
	}
	return interfaces.Artifact{Filename: filename, ContentType: pdfContentType, Data: out.GetBytes()}, nil
}

func styled(c core.Col, cell *props.Cell) core.Col {
	if cell == nil {
		return c
	}
	return c.WithStyle(cell)
}

func addPDFHeading(m core.Maroto, doc document.Document, th pdfTheme) {
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(text.New(doc.Heading, props.Text{
				Size:  th.headingSize,
				Style: fontstyle.Bold,
				Align: th.headingAlign,
				Color: th.accent,
			})),
		),
	)

	sub := props.Text{Size: 9, Color: &props.Color{Red: 80, Green: 80, Blue: 80}}
	right := sub
	right.Align = align.Right
	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(doc.CategoryLabel+" "+doc.Title, sub)),
			col.New(6).Add(text.New(fmt.Sprintf("No. %s   %s", doc.Number, doc.Date), right)),
		),
		row.New(3),
	)
}

func addPDFParties(m core.Maroto, doc document.Document, th pdfTheme) {
	label := props.Text{Size: 8, Style: fontstyle.Bold, Left: 1}
	value := props.Text{Size: 8, Left: 1}

	n := max(len(doc.Customer), len(doc.Supplier))
	for i := 0; i < n; i++ {
		r := row.New(6)
		if i < len(doc.Customer) {
			r.Add(
				styled(col.New(2).Add(text.New(doc.Customer[i].Label, label)), th.cell),
				styled(col.New(4).Add(text.New(doc.Customer[i].Value, value)), th.cell),
			)
		} else {
			r.Add(col.New(6))
		}
		if i < len(doc.Supplier) {
			r.Add(
				styled(col.New(2).Add(text.New(doc.Supplier[i].Label, label)), th.cell),
				styled(col.New(4).Add(text.New(doc.Supplier[i].Value, value)), th.cell),
			)
		}
		m.AddRows(r)
	}
	m.AddRows(row.New(4))
}

func addPDFTotal(m core.Maroto, doc document.Document, th pdfTheme) {
	banner := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	if th.cell != nil {
		banner.BorderType = th.cell.BorderType
		banner.BorderColor = th.cell.BorderColor
		banner.BorderThickness = th.cell.BorderThickness
	}
	m.AddRows(
		row.New(10).Add(
			col.New(4).Add(text.New("합계금액 (VAT 별도)", props.Text{Size: 10, Style: fontstyle.Bold, Top: 2, Left: 2})).WithStyle(banner),
			col.New(8).Add(text.New(doc.Final, props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right, Top: 2, Right: 2, Color: th.accent})).WithStyle(banner),
		),
		row.New(4),
	)
}

var itemColumnWidths = []int{1, 4, 1, 1, 2, 3}

func addPDFItems(m core.Maroto, doc document.Document, th pdfTheme) {
	header := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Top: 1, Color: &props.Color{Red: 255, Green: 255, Blue: 255}}
	headerCell := &props.Cell{BackgroundColor: th.accent}

	titles := append([]string{"No."}, doc.Columns...)
	cols := make([]core.Col, len(itemColumnWidths))
	for i, w := range itemColumnWidths {
		cols[i] = col.New(w).Add(text.New(titles[i], header)).WithStyle(headerCell)
	}
	m.AddRows(row.New(7).Add(cols...))

	base := props.Text{Size: 8, Align: align.Center, Top: 1}
	left := base
	left.Align = align.Left
	left.Left = 1
	right := base
	right.Align = align.Right
	right.Right = 1
	small := props.Text{Size: 6, Left: 1, Color: &props.Color{Red: 120, Green: 120, Blue: 120}}

	for _, r := range doc.Rows {
		if r.Blank {
			empty := make([]core.Col, len(itemColumnWidths))
			for i, w := range itemColumnWidths {
				empty[i] = styled(col.New(w), th.cell)
			}
			m.AddRows(row.New(7).Add(empty...))
			continue
		}
		name := col.New(4).Add(text.New(r.Name, left))
		if r.Description != "" {
			name.Add(text.New(r.Description, props.Text{Size: small.Size, Left: small.Left, Top: 4, Color: small.Color}))
		}
		m.AddRows(row.New(9).Add(
			styled(col.New(1).Add(text.New(strconv.Itoa(r.No), base)), th.cell),
			styled(name, th.cell),
			styled(col.New(1).Add(text.New(r.Unit, base)), th.cell),
			styled(col.New(1).Add(text.New(r.Quantity, right)), th.cell),
			styled(col.New(2).Add(text.New(r.UnitPrice, right)), th.cell),
			styled(col.New(3).Add(text.New(r.LineTotal, right)), th.cell),
		))
	}

	sum := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Top: 1, Right: 1}
	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("소계", sum)),
			col.New(3).Add(text.New(doc.Subtotal, sum)),
		),
		row.New(7).Add(
			col.New(9).Add(text.New("최종 견적가 (천원 단위 절사)", sum)),
			col.New(3).Add(text.New(doc.Final, sum)),
		),
		row.New(4),
	)
}

func addPDFPayments(m core.Maroto, doc document.Document, th pdfTheme) {
	label := props.Text{Size: 8, Style: fontstyle.Bold, Left: 1, Top: 1}
	value := props.Text{Size: 8, Align: align.Right, Right: 1, Top: 1}

	m.AddRows(row.New(6).Add(col.New(12).Add(text.New("결제 조건", props.Text{Size: 9, Style: fontstyle.Bold, Color: th.accent}))))
	for _, p := range doc.Payments {
		m.AddRows(row.New(6).Add(
			styled(col.New(4).Add(text.New(fmt.Sprintf("%s (%d%%)", p.Label, p.Percent), label)), th.cell),
			styled(col.New(8).Add(text.New(p.Formatted, value)), th.cell),
		))
	}
	m.AddRows(row.New(3))

	bank := ""
	for i, f := range doc.Bank {
		if i > 0 {
			bank += "   "
		}
		bank += f.Label + ": " + f.Value
	}
	m.AddRows(row.New(6).Add(col.New(12).Add(text.New(bank, props.Text{Size: 8, Left: 1}))), row.New(3))
}

func addPDFFooter(m core.Maroto, doc document.Document, th pdfTheme) {
	note := props.Text{Size: 7, Left: 1, Color: &props.Color{Red: 100, Green: 100, Blue: 100}}
	for _, r := range doc.Remarks {
		m.AddRows(row.New(5).Add(col.New(12).Add(text.New("· "+r, note))))
	}
	m.AddRows(
		row.New(6),
		row.New(8).Add(col.New(12).Add(text.New(doc.Closing, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Center, Color: th.accent}))),
	)
}
