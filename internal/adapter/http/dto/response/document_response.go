package response

import (
	"ucraft_estimates/internal/domain/document"
)

type FieldResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type RowResponse struct {
	No          int    `json:"no,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit,omitempty"`
	Quantity    string `json:"quantity,omitempty"`
	UnitPrice   string `json:"unit_price,omitempty"`
	LineTotal   string `json:"line_total,omitempty"`
	Blank       bool   `json:"blank,omitempty"`
}

type PaymentLineResponse struct {
	Installment string `json:"installment"`
	Label       string `json:"label"`
	Percent     int    `json:"percent"`
	Amount      int64  `json:"amount"`
	Formatted   string `json:"formatted"`
}

// DocumentResponse is the printable estimate as structured data, so clients
// can draw their own preview.
type DocumentResponse struct {
	Layout        string                `json:"layout"`
	Heading       string                `json:"heading"`
	Number        string                `json:"number"`
	Title         string                `json:"title"`
	Date          string                `json:"date"`
	CategoryLabel string                `json:"category_label"`
	Supplier      []FieldResponse       `json:"supplier"`
	Customer      []FieldResponse       `json:"customer"`
	Columns       []string              `json:"columns"`
	Rows          []RowResponse         `json:"rows"`
	ItemCount     int                   `json:"item_count"`
	Payments      []PaymentLineResponse `json:"payments"`
	Subtotal      string                `json:"subtotal"`
	Final         string                `json:"final"`
	FinalAmount   int64                 `json:"final_amount"`
	Bank          []FieldResponse       `json:"bank"`
	Remarks       []string              `json:"remarks"`
	Closing       string                `json:"closing"`
}

func FromDocument(d document.Document) DocumentResponse {
	res := DocumentResponse{
		Layout:        string(d.Layout),
		Heading:       d.Heading,
		Number:        d.Number,
		Title:         d.Title,
		Date:          d.Date,
		CategoryLabel: d.CategoryLabel,
		Supplier:      fromFields(d.Supplier),
		Customer:      fromFields(d.Customer),
		Columns:       d.Columns,
		Rows:          make([]RowResponse, len(d.Rows)),
		ItemCount:     d.ItemCount,
		Payments:      make([]PaymentLineResponse, len(d.Payments)),
		Subtotal:      d.Subtotal,
		Final:         d.Final,
		FinalAmount:   d.FinalAmount,
		Bank:          fromFields(d.Bank),
		Remarks:       d.Remarks,
		Closing:       d.Closing,
	}
	for i, r := range d.Rows {
		res.Rows[i] = RowResponse(r)
	}
	for i, p := range d.Payments {
		res.Payments[i] = PaymentLineResponse{
			Installment: string(p.Installment),
			Label:       p.Label,
			Percent:     p.Percent,
			Amount:      p.Amount,
			Formatted:   p.Formatted,
		}
	}
	return res
}

func fromFields(in []document.Field) []FieldResponse {
	out := make([]FieldResponse, len(in))
	for i, f := range in {
		out[i] = FieldResponse(f)
	}
	return out
}

// FormatsResponse lists the export formats the server can produce.
type FormatsResponse struct {
	Formats []string `json:"formats"`
	Layouts []string `json:"layouts"`
}

func FromFormats(formats []string) FormatsResponse {
	layouts := make([]string, len(document.Layouts))
	for i, l := range document.Layouts {
		layouts[i] = string(l)
	}
	return FormatsResponse{Formats: formats, Layouts: layouts}
}
