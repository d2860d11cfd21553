// Package document turns an estimate and its precomputed totals into a
// printable document. It does no arithmetic on prices; every figure comes
// from pricing.Totals.
package document

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/domain/pricing"
)

var (
	ErrTotalsMismatch = errors.New("totals do not match estimate items")
	ErrNoFormatter    = errors.New("currency formatter is required")
)

const (
	DefaultFilenameBase = "견적서"
	closingRemark       = "위와 같이 견적서를 제출합니다."
	missingTitle        = "(견적명 미입력)"
	missingCustomer     = "고객"
	missingPlace        = "정보 미기재"
)

var remarks = []string{
	"본 견적서는 발행일로부터 15일간 유효합니다.",
	"공사 범위 외 추가 요청 사항은 별도 정산합니다.",
	"하자 보수 기간은 준공일로부터 1년으로 합니다.",
	"자재 수급 상황에 따라 동급 자재로 변경될 수 있습니다.",
}

// Columns is the item table header shared by all layouts.
var Columns = []string{"품목/내용", "규격", "수량", "단가", "금액"}

// CurrencyFormatter renders whole currency amounts.
type CurrencyFormatter interface {
	// Format includes the currency symbol.
	Format(amount int64) string
	// Number is the grouped figure without a symbol, used inside tables.
	Number(amount int64) string
}

// Field is one labelled value in a header block.
type Field struct {
	Label string
	Value string
}

// Row is one line of the item table. Padding rows have Blank set and no values.
type Row struct {
	No          int
	Name        string
	Description string
	Unit        string
	Quantity    string
	UnitPrice   string
	LineTotal   string
	Blank       bool
}

// PaymentLine is one installment of the payment schedule.
type PaymentLine struct {
	Installment entities.Installment
	Label       string
	Percent     int
	Amount      int64
	Formatted   string
}

// Document is the layout-independent content of a printed estimate.
// Exporters decide how to draw it.
type Document struct {
	Layout        Layout
	Heading       string
	Number        string
	Title         string
	Date          string
	CategoryLabel string
	Supplier      []Field
	Customer      []Field
	Columns       []string
	Rows          []Row
	ItemCount     int
	Payments      []PaymentLine
	Subtotal      string
	Final         string
	FinalAmount   int64
	Bank          []Field
	Remarks       []string
	Closing       string
}

var percents = map[entities.Installment]int{
	entities.InstallmentContract: 30,
	entities.InstallmentMiddle:   40,
	entities.InstallmentBalance:  30,
}

// Compose builds the document for e. totals must be pricing.Compute(e.Items),
// or pricing.ForPrice for an estimate with no items.
func Compose(e entities.Estimate, totals pricing.Totals, layout Layout, f CurrencyFormatter) (Document, error) {
	if f == nil {
		return Document{}, ErrNoFormatter
	}
	if _, err := ParseLayout(string(layout)); err != nil {
		return Document{}, err
	}
	if len(totals.Lines) != len(e.Items) {
		return Document{}, fmt.Errorf("%w: %d lines for %d items", ErrTotalsMismatch, len(totals.Lines), len(e.Items))
	}

	w := layout.widths()
	doc := Document{
		Layout:        layout,
		Heading:       heading(layout),
		Number:        documentNumber(e.ID),
		Title:         orDefault(e.Title, missingTitle),
		Date:          e.Date,
		CategoryLabel: "[" + e.Category.DisplayName() + "]",
		Columns:       Columns,
		ItemCount:     len(e.Items),
		Subtotal:      f.Format(pricing.DisplayAmount(totals.Subtotal)),
		Final:         f.Format(totals.Final),
		FinalAmount:   totals.Final,
		Remarks:       remarks,
		Closing:       closingRemark,
	}

	doc.Supplier = []Field{
		{Label: "등록번호", Value: e.Supplier.RegNo},
		{Label: "상호", Value: orDefault(e.Supplier.Name, e.Author)},
		{Label: "대표자", Value: e.Supplier.Rep},
		{Label: "사업장", Value: e.Supplier.Address},
	}
	doc.Customer = []Field{
		{Label: "견적의뢰", Value: orDefault(e.CustomerName, missingCustomer) + " 귀하"},
		{Label: "시공장소", Value: orDefault(e.ConstructionPlace, missingPlace)},
	}

	bank := e.BankInfo.WithDefaults()
	doc.Bank = []Field{
		{Label: "은행명", Value: bank.BankName},
		{Label: "계좌번호", Value: bank.AccountNumber},
		{Label: "예금주", Value: bank.AccountHolder},
	}

	doc.Rows = make([]Row, 0, max(len(e.Items), layout.MinRows()))
	for i, it := range e.Items {
		line := totals.Lines[i]
		doc.Rows = append(doc.Rows, Row{
			No:          i + 1,
			Name:        trim(it.Name, w.name),
			Description: trim(it.Description, w.description),
			Unit:        trim(it.Unit, w.unit),
			Quantity:    FormatQuantity(it.Quantity),
			UnitPrice:   f.Number(pricing.DisplayAmount(line.UnitPrice)),
			LineTotal:   f.Number(pricing.DisplayAmount(line.LineTotal)),
		})
	}
	for len(doc.Rows) < layout.MinRows() {
		doc.Rows = append(doc.Rows, Row{Blank: true})
	}

	for _, kind := range entities.Installments {
		amount := totals.Installments.Amount(kind)
		doc.Payments = append(doc.Payments, PaymentLine{
			Installment: kind,
			Label:       kind.Label(),
			Percent:     percents[kind],
			Amount:      amount,
			Formatted:   f.Format(amount),
		})
	}

	return doc, nil
}

func heading(l Layout) string {
	if l == LayoutBoxed {
		return "ESTIMATE"
	}
	return "견 적 서"
}

func documentNumber(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	r := []rune(id)
	if len(r) > 6 {
		r = r[len(r)-6:]
	}
	return strings.ToUpper(string(r))
}

// FormatQuantity prints whole quantities without decimals and others with two.
func FormatQuantity(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}

var unsafeFilename = regexp.MustCompile(`[\\/:*?"<>|\x00-\x1f]+`)

// SuggestedFilename builds "<title>_<letter>타입.<ext>".
func SuggestedFilename(title string, layout Layout, ext string) string {
	base := strings.TrimSpace(unsafeFilename.ReplaceAllString(title, "_"))
	base = strings.Trim(base, "._ ")
	if base == "" {
		base = DefaultFilenameBase
	}
	name := base + "_" + layout.Letter() + "타입"
	if ext = strings.TrimPrefix(strings.TrimSpace(ext), "."); ext != "" {
		name += "." + ext
	}
	return name
}

func trim(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
