package response

import (
	"time"

	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/domain/pricing"
)

type LineItemResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	MaterialCost float64 `json:"material_cost"`
	LaborCost    float64 `json:"labor_cost"`
	UnitPrice    float64 `json:"unit_price"`
	LineTotal    float64 `json:"line_total"`
	ImageURL     string  `json:"image_url,omitempty"`
}

type InstallmentsResponse struct {
	Contract int64 `json:"contract"`
	Middle   int64 `json:"middle"`
	Balance  int64 `json:"balance"`
}

type TotalsResponse struct {
	Subtotal     int64                `json:"subtotal"`
	Final        int64                `json:"final"`
	Installments InstallmentsResponse `json:"installments"`
}

type EstimateResponse struct {
	EstimateID        string             `json:"estimate_id"`
	Title             string             `json:"title"`
	CustomerName      string             `json:"customer_name"`
	Author            string             `json:"author,omitempty"`
	ConstructionPlace string             `json:"construction_place,omitempty"`
	Price             int64              `json:"price"`
	Status            string             `json:"status"`
	Category          string             `json:"category"`
	CategoryLabel     string             `json:"category_label"`
	ImageURL          string             `json:"image_url,omitempty"`
	Date              string             `json:"date"`
	Items             []LineItemResponse `json:"items"`
	Totals            TotalsResponse     `json:"totals"`
	Supplier          entities.Supplier  `json:"supplier"`
	BankInfo          entities.BankInfo  `json:"bank_info"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// FromEstimate recomputes the totals from the items. Estimates without items
// use their stored price.
func FromEstimate(e entities.Estimate) EstimateResponse {
	totals := pricing.ForPrice(e.Price)
	if len(e.Items) > 0 {
		totals = pricing.Compute(e.Items)
	}

	items := make([]LineItemResponse, len(e.Items))
	for i, it := range e.Items {
		items[i] = LineItemResponse{
			ID:           it.ID,
			Name:         it.Name,
			Description:  it.Description,
			Unit:         it.Unit,
			Quantity:     it.Quantity,
			MaterialCost: it.MaterialCost,
			LaborCost:    it.LaborCost,
			UnitPrice:    totals.Lines[i].UnitPrice.InexactFloat64(),
			LineTotal:    totals.Lines[i].LineTotal.InexactFloat64(),
			ImageURL:     it.ImageURL,
		}
	}

	return EstimateResponse{
		EstimateID:        e.ID,
		Title:             e.Title,
		CustomerName:      e.CustomerName,
		Author:            e.Author,
		ConstructionPlace: e.ConstructionPlace,
		Price:             e.Price,
		Status:            string(e.Status),
		Category:          string(e.Category),
		CategoryLabel:     e.Category.DisplayName(),
		ImageURL:          e.ImageURL,
		Date:              e.Date,
		Items:             items,
		Totals: TotalsResponse{
			Subtotal: pricing.DisplayAmount(totals.Subtotal),
			Final:    totals.Final,
			Installments: InstallmentsResponse{
				Contract: totals.Installments.Contract,
				Middle:   totals.Installments.Middle,
				Balance:  totals.Installments.Balance,
			},
		},
		Supplier:  e.Supplier,
		BankInfo:  e.BankInfo,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// EstimateListResponse carries the listing. Warning is set when the store
// could not be read and the bundled examples are shown instead.
type EstimateListResponse struct {
	Estimates []EstimateResponse `json:"estimates"`
	Warning   string             `json:"warning,omitempty"`
}

func FromEstimates(list []entities.Estimate) EstimateListResponse {
	res := EstimateListResponse{Estimates: make([]EstimateResponse, len(list))}
	for i, e := range list {
		res.Estimates[i] = FromEstimate(e)
	}
	return res
}

// DraftResponse is a new, unsaved estimate form.
type DraftResponse struct {
	Author   string            `json:"author"`
	Supplier entities.Supplier `json:"supplier"`
	BankInfo entities.BankInfo `json:"bank_info"`
	Category string            `json:"category"`
	Warning  string            `json:"warning,omitempty"`
}

func FromDraft(d entities.EstimateDraft) DraftResponse {
	return DraftResponse{
		Author:   d.Author,
		Supplier: d.Supplier,
		BankInfo: d.BankInfo,
		Category: string(d.Category),
	}
}
