package request

import (
	"encoding/json"
	"errors"
	"strings"

	"ucraft_estimates/internal/domain/entities"
)

var (
	ErrInvalidFormValue = errors.New("invalid form value")
	ErrInvalidStatus    = errors.New("invalid status")
)

// FormValue is a numeric form field. Clients may send it as a JSON number or
// as the text typed into the form ("1,200").
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*v = ""
		return nil
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*v = FormValue(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidFormValue
	}
	*v = FormValue(n.String())
	return nil
}

type LineItemRequest struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Unit         string    `json:"unit"`
	Quantity     FormValue `json:"quantity" swaggertype:"string"`
	MaterialCost FormValue `json:"material_cost" swaggertype:"string"`
	LaborCost    FormValue `json:"labor_cost" swaggertype:"string"`
	ImageURL     string    `json:"image_url"`
}

func (r LineItemRequest) Raw() entities.RawLineItem {
	return entities.RawLineItem{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Unit:         r.Unit,
		Quantity:     string(r.Quantity),
		MaterialCost: string(r.MaterialCost),
		LaborCost:    string(r.LaborCost),
		ImageURL:     r.ImageURL,
	}
}

type SupplierRequest struct {
	RegNo   string `json:"reg_no"`
	Name    string `json:"name"`
	Rep     string `json:"rep"`
	Address string `json:"address"`
}

func (r SupplierRequest) ToEntity() entities.Supplier {
	return entities.Supplier{RegNo: r.RegNo, Name: r.Name, Rep: r.Rep, Address: r.Address}
}

type BankInfoRequest struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
}

// EstimateRequest is the estimate form as submitted by a client.
type EstimateRequest struct {
	Title             string            `json:"title"`
	CustomerName      string            `json:"customer_name"`
	Author            string            `json:"author"`
	ConstructionPlace string            `json:"construction_place"`
	Category          string            `json:"category"`
	Items             []LineItemRequest `json:"items"`
	Supplier          SupplierRequest   `json:"supplier"`
	BankInfo          BankInfoRequest   `json:"bank_info"`
}

// ToDraft parses every item. The first rejected item aborts with its
// *entities.ValidationError; nothing else is checked here.
func (r EstimateRequest) ToDraft(id string) (entities.EstimateDraft, error) {
	d := entities.EstimateDraft{
		ID:                strings.TrimSpace(id),
		Title:             r.Title,
		CustomerName:      r.CustomerName,
		Author:            r.Author,
		ConstructionPlace: r.ConstructionPlace,
		Category:          entities.ParseCategory(r.Category),
		Supplier:          r.Supplier.ToEntity(),
		BankInfo: entities.BankInfo{
			BankName:      r.BankInfo.BankName,
			AccountNumber: r.BankInfo.AccountNumber,
			AccountHolder: r.BankInfo.AccountHolder,
		},
	}
	for _, it := range r.Items {
		if _, err := d.AddRawItem(it.Raw()); err != nil {
			return entities.EstimateDraft{}, err
		}
	}
	return d, nil
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ResolveStatus accepts the status name in any case.
func (r StatusRequest) ResolveStatus() (entities.EstimateStatus, error) {
	switch strings.ToLower(strings.TrimSpace(r.Status)) {
	case "draft":
		return entities.EstimateStatusDraft, nil
	case "sent":
		return entities.EstimateStatusSent, nil
	case "completed":
		return entities.EstimateStatusCompleted, nil
	}
	return "", ErrInvalidStatus
}
