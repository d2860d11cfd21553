package entities

// CatalogItem is a read-only price list entry. Price is the material-only unit price.
type CatalogItem struct {
	ID          string  `json:"id" yaml:"id"`
	Category    string  `json:"category" yaml:"category"`
	Name        string  `json:"name" yaml:"name"`
	Price       float64 `json:"price" yaml:"price"`
	Unit        string  `json:"unit" yaml:"unit"`
	Description string  `json:"description" yaml:"description"`
	IsFavorite  bool    `json:"is_favorite" yaml:"is_favorite"`
}

// TemplateItem is a line item definition without identity.
type TemplateItem struct {
	Name         string  `json:"name" yaml:"name"`
	Description  string  `json:"description,omitempty" yaml:"description"`
	Unit         string  `json:"unit" yaml:"unit"`
	Quantity     float64 `json:"quantity" yaml:"quantity"`
	MaterialCost float64 `json:"material_cost" yaml:"material_cost"`
	LaborCost    float64 `json:"labor_cost" yaml:"labor_cost"`
	ImageURL     string  `json:"image_url,omitempty" yaml:"image_url"`
}

// Template is a reusable bundle of line items. Applying it copies the items.
type Template struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Category    string         `json:"category" yaml:"category"`
	Items       []TemplateItem `json:"items" yaml:"items"`
}

// ReferenceData is the bundled, read-only data set: price list, templates and
// the estimates shown when nothing has been saved yet.
type ReferenceData struct {
	Categories []string      `yaml:"categories"`
	Items      []CatalogItem `yaml:"items"`
	Templates  []Template    `yaml:"templates"`
	Estimates  []Estimate    `yaml:"estimates"`
}
