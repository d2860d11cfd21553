package request

// DocumentRequest renders a draft that has not been saved.
type DocumentRequest struct {
	Layout string          `json:"layout"`
	Format string          `json:"format"`
	Draft  EstimateRequest `json:"draft"`
}
