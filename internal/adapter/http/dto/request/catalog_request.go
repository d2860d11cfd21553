package request

import "strings"

// CatalogApplyRequest selects price list entries to turn into line items.
type CatalogApplyRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// ResolveIDs drops blanks and repeats, keeping the request order.
func (r CatalogApplyRequest) ResolveIDs() []string {
	seen := make(map[string]bool, len(r.IDs))
	out := make([]string, 0, len(r.IDs))
	for _, id := range r.IDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
