package domain

import "time"

// Part is a row in the parts/stock side-ledger. It shares no invariants
// with the rental core.
type Part struct {
	ID            int32     `json:"id"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	Quantity      int32     `json:"quantity"`
	UnitCostCents int32     `json:"unit_cost_cents"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}
