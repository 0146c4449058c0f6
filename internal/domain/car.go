package domain

import "time"

type Car struct {
	ID               int32     `json:"id"`
	Plate            string    `json:"plate"`
	Make             string    `json:"make"`
	Model            string    `json:"model"`
	Year             int32     `json:"year"`
	DailyRateCents   int32     `json:"daily_rate_cents"`
	DailyKmAllowance int32     `json:"daily_km_allowance"`
	IsAvailable      bool      `json:"is_available"`
	CreatedOn        time.Time `json:"created_on"`
	UpdatedOn        time.Time `json:"updated_on"`
}
