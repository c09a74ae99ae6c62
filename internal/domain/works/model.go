package works

// Work — справочная позиция работы (тарифицируемая операция).
type Work struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	UnitID       *string  `json:"unitId"`
	PricePerUnit *float64 `json:"pricePerUnit"`
	Description  string   `json:"description"`
	CreatedAt    int64    `json:"createdAt"`
}
