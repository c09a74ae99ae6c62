package estimates

// ItemWork — одна работа по позиции сметы. WorkName — захваченная копия
// названия из справочника: переживает удаление справочной записи.
// TotalCost производный: nil при неизвестной цене, иначе цена × количество
// (нулевое количество при известной цене даёт 0, а не nil).
type ItemWork struct {
	ID           string   `json:"id"`
	WorkID       *string  `json:"workId"`
	WorkName     string   `json:"workName"`
	UnitID       *string  `json:"unitId"`
	Quantity     float64  `json:"quantity"`
	PricePerUnit *float64 `json:"pricePerUnit"`
	TotalCost    *float64 `json:"totalCost"`
}

// Item — позиция сметы: обычно материал плюс работы по нему.
// TotalCost — сумма итогов работ, nil считается нулём, поэтому частично
// оценённая позиция не обнуляется, а лишь недосчитывается.
type Item struct {
	ID           string     `json:"id"`
	Number       int        `json:"number"`
	MaterialID   *string    `json:"materialId"`
	MaterialName string     `json:"materialName"`
	Works        []ItemWork `json:"works"`
	TotalCost    float64    `json:"totalCost"`
	Notes        string     `json:"notes"`
}

// Estimate — агрегат сметы. Позиции и работы живут внутри записи,
// сохраняется всегда запись целиком.
type Estimate struct {
	ID        string  `json:"id"`
	Number    string  `json:"number"`
	Name      string  `json:"name"`
	ProjectID *string `json:"projectId"`
	Date      int64   `json:"date"`
	Items     []Item  `json:"items"`
	TotalCost float64 `json:"totalCost"`
	CreatedAt int64   `json:"createdAt"`
}
