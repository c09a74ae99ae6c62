package materials

type Type string

const (
	TypeMaterial  Type = "material"
	TypeEquipment Type = "equipment"
)

// Material — позиция каталога материалов/оборудования.
// Price == nil — цена ещё не известна.
type Material struct {
	ID            string   `json:"id"`
	Type          Type     `json:"type"`
	Code          string   `json:"code"`
	ArticleNumber string   `json:"articleNumber"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	UnitID        *string  `json:"unitId"`
	Price         *float64 `json:"price"`
	Manufacturer  string   `json:"manufacturer"`
	Notes         string   `json:"notes"`
	CreatedAt     int64    `json:"createdAt"`
}
