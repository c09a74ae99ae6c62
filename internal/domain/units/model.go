package units

type Kind string

const (
	KindWeight Kind = "weight"
	KindLength Kind = "length"
	KindVolume Kind = "volume"
	KindArea   Kind = "area"
	KindTime   Kind = "time"
	KindPiece  Kind = "piece"
	KindOther  Kind = "other"
)

// Unit — единица измерения. Переименование подхватывается по ссылке,
// в записи смет имя единицы не копируется.
type Unit struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	FullName  string `json:"fullName"`
	Kind      Kind   `json:"type"`
	CreatedAt int64  `json:"createdAt"`
}
