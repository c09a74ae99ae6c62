package projects

type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Project — объект/проект, на который может ссылаться смета.
type Project struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Status        Status   `json:"status"`
	StartDate     *string  `json:"startDate"`
	EndDate       *string  `json:"endDate"`
	Budget        *float64 `json:"budget"`
	LegalEntityID *string  `json:"legalEntityId"`
	CreatedAt     int64    `json:"createdAt"`
}
