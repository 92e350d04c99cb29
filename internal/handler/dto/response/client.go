package response

import (
	"time"

	"vtcquote/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromClientView(view *queries.ClientView) *ClientResponse {
	return &ClientResponse{
		ID:        view.ID,
		Name:      view.Name,
		Email:     view.Email,
		Phone:     view.Phone,
		Notes:     view.Notes,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}
