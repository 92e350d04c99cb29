package request

import (
	"vtcquote/internal/usecase/commands"
)

type ClientRequest struct {
	Name  string  `json:"name" binding:"required,max=255"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone string  `json:"phone" binding:"max=32"`
	Notes string  `json:"notes" binding:"max=2000"`
}

func (r *ClientRequest) ToInput() commands.ClientInput {
	return commands.ClientInput{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Notes: r.Notes,
	}
}
