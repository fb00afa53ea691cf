package models

import "time"

type Company struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	City        string    `json:"city"`
	Size        string    `json:"size"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpsertCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Industry    string `json:"industry" validate:"max=80"`
	City        string `json:"city" validate:"max=50"`
	Size        string `json:"size" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 500+"`
	Website     string `json:"website" validate:"omitempty,url"`
	Description string `json:"description" validate:"max=2000"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}
