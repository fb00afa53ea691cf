package models

import "time"

type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
)

type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEmployer reports whether the profile may send contact requests
func (p *Profile) IsEmployer() bool {
	return p != nil && p.Role == RoleEmployer
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100,personname"`
	Role     string `json:"role" validate:"required,oneof=job_seeker employer"`
}
