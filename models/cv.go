package models

import "time"

type CV struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Profession      string    `json:"profession"`
	City            string    `json:"city"`
	District        string    `json:"district"`
	ExperienceYears int       `json:"experience_years"`
	EducationLevel  string    `json:"education_level"`
	Skills          []string  `json:"skills"`
	Languages       []string  `json:"languages"`
	About           string    `json:"about"`
	SalaryMin       int       `json:"salary_min"`
	SalaryMax       int       `json:"salary_max"`
	WorkType        string    `json:"work_type"`
	EmploymentType  string    `json:"employment_type"`
	MilitaryStatus  string    `json:"military_status"`
	DrivingLicense  bool      `json:"driving_license"`
	CanTravel       bool      `json:"can_travel"`
	IsDisabled      bool      `json:"is_disabled"`
	IsRetired       bool      `json:"is_retired"`
	IsStudent       bool      `json:"is_student"`
	IsActive        bool      `json:"is_active"`
	PhotoURL        string    `json:"photo_url"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Views           int       `json:"views"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// WithoutContact returns a copy of the CV with private contact details removed
func (cv CV) WithoutContact() CV {
	cv.Email = ""
	cv.Phone = ""
	return cv
}

type UpsertCVRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=100,personname"`
	Profession      string   `json:"profession" validate:"required,min=2,max=100"`
	City            string   `json:"city" validate:"required,max=50"`
	District        string   `json:"district" validate:"max=50"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0,lte=60"`
	EducationLevel  string   `json:"education_level" validate:"omitempty,educationlevel"`
	Skills          []string `json:"skills" validate:"max=30,dive,min=1,max=50"`
	Languages       []string `json:"languages" validate:"max=10,dive,min=1,max=50"`
	About           string   `json:"about" validate:"max=2000"`
	SalaryMin       int      `json:"salary_min" validate:"gte=0"`
	SalaryMax       int      `json:"salary_max" validate:"omitempty,gtefield=SalaryMin"`
	WorkType        string   `json:"work_type" validate:"omitempty,worktype"`
	EmploymentType  string   `json:"employment_type" validate:"omitempty,employmenttype"`
	MilitaryStatus  string   `json:"military_status" validate:"omitempty,militarystatus"`
	DrivingLicense  bool     `json:"driving_license"`
	CanTravel       bool     `json:"can_travel"`
	IsDisabled      bool     `json:"is_disabled"`
	IsRetired       bool     `json:"is_retired"`
	IsStudent       bool     `json:"is_student"`
	IsActive        *bool    `json:"is_active"`
	PhotoURL        string   `json:"photo_url" validate:"omitempty,url"`
	Email           string   `json:"email" validate:"omitempty,email"`
	Phone           string   `json:"phone" validate:"omitempty,trphone"`
}

type SavedCV struct {
	UserID    string    `json:"user_id"`
	CVID      string    `json:"cv_id"`
	CreatedAt time.Time `json:"created_at"`
}
