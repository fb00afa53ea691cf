package listing

import (
	"strings"

	"kartvizid/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter is the set of criteria a CV must satisfy. Zero values mean "any".
type Filter struct {
	Search         string `query:"search"`
	Profession     string `query:"profession"`
	City           string `query:"city"`
	District       string `query:"district"`
	MinExperience  int    `query:"min_experience"`
	MaxExperience  int    `query:"max_experience"`
	EducationLevel string `query:"education_level"`
	WorkType       string `query:"work_type"`
	EmploymentType string `query:"employment_type"`
	SalaryMin      int    `query:"salary_min"`
	SalaryMax      int    `query:"salary_max"`
	Skill          string `query:"skill"`
	Language       string `query:"language"`
	MilitaryStatus string `query:"military_status"`
	DrivingLicense bool   `query:"driving_license"`
	CanTravel      bool   `query:"can_travel"`
	IsDisabled     bool   `query:"is_disabled"`
	IsRetired      bool   `query:"is_retired"`
	IsStudent      bool   `query:"is_student"`
	HasPhoto       bool   `query:"has_photo"`
}

// IsEmpty reports whether no criterion is set
func (f Filter) IsEmpty() bool {
	return f == Filter{}
}

// Fold lowercases with Turkish rules and then merges dotless ı into i, so
// "İSTANBUL", "istanbul", "GIT" and "git" all compare equal. A Caser is
// stateful, so one is built per call.
func Fold(s string) string {
	lower := cases.Lower(language.Turkish).String(strings.TrimSpace(s))
	return strings.ReplaceAll(lower, "ı", "i")
}

func equalFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), needle)
}

// Match reports whether cv satisfies every criterion set on f
func Match(cv models.CV, f Filter) bool {
	if f.Search != "" && !matchesSearch(cv, Fold(f.Search)) {
		return false
	}
	if f.Profession != "" && !containsFold(cv.Profession, Fold(f.Profession)) {
		return false
	}
	if f.City != "" && !equalFold(cv.City, f.City) {
		return false
	}
	if f.District != "" && !equalFold(cv.District, f.District) {
		return false
	}
	if f.MinExperience > 0 && cv.ExperienceYears < f.MinExperience {
		return false
	}
	if f.MaxExperience > 0 && cv.ExperienceYears > f.MaxExperience {
		return false
	}
	if f.EducationLevel != "" && cv.EducationLevel != f.EducationLevel {
		return false
	}
	if f.WorkType != "" && cv.WorkType != f.WorkType {
		return false
	}
	if f.EmploymentType != "" && cv.EmploymentType != f.EmploymentType {
		return false
	}
	if !salaryOverlaps(cv, f.SalaryMin, f.SalaryMax) {
		return false
	}
	if f.Skill != "" && !containsAny(cv.Skills, Fold(f.Skill)) {
		return false
	}
	if f.Language != "" && !containsAny(cv.Languages, Fold(f.Language)) {
		return false
	}
	if f.MilitaryStatus != "" && cv.MilitaryStatus != f.MilitaryStatus {
		return false
	}
	if f.DrivingLicense && !cv.DrivingLicense {
		return false
	}
	if f.CanTravel && !cv.CanTravel {
		return false
	}
	if f.IsDisabled && !cv.IsDisabled {
		return false
	}
	if f.IsRetired && !cv.IsRetired {
		return false
	}
	if f.IsStudent && !cv.IsStudent {
		return false
	}
	if f.HasPhoto && cv.PhotoURL == "" {
		return false
	}
	return true
}

// Apply returns the CVs matching f, preserving order
func Apply(cvs []models.CV, f Filter) []models.CV {
	out := make([]models.CV, 0, len(cvs))
	for _, cv := range cvs {
		if Match(cv, f) {
			out = append(out, cv)
		}
	}
	return out
}

func matchesSearch(cv models.CV, term string) bool {
	if containsFold(cv.Name, term) || containsFold(cv.Profession, term) || containsFold(cv.About, term) {
		return true
	}
	return containsAny(cv.Skills, term)
}

func containsAny(values []string, term string) bool {
	for _, v := range values {
		if containsFold(v, term) {
			return true
		}
	}
	return false
}

// salaryOverlaps treats an unset bound on either side as open. A CV without
// any salary expectation matches every range.
func salaryOverlaps(cv models.CV, min, max int) bool {
	if min == 0 && max == 0 {
		return true
	}
	if cv.SalaryMin == 0 && cv.SalaryMax == 0 {
		return true
	}
	cvMax := cv.SalaryMax
	if cvMax == 0 {
		cvMax = cv.SalaryMin
	}
	if min > 0 && cvMax < min {
		return false
	}
	if max > 0 && cv.SalaryMin > max {
		return false
	}
	return true
}
