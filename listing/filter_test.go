package listing

import (
	"testing"
	"time"

	"kartvizid/models"

	"github.com/stretchr/testify/assert"
)

func sampleCVs() []models.CV {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.CV{
		{
			ID: "cv1", Name: "Ayşe Yılmaz", Profession: "Yazılım Geliştirici", City: "İstanbul",
			District: "Kadıköy", ExperienceYears: 5, EducationLevel: "bachelor",
			Skills: []string{"Go", "PostgreSQL"}, Languages: []string{"İngilizce"},
			SalaryMin: 60000, SalaryMax: 80000, WorkType: "remote", EmploymentType: "full_time",
			DrivingLicense: true, PhotoURL: "https://cdn.example.com/a.jpg", Views: 10,
			CreatedAt: base,
		},
		{
			ID: "cv2", Name: "Mehmet Demir", Profession: "Muhasebeci", City: "Ankara",
			ExperienceYears: 12, EducationLevel: "master", Skills: []string{"Excel"},
			SalaryMin: 40000, WorkType: "onsite", EmploymentType: "full_time",
			MilitaryStatus: "completed", CanTravel: true, Views: 3,
			CreatedAt: base.Add(24 * time.Hour),
		},
		{
			ID: "cv3", Name: "Zeynep Kaya", Profession: "Stajyer Yazılımcı", City: "izmir",
			ExperienceYears: 0, EducationLevel: "high_school", Skills: []string{"React"},
			WorkType: "hybrid", EmploymentType: "internship", IsStudent: true, Views: 7,
			CreatedAt: base.Add(48 * time.Hour),
		},
	}
}

func ids(cvs []models.CV) []string {
	out := make([]string, 0, len(cvs))
	for _, cv := range cvs {
		out = append(out, cv.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{name: "Empty filter keeps everything", filter: Filter{}, expected: []string{"cv1", "cv2", "cv3"}},
		{name: "City must match", filter: Filter{City: "Ankara"}, expected: []string{"cv2"}},
		{name: "City ignores Turkish case", filter: Filter{City: "İZMİR"}, expected: []string{"cv3"}},
		{name: "City mismatch excludes", filter: Filter{City: "Bursa"}, expected: []string{}},
		{name: "District", filter: Filter{District: "kadıköy"}, expected: []string{"cv1"}},
		{name: "Search in name", filter: Filter{Search: "ayşe"}, expected: []string{"cv1"}},
		{name: "Search in skills", filter: Filter{Search: "react"}, expected: []string{"cv3"}},
		{name: "Profession substring", filter: Filter{Profession: "yazılım"}, expected: []string{"cv1", "cv3"}},
		{name: "Min experience", filter: Filter{MinExperience: 5}, expected: []string{"cv1", "cv2"}},
		{name: "Max experience", filter: Filter{MaxExperience: 5}, expected: []string{"cv1", "cv3"}},
		{name: "Education level", filter: Filter{EducationLevel: "master"}, expected: []string{"cv2"}},
		{name: "Work type", filter: Filter{WorkType: "hybrid"}, expected: []string{"cv3"}},
		{name: "Employment type", filter: Filter{EmploymentType: "full_time"}, expected: []string{"cv1", "cv2"}},
		{name: "Salary floor above expectation", filter: Filter{SalaryMin: 50000}, expected: []string{"cv1", "cv3"}},
		{name: "Salary ceiling below expectation", filter: Filter{SalaryMax: 50000}, expected: []string{"cv2", "cv3"}},
		{name: "Skill", filter: Filter{Skill: "go"}, expected: []string{"cv1"}},
		{name: "Language", filter: Filter{Language: "ingilizce"}, expected: []string{"cv1"}},
		{name: "Military status", filter: Filter{MilitaryStatus: "completed"}, expected: []string{"cv2"}},
		{name: "Driving license", filter: Filter{DrivingLicense: true}, expected: []string{"cv1"}},
		{name: "Can travel", filter: Filter{CanTravel: true}, expected: []string{"cv2"}},
		{name: "Student", filter: Filter{IsStudent: true}, expected: []string{"cv3"}},
		{name: "Disabled", filter: Filter{IsDisabled: true}, expected: []string{}},
		{name: "Retired", filter: Filter{IsRetired: true}, expected: []string{}},
		{name: "Has photo", filter: Filter{HasPhoto: true}, expected: []string{"cv1"}},
		{
			name:     "Criteria combine with AND",
			filter:   Filter{EmploymentType: "full_time", City: "İstanbul", MinExperience: 3},
			expected: []string{"cv1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(sampleCVs(), tt.filter)
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestMatch_DottedAndDotlessI(t *testing.T) {
	cv := models.CV{Name: "IŞIK Yılmaz", City: "İstanbul", Skills: []string{"GIT", "LINUX", "CI/CD"}}

	tests := []struct {
		name   string
		filter Filter
	}{
		{name: "Lowercase skill matches uppercase", filter: Filter{Skill: "git"}},
		{name: "Search for lowercase skill", filter: Filter{Search: "linux"}},
		{name: "Search with slash", filter: Filter{Search: "ci/cd"}},
		{name: "Dotless query matches uppercase name", filter: Filter{Search: "ışık"}},
		{name: "Dotted city matches plain query", filter: Filter{City: "istanbul"}},
		{name: "Uppercase ASCII city query", filter: Filter{City: "ISTANBUL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Match(cv, tt.filter))
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, Fold("git"), Fold("GIT"))
	assert.Equal(t, Fold("İzmir"), Fold("izmir"))
	assert.Equal(t, Fold("ılık"), Fold("ILIK"))
	assert.Equal(t, "ayşe", Fold("  AYŞE "))
}

func TestFilter_IsEmpty(t *testing.T) {
	assert.True(t, Filter{}.IsEmpty())
	assert.False(t, Filter{City: "Ankara"}.IsEmpty())
	assert.False(t, Filter{HasPhoto: true}.IsEmpty())
}
