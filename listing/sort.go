package listing

import (
	"sort"

	"kartvizid/models"
)

type SortKey string

const (
	SortNewest         SortKey = "newest"
	SortOldest         SortKey = "oldest"
	SortExperienceDesc SortKey = "experience_desc"
	SortExperienceAsc  SortKey = "experience_asc"
	SortSalaryDesc     SortKey = "salary_desc"
	SortSalaryAsc      SortKey = "salary_asc"
	SortViewsDesc      SortKey = "views_desc"
	SortNameAsc        SortKey = "name_asc"
)

// ParseSortKey maps a query value to a SortKey, defaulting to newest
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortOldest, SortExperienceDesc, SortExperienceAsc,
		SortSalaryDesc, SortSalaryAsc, SortViewsDesc, SortNameAsc:
		return k
	default:
		return SortNewest
	}
}

// Sort orders cvs in place by key. Ties fall back to newest first.
func Sort(cvs []models.CV, key SortKey) {
	less := lessFunc(key)
	sort.SliceStable(cvs, func(i, j int) bool {
		if l, decided := less(cvs[i], cvs[j]); decided {
			return l
		}
		return cvs[i].CreatedAt.After(cvs[j].CreatedAt)
	})
}

// lessFunc returns a comparator; decided is false on a tie
func lessFunc(key SortKey) func(a, b models.CV) (less bool, decided bool) {
	switch key {
	case SortOldest:
		return func(a, b models.CV) (bool, bool) {
			if a.CreatedAt.Equal(b.CreatedAt) {
				return false, false
			}
			return a.CreatedAt.Before(b.CreatedAt), true
		}
	case SortExperienceDesc:
		return intDesc(func(cv models.CV) int { return cv.ExperienceYears })
	case SortExperienceAsc:
		return intAsc(func(cv models.CV) int { return cv.ExperienceYears })
	case SortSalaryDesc:
		return intDesc(salaryOf)
	case SortSalaryAsc:
		return intAsc(salaryOf)
	case SortViewsDesc:
		return intDesc(func(cv models.CV) int { return cv.Views })
	case SortNameAsc:
		return func(a, b models.CV) (bool, bool) {
			an, bn := Fold(a.Name), Fold(b.Name)
			if an == bn {
				return false, false
			}
			return an < bn, true
		}
	default:
		return func(a, b models.CV) (bool, bool) { return false, false }
	}
}

// salaryOf is the lower bound of the expectation, or the upper one if only that is set
func salaryOf(cv models.CV) int {
	if cv.SalaryMin > 0 {
		return cv.SalaryMin
	}
	return cv.SalaryMax
}

func intDesc(field func(models.CV) int) func(a, b models.CV) (bool, bool) {
	return func(a, b models.CV) (bool, bool) {
		av, bv := field(a), field(b)
		if av == bv {
			return false, false
		}
		return av > bv, true
	}
}

func intAsc(field func(models.CV) int) func(a, b models.CV) (bool, bool) {
	return func(a, b models.CV) (bool, bool) {
		av, bv := field(a), field(b)
		if av == bv {
			return false, false
		}
		return av < bv, true
	}
}
