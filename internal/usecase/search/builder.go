package search

import (
	"github.com/kailas-cloud/cvdex/internal/domain/candidate"
	"github.com/kailas-cloud/cvdex/internal/domain/search/filter"
	"github.com/kailas-cloud/cvdex/internal/domain/search/intent"
	"github.com/kailas-cloud/cvdex/internal/domain/search/request"
	"github.com/kailas-cloud/cvdex/internal/extract"
	"github.com/kailas-cloud/cvdex/internal/taxonomy"
)

// buildIntent extracts terms from the query text and merges them with the
// request's explicit filters. Explicit location and education win over
// extracted ones; skills are the union of both, deduplicated.
func buildIntent(req *request.Request) intent.Intent {
	skills := extract.Skills(req.Query())
	for _, s := range req.Skills() {
		skills = append(skills, taxonomy.Normalize(s))
	}

	location := req.Location()
	if location == "" {
		location = extract.Location(req.Query())
	}

	education := req.Education()
	if education == "" {
		education = extract.Education(req.Query())
	}

	return intent.New(skills, location, education, req.MinExperience(), req.MaxExperience(), req.Sort())
}

// buildFilter translates an intent into a pre-filter expression for the
// vector index. Location and education become exact tag matches, experience
// bounds a numeric range.
//
// A single skill yields one must condition; multiple skills become a
// disjunction of single-skill conditions so each can match independently.
// Returns an empty expression when no dimension is active, letting the
// index skip pre-filtering entirely.
func buildFilter(it *intent.Intent) (filter.Expression, error) {
	var must, should []filter.Condition

	if it.HasLocation() {
		cond, err := filter.NewMatch(candidate.FieldLocationNormalized, it.LocationNormalized())
		if err != nil {
			return filter.Expression{}, err
		}
		must = append(must, cond)
	}

	if it.HasEducation() {
		cond, err := filter.NewMatch(candidate.FieldEducation, it.Education())
		if err != nil {
			return filter.Expression{}, err
		}
		must = append(must, cond)
	}

	if rangeCond, ok, err := buildExperienceRange(it); err != nil {
		return filter.Expression{}, err
	} else if ok {
		must = append(must, rangeCond)
	}

	if skills := it.Skills(); len(skills) == 1 {
		cond, err := filter.NewOneOf(candidate.FieldSkillsNormalized, skills)
		if err != nil {
			return filter.Expression{}, err
		}
		must = append(must, cond)
	} else if len(skills) > 1 {
		for _, s := range skills {
			cond, err := filter.NewOneOf(candidate.FieldSkillsNormalized, []string{s})
			if err != nil {
				return filter.Expression{}, err
			}
			should = append(should, cond)
		}
	}

	return filter.NewExpression(must, should, nil)
}

func buildExperienceRange(it *intent.Intent) (filter.Condition, bool, error) {
	minExp, maxExp := it.MinExperience(), it.MaxExperience()
	if minExp == nil && maxExp == nil {
		return filter.Condition{}, false, nil
	}

	var gte, lte *float64
	if minExp != nil {
		v := float64(*minExp)
		gte = &v
	}
	if maxExp != nil {
		v := float64(*maxExp)
		lte = &v
	}

	r, err := filter.NewRangeFilter(nil, gte, nil, lte)
	if err != nil {
		return filter.Condition{}, false, err
	}
	cond, err := filter.NewRange(candidate.FieldYearsExperience, r)
	if err != nil {
		return filter.Condition{}, false, err
	}
	return cond, true, nil
}
