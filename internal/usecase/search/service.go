package search

import (
	"context"
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cvdex/internal/domain"
	domcand "github.com/kailas-cloud/cvdex/internal/domain/candidate"
	"github.com/kailas-cloud/cvdex/internal/domain/search/filter"
	"github.com/kailas-cloud/cvdex/internal/domain/search/intent"
	"github.com/kailas-cloud/cvdex/internal/domain/search/request"
	"github.com/kailas-cloud/cvdex/internal/domain/search/result"
)

// Config holds the retrieval tuning knobs: candidate pool sizes and
// similarity-score floors for the strict and relaxed rounds.
type Config struct {
	MinScore         float64
	FallbackMinScore float64
	PoolSize         int
	FallbackPoolSize int
}

// DefaultConfig returns the standard retrieval tuning.
func DefaultConfig() Config {
	return Config{
		MinScore:         0.3,
		FallbackMinScore: 0.2,
		PoolSize:         20,
		FallbackPoolSize: 30,
	}
}

// Service runs the candidate retrieval and filtering pipeline.
type Service struct {
	index         Index
	embed         Embedder
	cfg           Config
	fallbackTotal prometheus.Counter
	logger        *zap.Logger
}

// New creates a search service.
// fallbackTotal counts relaxed retrieval rounds and may be nil.
func New(index Index, embed Embedder, cfg Config, fallbackTotal prometheus.Counter, logger *zap.Logger) *Service {
	return &Service{index: index, embed: embed, cfg: cfg, fallbackTotal: fallbackTotal, logger: logger}
}

// Search retrieves, filters, and ranks candidates for a query.
//
// The strict round pre-filters in the index, post-filters the pool with the
// skill/location/education passes, then applies the score floor. When that
// leaves nothing and at least one filter dimension was active, a relaxed
// round retries with a larger unfiltered pool and a lower floor: the skill
// pass degrades to full-text matching, while location and education passes
// are never relaxed. A wrong-city candidate is worse than no candidate.
func (s *Service) Search(ctx context.Context, req *request.Request) ([]result.Result, error) {
	embResult, err := s.embed.Embed(ctx, domain.TruncateForEmbedding(req.Query()))
	if err != nil {
		return nil, fmt.Errorf("vectorize query: %w", err)
	}

	it := buildIntent(req)

	filters, err := buildFilter(&it)
	if err != nil {
		return nil, fmt.Errorf("build filter: %w", err)
	}

	hits, err := s.index.Query(ctx, embResult.Embedding, filters, s.cfg.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}

	matched := applyPasses(hits, &it, false)
	matched = scoreFloor(matched, s.cfg.MinScore)

	if len(matched) == 0 && !it.IsGeneral() {
		if s.fallbackTotal != nil {
			s.fallbackTotal.Inc()
		}
		s.logger.Debug("No strict matches, relaxing retrieval",
			zap.Strings("skills", it.Skills()),
			zap.String("location", it.LocationNormalized()),
			zap.String("education", it.Education()))

		fallback, err := s.index.Query(ctx, embResult.Embedding, filter.Expression{}, s.cfg.FallbackPoolSize)
		if err != nil {
			return nil, fmt.Errorf("fallback query: %w", err)
		}
		matched = scoreFloor(fallback, s.cfg.FallbackMinScore)
		matched = applyPasses(matched, &it, true)
	}

	applySort(matched, it.Sort())

	return project(matched), nil
}

// applyPasses removes candidates failing any active filter dimension. Passes
// only ever remove, never add. In fallback mode the skill pass runs text-only
// and the education pass drops its loose partial-word branch.
func applyPasses(hits []domcand.Hit, it *intent.Intent, fallback bool) []domcand.Hit {
	out := make([]domcand.Hit, 0, len(hits))
	for i := range hits {
		rec := &hits[i].Record
		if it.HasSkills() && !skillPass(rec, it.Skills(), fallback) {
			continue
		}
		if it.HasLocation() && !locationPass(rec, it.Location(), it.LocationNormalized()) {
			continue
		}
		if it.HasEducation() && !educationPass(rec, it.Education(), !fallback) {
			continue
		}
		out = append(out, hits[i])
	}
	return out
}

func scoreFloor(hits []domcand.Hit, floor float64) []domcand.Hit {
	out := make([]domcand.Hit, 0, len(hits))
	for _, h := range hits {
		if h.Score >= floor {
			out = append(out, h)
		}
	}
	return out
}

// applySort reorders hits in place for a non-default sort. The default order
// is the index's descending similarity, preserved as-is. Ties keep the order
// of the prior stage.
func applySort(hits []domcand.Hit, spec *intent.Sort) {
	if spec == nil || spec.IsDefault() {
		return
	}
	asc := spec.Direction() == intent.Asc

	switch spec.Field() {
	case intent.SortExperience:
		sort.SliceStable(hits, func(i, j int) bool {
			a, b := experienceOf(&hits[i].Record), experienceOf(&hits[j].Record)
			if asc {
				return a < b
			}
			return a > b
		})
	case intent.SortUploadDate:
		sort.SliceStable(hits, func(i, j int) bool {
			a, b := hits[i].Record.UploadedAt(), hits[j].Record.UploadedAt()
			if asc {
				return a.Before(b)
			}
			return a.After(b)
		})
	}
}

func experienceOf(rec *domcand.Record) int {
	if y := rec.Metadata().YearsExperience; y != nil {
		return *y
	}
	return 0
}

// project maps surviving hits to result records carrying only the metadata
// fields actually present on the stored candidate.
func project(hits []domcand.Hit) []result.Result {
	results := make([]result.Result, 0, len(hits))
	for i := range hits {
		rec := &hits[i].Record
		md := rec.Metadata()
		results = append(results, result.New(
			rec.ID(), rec.Filename(), hits[i].Score, rec.UploadedAt(),
			result.Metadata{
				FullName:        md.FullName,
				Email:           md.Email,
				Phone:           md.Phone,
				Skills:          md.Skills,
				YearsExperience: md.YearsExperience,
				Education:       md.Education,
				Location:        md.Location,
			},
		))
	}
	return results
}
