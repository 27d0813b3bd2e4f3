package candidate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cvdex/internal/db"
	"github.com/kailas-cloud/cvdex/internal/domain"
	domcand "github.com/kailas-cloud/cvdex/internal/domain/candidate"
	"github.com/kailas-cloud/cvdex/internal/domain/search/filter"
)

const (
	keyPrefix = domain.KeyPrefix + "cand:"
	indexName = domain.KeyPrefix + "cand:idx"
)

// returnFields lists every stored hash field a query should bring back.
var returnFields = []string{
	domcand.FieldFullText,
	domcand.FieldFilename,
	domcand.FieldStoredFile,
	domcand.FieldUploadDate,
	domcand.FieldFullName,
	domcand.FieldEmail,
	domcand.FieldPhone,
	domcand.FieldSkills,
	domcand.FieldSkillsNormalized,
	domcand.FieldYearsExperience,
	domcand.FieldEducation,
	domcand.FieldLocation,
	domcand.FieldLocationNormalized,
}

// store is the consumer interface for candidate persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	SearchList(ctx context.Context, index, query string, offset, limit int, fields []string) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo implements candidate persistence over a RediSearch-backed hash store.
type Repo struct {
	store  store
	logger *zap.Logger
}

// New creates a candidate repository.
func New(s store, logger *zap.Logger) *Repo {
	return &Repo{store: s, logger: logger}
}

// storeErr types a store failure as an upstream outage so callers can
// tell it apart from domain conditions like not-found.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrUpstreamUnavailable, err)
}

// EnsureIndex creates the candidate FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context, vectorDim int) error {
	exists, err := r.store.IndexExists(ctx, indexName)
	if err != nil {
		return storeErr("check index", err)
	}
	if exists {
		return nil
	}

	def, err := db.NewIndex(indexName).
		Prefix(keyPrefix).
		TagWithOpts(domcand.FieldSkills, tagSeparator, false).
		TagWithOpts(domcand.FieldSkillsNormalized, tagSeparator, false).
		// raw location and education values contain commas, so the
		// default TAG separator would split them into partial tags
		TagWithOpts(domcand.FieldLocation, "|", false).
		Tag(domcand.FieldLocationNormalized).
		TagWithOpts(domcand.FieldEducation, "|", false).
		Numeric(domcand.FieldYearsExperience).
		Numeric(domcand.FieldUploadDate).
		Text(domcand.FieldFullText).
		VectorHNSW(domcand.FieldVector, vectorDim, db.DistanceCosine, 16, 200).
		Build()
	if err != nil {
		return fmt.Errorf("build index definition: %w", err)
	}

	if err := r.store.CreateIndex(ctx, def); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return storeErr("create index", err)
	}
	return nil
}

// Upsert stores a candidate record as a hash under the index prefix.
func (r *Repo) Upsert(ctx context.Context, rec *domcand.Record) error {
	key := candKey(rec.ID())
	if err := r.store.HSet(ctx, key, buildHashFields(rec)); err != nil {
		return storeErr("hset "+key, err)
	}
	return nil
}

// Get returns a candidate by ID.
func (r *Repo) Get(ctx context.Context, id string) (domcand.Record, error) {
	key := candKey(id)

	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domcand.Record{}, storeErr("hgetall "+key, err)
	}
	if len(m) == 0 {
		return domcand.Record{}, domain.ErrCandidateNotFound
	}

	rec, err := parseHashFields(id, m)
	if err != nil {
		return domcand.Record{}, fmt.Errorf("%w: %s: %w", domain.ErrMalformedCandidate, id, err)
	}
	return rec, nil
}

// Delete removes a candidate.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := candKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return storeErr("check exists "+key, err)
	}
	if !exists {
		return domain.ErrCandidateNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return storeErr("del "+key, err)
	}
	return nil
}

// List returns candidates with offset pagination plus the total count.
// Malformed stored entries are logged and skipped.
func (r *Repo) List(ctx context.Context, offset, limit int) ([]domcand.Record, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	result, err := r.store.SearchList(ctx, indexName, "*", offset, limit, returnFields)
	if err != nil {
		return nil, 0, storeErr("search list", err)
	}

	total, err := r.store.SearchCount(ctx, indexName, "*")
	if err != nil {
		return nil, 0, storeErr("search count", err)
	}

	records := make([]domcand.Record, 0, len(result.Entries))
	for _, entry := range result.Entries {
		rec, err := parseHashFields(candID(entry.Key), entry.Fields)
		if err != nil {
			r.logger.Warn("Skipping malformed candidate entry",
				zap.String("key", entry.Key), zap.Error(err))
			continue
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// Query runs a KNN vector search and maps hits into domain records.
// Malformed stored entries are logged and skipped rather than failing the search.
func (r *Repo) Query(ctx context.Context, vector []float32, filters filter.Expression, k int) ([]domcand.Hit, error) {
	fields := make([]string, 0, len(returnFields)+1)
	fields = append(fields, returnFields...)
	fields = append(fields, "__vector_score")

	result, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    indexName,
		Filters:      filters,
		Vector:       vector,
		K:            k,
		ReturnFields: fields,
	})
	if err != nil {
		return nil, storeErr("knn search", err)
	}

	hits := make([]domcand.Hit, 0, len(result.Entries))
	for _, entry := range result.Entries {
		rec, err := parseHashFields(candID(entry.Key), entry.Fields)
		if err != nil {
			r.logger.Warn("Skipping malformed candidate entry",
				zap.String("key", entry.Key), zap.Error(err))
			continue
		}
		hits = append(hits, domcand.Hit{Record: rec, Score: entry.Score})
	}

	return hits, nil
}

func candKey(id string) string {
	return keyPrefix + id
}

func candID(key string) string {
	return strings.TrimPrefix(key, keyPrefix)
}
