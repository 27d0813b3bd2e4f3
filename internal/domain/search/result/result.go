package result

import "time"

// Metadata carries the candidate fields exposed on a search hit. Pointer and
// slice fields stay nil when the stored record never had a value, so encoders
// can omit them instead of inventing empty strings.
type Metadata struct {
	FullName        string
	Email           string
	Phone           string
	Skills          []string
	YearsExperience *int
	Education       string
	Location        string
}

// Result is a single ranked search hit.
type Result struct {
	id         string
	filename   string
	score      float64
	uploadDate time.Time
	metadata   Metadata
}

// New creates a Result.
func New(id, filename string, score float64, uploadDate time.Time, md Metadata) Result {
	return Result{
		id:         id,
		filename:   filename,
		score:      score,
		uploadDate: uploadDate,
		metadata:   md,
	}
}

// ID returns the candidate identifier.
func (r *Result) ID() string { return r.id }

// Filename returns the source CV filename ("" when unknown).
func (r *Result) Filename() string { return r.filename }

// Score returns the similarity score in [0, 1], higher is closer.
func (r *Result) Score() float64 { return r.score }

// UploadDate returns when the CV was stored (zero when unknown).
func (r *Result) UploadDate() time.Time { return r.uploadDate }

// Metadata returns the candidate metadata present on the stored record.
func (r *Result) Metadata() Metadata { return r.metadata }
