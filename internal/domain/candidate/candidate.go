package candidate

import (
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/cvdex/internal/domain"
)

// Storage field names of a candidate hash. The repository and the index
// schema must agree on these.
const (
	FieldFullText           = "__content"
	FieldVector             = "vector"
	FieldFilename           = "filename"
	FieldStoredFile         = "stored_file"
	FieldUploadDate         = "upload_date"
	FieldFullName           = "full_name"
	FieldEmail              = "email"
	FieldPhone              = "phone"
	FieldSkills             = "skills"
	FieldSkillsNormalized   = "skills_normalized"
	FieldYearsExperience    = "years_experience"
	FieldEducation          = "education"
	FieldLocation           = "location"
	FieldLocationNormalized = "location_normalized"
)

// Metadata is the structured, filterable slice of a candidate record. Raw
// fields keep whatever the CV parser produced; normalized fields are the
// canonical forms filters match against.
type Metadata struct {
	FullName           string
	Email              string
	Phone              string
	Skills             []string
	SkillsNormalized   []string
	YearsExperience    *int
	Education          string
	Location           string
	LocationNormalized string
}

// Record is an indexed candidate CV.
type Record struct {
	id         string
	fullText   string
	vector     []float32
	filename   string
	storedFile string
	uploadedAt time.Time
	metadata   Metadata
}

// New validates and creates a Record ready for indexing.
func New(id, fullText string, vector []float32, filename, storedFile string, uploadedAt time.Time, md Metadata) (Record, error) {
	if strings.TrimSpace(id) == "" {
		return Record{}, fmt.Errorf("%w: empty candidate id", domain.ErrInvalidRequest)
	}
	if strings.TrimSpace(fullText) == "" {
		return Record{}, fmt.Errorf("%w: empty candidate text", domain.ErrInvalidRequest)
	}
	if len(vector) == 0 {
		return Record{}, fmt.Errorf("%w: empty embedding vector", domain.ErrInvalidRequest)
	}
	if md.YearsExperience != nil && *md.YearsExperience < 0 {
		return Record{}, fmt.Errorf("%w: negative years of experience", domain.ErrInvalidRequest)
	}
	if uploadedAt.IsZero() {
		uploadedAt = time.Now().UTC()
	}
	return Record{
		id:         id,
		fullText:   fullText,
		vector:     vector,
		filename:   filename,
		storedFile: storedFile,
		uploadedAt: uploadedAt,
		metadata:   md,
	}, nil
}

// Reconstruct hydrates a Record from storage without re-validating. The
// repository uses it when mapping hash entries back into the domain.
func Reconstruct(id, fullText string, vector []float32, filename, storedFile string, uploadedAt time.Time, md Metadata) Record {
	return Record{
		id:         id,
		fullText:   fullText,
		vector:     vector,
		filename:   filename,
		storedFile: storedFile,
		uploadedAt: uploadedAt,
		metadata:   md,
	}
}

// ID returns the candidate identifier.
func (r *Record) ID() string { return r.id }

// FullText returns the extracted CV text.
func (r *Record) FullText() string { return r.fullText }

// Vector returns the embedding vector.
func (r *Record) Vector() []float32 { return r.vector }

// Filename returns the original upload filename.
func (r *Record) Filename() string { return r.filename }

// StoredFile returns the storage path of the original file.
func (r *Record) StoredFile() string { return r.storedFile }

// UploadedAt returns when the CV was indexed.
func (r *Record) UploadedAt() time.Time { return r.uploadedAt }

// Metadata returns the structured candidate metadata.
func (r *Record) Metadata() Metadata { return r.metadata }

// Hit pairs a Record with its similarity score for one query.
type Hit struct {
	Record Record
	Score  float64
}
