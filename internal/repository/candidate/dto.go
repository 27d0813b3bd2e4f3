package candidate

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	domcand "github.com/kailas-cloud/cvdex/internal/domain/candidate"
)

const tagSeparator = ","

// buildHashFields flattens a candidate Record into a map[string]string for
// HSET. Optional metadata fields are written only when present, so stored
// hashes never carry empty placeholders.
func buildHashFields(rec *domcand.Record) map[string]string {
	md := rec.Metadata()
	m := map[string]string{
		domcand.FieldFullText:   rec.FullText(),
		domcand.FieldVector:     vectorToBytes(rec.Vector()),
		domcand.FieldUploadDate: strconv.FormatInt(rec.UploadedAt().Unix(), 10),
	}
	if rec.Filename() != "" {
		m[domcand.FieldFilename] = rec.Filename()
	}
	if rec.StoredFile() != "" {
		m[domcand.FieldStoredFile] = rec.StoredFile()
	}
	if md.FullName != "" {
		m[domcand.FieldFullName] = md.FullName
	}
	if md.Email != "" {
		m[domcand.FieldEmail] = md.Email
	}
	if md.Phone != "" {
		m[domcand.FieldPhone] = md.Phone
	}
	if len(md.Skills) > 0 {
		m[domcand.FieldSkills] = strings.Join(md.Skills, tagSeparator)
	}
	if len(md.SkillsNormalized) > 0 {
		m[domcand.FieldSkillsNormalized] = strings.Join(md.SkillsNormalized, tagSeparator)
	}
	if md.YearsExperience != nil {
		m[domcand.FieldYearsExperience] = strconv.Itoa(*md.YearsExperience)
	}
	if md.Education != "" {
		m[domcand.FieldEducation] = md.Education
	}
	if md.Location != "" {
		m[domcand.FieldLocation] = md.Location
	}
	if md.LocationNormalized != "" {
		m[domcand.FieldLocationNormalized] = md.LocationNormalized
	}
	return m
}

// parseHashFields hydrates a candidate Record from a stored hash. An entry
// without CV text or a decodable vector is malformed and rejected.
func parseHashFields(id string, m map[string]string) (domcand.Record, error) {
	fullText := m[domcand.FieldFullText]
	if fullText == "" {
		return domcand.Record{}, fmt.Errorf("missing %s field", domcand.FieldFullText)
	}

	var vector []float32
	if raw, ok := m[domcand.FieldVector]; ok {
		vector = bytesToVector(raw)
		if vector == nil {
			return domcand.Record{}, fmt.Errorf("undecodable %s field", domcand.FieldVector)
		}
	}

	var uploadedAt time.Time
	if raw := m[domcand.FieldUploadDate]; raw != "" {
		if sec, err := strconv.ParseInt(raw, 10, 64); err == nil {
			uploadedAt = time.Unix(sec, 0).UTC()
		}
	}

	md := domcand.Metadata{
		FullName:           m[domcand.FieldFullName],
		Email:              m[domcand.FieldEmail],
		Phone:              m[domcand.FieldPhone],
		Skills:             splitTags(m[domcand.FieldSkills]),
		SkillsNormalized:   splitTags(m[domcand.FieldSkillsNormalized]),
		Education:          m[domcand.FieldEducation],
		Location:           m[domcand.FieldLocation],
		LocationNormalized: m[domcand.FieldLocationNormalized],
	}
	if raw := m[domcand.FieldYearsExperience]; raw != "" {
		if years, err := strconv.Atoi(raw); err == nil {
			md.YearsExperience = &years
		}
	}

	rec := domcand.Reconstruct(
		id, fullText, vector,
		m[domcand.FieldFilename], m[domcand.FieldStoredFile],
		uploadedAt, md,
	)
	return rec, nil
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, tagSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// vectorToBytes serializes []float32 to a binary string (4 bytes per float, little-endian).
func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}

// bytesToVector deserializes a binary string back to []float32.
func bytesToVector(s string) []float32 {
	b := []byte(s)
	if len(b) == 0 || len(b)%4 != 0 {
		return nil
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
