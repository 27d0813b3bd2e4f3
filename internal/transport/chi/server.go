package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cvdex/internal/domain"
	domcand "github.com/kailas-cloud/cvdex/internal/domain/candidate"
	"github.com/kailas-cloud/cvdex/internal/domain/search/request"
	"github.com/kailas-cloud/cvdex/internal/domain/search/result"
	candidateuc "github.com/kailas-cloud/cvdex/internal/usecase/candidate"
	healthuc "github.com/kailas-cloud/cvdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/cvdex/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the candidate search API over HTTP.
type Server struct {
	candidates    *candidateuc.Service
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	candidates *candidateuc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		candidates: candidates,
		search:     search,
		health:     health,
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrCandidateNotFound, http.StatusNotFound, CodeCandidateNotFound),
		sentinelHandler(domain.ErrVectorDimMismatch, http.StatusBadGateway, CodeEmbeddingProviderError),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, CodeEmbeddingProviderError),
		sentinelHandler(domain.ErrUpstreamUnavailable, http.StatusBadGateway, CodeUpstreamUnavailable),
	}
	return s
}

// Routes registers all API handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/search", s.SearchCandidates)
	r.Post("/candidates", s.StoreCandidate)
	r.Get("/candidates", s.ListCandidates)
	r.Get("/candidates/{id}", s.GetCandidate)
	r.Delete("/candidates/{id}", s.DeleteCandidate)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchCandidates handles POST /search.
func (s *Server) SearchCandidates(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	searchReq, err := searchRequestFromDTO(req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results, err := s.search.Search(r.Context(), &searchReq)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]SearchResultItem, len(results))
	for i := range results {
		items[i] = searchResultToDTO(&results[i])
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Items: items,
		Total: len(items),
	})
}

// StoreCandidate handles POST /candidates.
func (s *Server) StoreCandidate(w http.ResponseWriter, r *http.Request) {
	var req StoreCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := s.candidates.Store(r.Context(), req.FullText, req.Filename, req.StoredFile, rawMetadataFromDTO(req.Metadata))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/candidates/"+id)
	writeJSON(w, http.StatusCreated, StoreCandidateResponse{ID: id})
}

// GetCandidate handles GET /candidates/{id}.
func (s *Server) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := s.candidates.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, candidateToDTO(&rec))
}

// DeleteCandidate handles DELETE /candidates/{id}.
func (s *Server) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.candidates.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCandidates handles GET /candidates.
func (s *Server) ListCandidates(w http.ResponseWriter, r *http.Request) {
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "offset must be a non-negative integer")
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "limit must be a non-negative integer")
		return
	}

	recs, total, err := s.candidates.List(r.Context(), offset, limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]CandidateResponse, len(recs))
	for i := range recs {
		items[i] = candidateToDTO(&recs[i])
	}

	writeJSON(w, http.StatusOK, CandidateListResponse{
		Items:  items,
		Total:  total,
		Offset: offset,
		Limit:  len(items),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New("not a non-negative integer")
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyQuery,
		domain.ErrInvalidRequest,
		domain.ErrCandidateNotFound,
		domain.ErrMalformedCandidate,
		domain.ErrVectorDimMismatch,
		domain.ErrEmbeddingProviderError,
		domain.ErrUpstreamUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

func searchRequestFromDTO(req SearchRequest) (request.Request, error) {
	var f request.Filters
	if req.Filters != nil {
		f.Skills = req.Filters.Skills
		f.Location = req.Filters.Location
		f.Education = req.Filters.Education
		f.MinExperience = req.Filters.MinExperience
		f.MaxExperience = req.Filters.MaxExperience
	}

	if req.Sort != nil {
		sort, err := request.ParseSort(req.Sort.Field, req.Sort.Direction)
		if err != nil {
			return request.Request{}, err
		}
		f.Sort = sort
	}

	return request.New(req.Query, f)
}

func rawMetadataFromDTO(md RawCandidateMetadata) candidateuc.RawMetadata {
	return candidateuc.RawMetadata{
		FullName:        md.FullName,
		Email:           md.Email,
		Phone:           md.Phone,
		Skills:          md.Skills,
		YearsExperience: md.YearsExperience,
		Education:       md.Education,
		Location:        md.Location,
	}
}

func searchResultToDTO(r *result.Result) SearchResultItem {
	md := r.Metadata()
	item := SearchResultItem{
		ID:       r.ID(),
		Filename: r.Filename(),
		Score:    r.Score(),
		Metadata: CandidateMetadata{
			FullName:        md.FullName,
			Email:           md.Email,
			Phone:           md.Phone,
			Skills:          md.Skills,
			YearsExperience: md.YearsExperience,
			Education:       md.Education,
			Location:        md.Location,
		},
	}
	if !r.UploadDate().IsZero() {
		t := r.UploadDate()
		item.UploadDate = &t
	}
	return item
}

func candidateToDTO(rec *domcand.Record) CandidateResponse {
	md := rec.Metadata()
	return CandidateResponse{
		ID:         rec.ID(),
		Filename:   rec.Filename(),
		StoredFile: rec.StoredFile(),
		UploadDate: rec.UploadedAt(),
		Metadata: CandidateMetadata{
			FullName:        md.FullName,
			Email:           md.Email,
			Phone:           md.Phone,
			Skills:          md.Skills,
			YearsExperience: md.YearsExperience,
			Education:       md.Education,
			Location:        md.Location,
		},
	}
}
