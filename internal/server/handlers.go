package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vanshika/costar/backend/internal/service"
)

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger  *slog.Logger
	service *service.PathService
	metrics *Metrics
}

// NewAPIHandlers constructs an APIHandlers instance. Metrics may be nil when
// collection is disabled.
func NewAPIHandlers(logger *slog.Logger, svc *service.PathService, metrics *Metrics) *APIHandlers {
	return &APIHandlers{
		logger:  logger,
		service: svc,
		metrics: metrics,
	}
}

func (h *APIHandlers) handlePeople(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	query := r.URL.Query()
	result, err := h.service.ListPeople(r.Context(), service.ListPeopleParams{
		Page:     parseInt(query.Get("page"), 1),
		PageSize: parseInt(query.Get("pageSize"), 50),
		Search:   query.Get("search"),
	})
	if err != nil {
		h.logger.Error("failed to list people", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list people")
		return
	}

	resp := listPeopleResponse{
		Items: []personResponse{},
		Pagination: paginationResponse{
			Page:       result.Pagination.Page,
			PageSize:   result.Pagination.PageSize,
			TotalItems: result.Pagination.TotalItems,
			TotalPages: result.Pagination.TotalPages,
		},
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, personResponse{
			PersonID:   item.ID,
			Name:       item.Name,
			BirthYear:  item.BirthYear,
			MovieCount: item.MovieCount,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) handleMovies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	query := r.URL.Query()
	result, err := h.service.ListMovies(r.Context(), service.ListMoviesParams{
		Page:     parseInt(query.Get("page"), 1),
		PageSize: parseInt(query.Get("pageSize"), 50),
		Search:   query.Get("search"),
	})
	if err != nil {
		h.logger.Error("failed to list movies", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list movies")
		return
	}

	resp := listMoviesResponse{
		Items: []movieResponse{},
		Pagination: paginationResponse{
			Page:       result.Pagination.Page,
			PageSize:   result.Pagination.PageSize,
			TotalItems: result.Pagination.TotalItems,
			TotalPages: result.Pagination.TotalPages,
		},
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, movieResponse{
			MovieID:  item.ID,
			Title:    item.Title,
			Year:     item.Year,
			CastSize: item.CastSize,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	candidates, err := h.service.Resolve(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := resolveResponse{
		Name:       name,
		Candidates: []personResponse{},
	}
	for _, c := range candidates {
		resp.Candidates = append(resp.Candidates, personResponse{
			PersonID:   c.ID,
			Name:       c.Name,
			BirthYear:  c.BirthYear,
			MovieCount: c.MovieCount,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) handlePath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	query := r.URL.Query()
	sourceID := query.Get("sourceId")
	targetID := query.Get("targetId")
	if sourceID == "" || targetID == "" {
		writeError(w, http.StatusBadRequest, "sourceId and targetId are required")
		return
	}

	start := time.Now()
	path, err := h.service.ShortestPath(r.Context(), sourceID, targetID)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			h.metrics.observePath("not_found", elapsed, 0)
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.metrics.observePath("error", elapsed, 0)
		h.logger.Error("path search failed", "error", err, "sourceId", sourceID, "targetId", targetID)
		writeError(w, http.StatusInternalServerError, "path search failed")
		return
	}

	resp := pathResponse{
		SourceID: path.SourceID,
		TargetID: path.TargetID,
		Found:    path.Found,
		Degrees:  path.Hops(),
		Explored: path.Explored,
		Steps:    []pathStepResponse{},
	}
	for _, step := range h.service.Describe(path) {
		resp.Steps = append(resp.Steps, pathStepResponse{
			MovieID:    step.MovieID,
			MovieTitle: step.MovieTitle,
			PersonID:   step.PersonID,
			PersonName: step.PersonName,
		})
	}

	outcome := "not_connected"
	if path.Found {
		outcome = "found"
	}
	h.metrics.observePath(outcome, elapsed, path.Hops())

	respondJSON(w, http.StatusOK, resp)
}

// --- Response DTOs ---

type paginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

type personResponse struct {
	PersonID   string `json:"personId"`
	Name       string `json:"name"`
	BirthYear  *int   `json:"birthYear,omitempty"`
	MovieCount int    `json:"movieCount"`
}

type movieResponse struct {
	MovieID  string `json:"movieId"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	CastSize int    `json:"castSize"`
}

type listPeopleResponse struct {
	Items      []personResponse   `json:"items"`
	Pagination paginationResponse `json:"pagination"`
}

type listMoviesResponse struct {
	Items      []movieResponse    `json:"items"`
	Pagination paginationResponse `json:"pagination"`
}

type resolveResponse struct {
	Name       string           `json:"name"`
	Candidates []personResponse `json:"candidates"`
}

type pathStepResponse struct {
	MovieID    string `json:"movieId"`
	MovieTitle string `json:"movieTitle"`
	PersonID   string `json:"personId"`
	PersonName string `json:"personName"`
}

type pathResponse struct {
	SourceID string             `json:"sourceId"`
	TargetID string             `json:"targetId"`
	Found    bool               `json:"found"`
	Degrees  int                `json:"degrees"`
	Explored int                `json:"explored"`
	Steps    []pathStepResponse `json:"steps"`
}

// --- Helpers ---

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
