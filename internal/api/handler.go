package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
	sheeterr "github.com/KirkDiggler/dnd-character-sheet/internal/errors"
	"github.com/KirkDiggler/dnd-character-sheet/internal/services/sheet"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// OwnerLister lists every owner with a stored sheet
type OwnerLister interface {
	ListOwners(ctx context.Context) ([]string, error)
}

// Handler serves the sheet service over JSON
type Handler struct {
	service sheet.Service
	owners  OwnerLister
	logger  *zap.Logger
}

type HandlerConfig struct {
	Service sheet.Service // Required
	Owners  OwnerLister   // Optional, GET /api/sheets answers 501 without it
	Logger  *zap.Logger
}

func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.Service == nil {
		panic("sheet service is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		service: cfg.Service,
		owners:  cfg.Owners,
		logger:  logger.Named("api"),
	}
}

// Router builds the chi router with all routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.healthCheck)
		r.Get("/rulebook", h.getRulebook)
		r.Get("/classes/{class}", h.getClass)

		r.Get("/sheets", h.listSheets)
		r.Route("/sheets/{owner}", func(r chi.Router) {
			r.Get("/", h.getSheet)
			r.Post("/reload", h.reloadSheet)
			r.Post("/attributes/{attribute}", h.adjustAttribute)
			r.Post("/skills/{skill}", h.adjustSkill)
			r.Put("/check", h.updateCheck)
			r.Post("/check/roll", h.rollCheck)
			r.Post("/save", h.saveSheet)
		})
	})

	return r
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)))
	})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type rulebookResponse struct {
	Attributes []shared.Attribute `json:"attributes"`
	Skills     []rulebook.Skill   `json:"skills"`
	Classes    []rulebook.Class   `json:"classes"`
}

func (h *Handler) getRulebook(w http.ResponseWriter, r *http.Request) {
	rb := h.service.Rulebook()
	writeJSON(w, http.StatusOK, rulebookResponse{
		Attributes: rb.Attributes(),
		Skills:     rb.Skills(),
		Classes:    rb.Classes(),
	})
}

func (h *Handler) getClass(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.ClassRequirements(r.Context(), r.URL.Query().Get("owner"), chi.URLParam(r, "class"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) listSheets(w http.ResponseWriter, r *http.Request) {
	if h.owners == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "listing sheets needs the redis store"})
		return
	}
	owners, err := h.owners.ListOwners(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"owners": owners})
}

func (h *Handler) getSheet(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Open(r.Context(), chi.URLParam(r, "owner"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) reloadSheet(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Reload(r.Context(), chi.URLParam(r, "owner"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) adjustAttribute(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if !h.decode(w, r, &req) {
		return
	}
	attr, err := shared.ParseAttribute(chi.URLParam(r, "attribute"))
	if err != nil {
		h.writeError(w, r, sheeterr.InvalidArgument(err.Error()))
		return
	}

	result, err := h.service.AdjustAttribute(r.Context(), chi.URLParam(r, "owner"), attr, req.Delta)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) adjustSkill(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.AdjustSkill(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "skill"), req.Delta)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// checkRequest fields are optional; omitted ones keep their current value
type checkRequest struct {
	Skill      *string `json:"skill"`
	Difficulty *int    `json:"difficulty"`
}

func (h *Handler) updateCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if !h.decode(w, r, &req) {
		return
	}
	owner := chi.URLParam(r, "owner")

	var (
		view *sheet.View
		err  error
	)
	if req.Skill != nil {
		if view, err = h.service.SelectSkill(r.Context(), owner, *req.Skill); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	if req.Difficulty != nil {
		if view, err = h.service.SetDifficulty(r.Context(), owner, *req.Difficulty); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	if view == nil {
		if view, err = h.service.Open(r.Context(), owner); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, view)
}

type rollResponse struct {
	Result *character.CheckResult `json:"result"`
	Sheet  *sheet.View            `json:"sheet"`
}

func (h *Handler) rollCheck(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.RollCheck(r.Context(), chi.URLParam(r, "owner"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rollResponse{Result: view.Check.Last, Sheet: view})
}

func (h *Handler) saveSheet(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Save(r.Context(), chi.URLParam(r, "owner")); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"saved": true})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}

// statusFor maps error codes to HTTP statuses
func statusFor(err error) int {
	switch sheeterr.GetCode(err) {
	case sheeterr.CodeInvalidArgument, sheeterr.CodeValidation:
		return http.StatusBadRequest
	case sheeterr.CodeNotFound:
		return http.StatusNotFound
	case sheeterr.CodePermissionDenied:
		return http.StatusForbidden
	case sheeterr.CodeUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()

	var appErr *sheeterr.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		if status == http.StatusInternalServerError {
			message = "internal error"
		}
	}

	writeJSON(w, status, errorResponse{Error: message, Code: string(sheeterr.GetCode(err))})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
