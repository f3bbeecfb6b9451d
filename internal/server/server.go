// Package server exposes the project detail view and the investment request
// form over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/iwvelando/teaser/internal/catalog"
	"github.com/iwvelando/teaser/internal/detail"
	"github.com/iwvelando/teaser/internal/lead"
	"github.com/iwvelando/teaser/internal/listing"
	"github.com/iwvelando/teaser/internal/project"
)

// Dependencies are the domain services the handler serves.
type Dependencies struct {
	Project *project.Project
	Builder *detail.Builder
	Leads   *lead.Service
}

type handler struct {
	logger      *zap.Logger
	project     *project.MasterProject
	builder     *detail.Builder
	leads       *lead.Service
	limiter     *rate.Limiter
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler for the teaser API. A nil cfg uses
// DefaultConfig.
func NewHandler(logger *zap.Logger, deps Dependencies, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	builder := deps.Builder
	if builder == nil {
		builder = detail.NewBuilder(logger, "")
	}

	h := &handler{
		logger:      logger,
		builder:     builder,
		leads:       deps.Leads,
		maxBodySize: cfg.BodySizeBytes(),
		version:     trimmedVersion,
	}
	if deps.Project != nil {
		h.project = &deps.Project.MasterProject
	}
	if cfg.LeadRateLimit.PerMinute > 0 {
		perSecond := rate.Limit(float64(cfg.LeadRateLimit.PerMinute) / 60)
		h.limiter = rate.NewLimiter(perSecond, cfg.LeadRateLimit.Burst)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handleVersion)

		r.Route("/project", func(r chi.Router) {
			r.Use(h.requireProject)
			r.Get("/", h.handleProject)
			r.Get("/sections/{category}", h.handleSection)
			r.Get("/fields/{category}", h.handleFields)
			r.Get("/documents", h.handleDocuments)
			r.Get("/value", h.handleValue)
		})

		r.Post("/emails/send", h.handleSendEmail)
	})

	return r
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			h.logger.Debug("http request",
				zap.String("op", "server.request"),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func (h *handler) requireProject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.project == nil {
			h.respondErrorWithOp(w, http.StatusServiceUnavailable, "project is not loaded", "server.requireProject")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleProject(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.builder.Build(h.project))
}

type sectionResponse struct {
	Applicable bool            `json:"applicable"`
	Section    *detail.Section `json:"section,omitempty"`
}

func (h *handler) handleSection(w http.ResponseWriter, r *http.Request) {
	category, ok := h.category(w, r, "server.handleSection")
	if !ok {
		return
	}

	var s detail.Section
	switch category {
	case listing.ContactInfo:
		s, ok = h.builder.Contact(h.project)
	default:
		s, ok = h.builder.Section(h.project, category)
	}
	if !ok {
		h.writeJSON(w, http.StatusOK, sectionResponse{})
		return
	}
	h.writeJSON(w, http.StatusOK, sectionResponse{Applicable: true, Section: &s})
}

type fieldsResponse struct {
	Applicable bool         `json:"applicable"`
	Category   string       `json:"category"`
	Fields     catalog.List `json:"fields"`
}

func (h *handler) handleFields(w http.ResponseWriter, r *http.Request) {
	category, ok := h.category(w, r, "server.handleFields")
	if !ok {
		return
	}

	resp := fieldsResponse{Category: string(category), Fields: catalog.List{}}
	if fields, found := h.builder.Fields(h.project, category); found {
		resp.Applicable = true
		resp.Fields = fields
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleDocuments(w http.ResponseWriter, _ *http.Request) {
	docs := h.builder.Documents(h.project)
	if docs == nil {
		docs = []detail.Document{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (h *handler) handleValue(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("amount"))
	units, err := strconv.ParseFloat(raw, 64)
	if err != nil || units < 0 {
		h.respondErrorWithOp(w, http.StatusBadRequest, lead.MsgQuantity, "server.handleValue")
		return
	}

	value := lead.ComputeValue(units, h.unitPrice())
	h.writeJSON(w, http.StatusOK, map[string]string{
		"value": lead.FormatValue(value),
	})
}

func (h *handler) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSendEmail"

	if h.leads == nil {
		h.respondErrorWithOp(w, http.StatusServiceUnavailable, "investment requests are not configured", op)
		return
	}
	if h.limiter != nil && !h.limiter.Allow() {
		w.Header().Set("Retry-After", "60")
		h.respondErrorWithOp(w, http.StatusTooManyRequests, "too many requests, please try again later", op)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	var form lead.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	result, err := h.leads.Submit(r.Context(), form)
	if err != nil {
		var validationErr *lead.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Info("investment request rejected",
				zap.String("op", op),
				zap.Int("issues", len(validationErr.Issues)),
			)
			h.writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   validationErr.Error(),
				"issues":  validationErr.Issues,
				"success": false,
			})
			return
		}
		// Delivery failures are reported in the body; the form itself was fine.
		h.respondErrorWithOp(w, http.StatusOK, err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) category(w http.ResponseWriter, r *http.Request, op string) (listing.Category, bool) {
	category := listing.Category(chi.URLParam(r, "category"))
	if !category.Valid() {
		h.respondErrorWithOp(w, http.StatusNotFound, fmt.Sprintf("unknown category %q", category), op)
		return "", false
	}
	return category, true
}

func (h *handler) unitPrice() float64 {
	if h.leads != nil {
		return h.leads.UnitPrice()
	}
	return h.project.FaceValuePerUnit
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]any{"error": msg, "success": false})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
