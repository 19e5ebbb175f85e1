package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bonesy512/situationship/internal/checkin"
	"github.com/bonesy512/situationship/internal/decoder"
	"github.com/bonesy512/situationship/internal/insight"
	"github.com/bonesy512/situationship/internal/logger"
	"github.com/bonesy512/situationship/internal/milestone"
	"github.com/bonesy512/situationship/internal/models"
	"github.com/bonesy512/situationship/internal/user"
	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode JSON response", "error", err)
	}
}

// writeError translates the domain error taxonomy into HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrInsufficientTokens):
		http.Error(w, "Insufficient tokens", http.StatusPaymentRequired)
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, models.ErrPaymentsNotConfigured):
		http.Error(w, "Payments are not configured", http.StatusServiceUnavailable)
	default:
		logger.Log.Error("request failed", "error", err)
		http.Error(w, internalServerError, http.StatusInternalServerError)
	}
}

type Handler struct {
	checkIns   *checkin.Service
	insights   *insight.Service
	milestones milestone.Repository
}

func NewHandler(checkIns *checkin.Service, insights *insight.Service, milestones milestone.Repository) *Handler {
	return &Handler{
		checkIns:   checkIns,
		insights:   insights,
		milestones: milestones,
	}
}

type checkInResponse struct {
	Success    bool  `json:"success"`
	StreakDays int   `json:"streakDays"`
	Tokens     int64 `json:"tokens"`
}

func (h *Handler) SubmitCheckIn(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	var req checkin.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.checkIns.RecordCheckIn(r.Context(), dbUser.ID, &req, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, checkInResponse{
		Success:    true,
		StreakDays: updated.StreakDays,
		Tokens:     updated.Tokens,
	})
}

type generateInsightRequest struct {
	Type models.InsightType `json:"type"`
}

type insightResponse struct {
	ID        string             `json:"id"`
	Type      models.InsightType `json:"type"`
	Content   string             `json:"content"`
	CreatedAt time.Time          `json:"createdAt"`
}

func toInsightResponse(i *models.Insight) insightResponse {
	return insightResponse{
		ID:        i.ID,
		Type:      i.Type,
		Content:   i.Content,
		CreatedAt: i.CreatedAt,
	}
}

func (h *Handler) GenerateInsight(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	var req generateInsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	generated, err := h.insights.Generate(r.Context(), dbUser.ID, req.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]any{
		"success": true,
		"insight": toInsightResponse(generated),
	})
}

func (h *Handler) ListInsights(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	recent, err := h.insights.ListRecent(r.Context(), dbUser.ID, 10)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]insightResponse, 0, len(recent))
	for _, i := range recent {
		out = append(out, toInsightResponse(i))
	}
	writeJSON(w, map[string]any{"insights": out})
}

type userStatsResponse struct {
	Tokens      int64      `json:"tokens"`
	StreakDays  int        `json:"streakDays"`
	LastCheckIn *time.Time `json:"lastCheckIn"`
}

func (h *Handler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, userStatsResponse{
		Tokens:      dbUser.Tokens,
		StreakDays:  dbUser.StreakDays,
		LastCheckIn: dbUser.LastCheckIn,
	})
}

func (h *Handler) GetUserTokens(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]int64{"tokens": dbUser.Tokens})
}

// decodeMilestone carries the date-only format the questionnaire form
// submits, unlike persisted milestones which round-trip as RFC 3339.
type decodeMilestone struct {
	Date        string               `json:"date"`
	Description string               `json:"description"`
	Type        models.MilestoneType `json:"type"`
}

type decodeRequest struct {
	Answers    decoder.Answers   `json:"answers"`
	Milestones []decodeMilestone `json:"milestones"`
}

func (req *decodeRequest) milestones() ([]models.Milestone, error) {
	out := make([]models.Milestone, 0, len(req.Milestones))
	for _, m := range req.Milestones {
		date, err := time.Parse("2006-01-02", m.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: milestone date %q must be YYYY-MM-DD", models.ErrInvalidInput, m.Date)
		}
		if !m.Type.Valid() {
			return nil, fmt.Errorf("%w: %q is not a valid milestone type", models.ErrInvalidInput, m.Type)
		}
		out = append(out, models.Milestone{
			Date:        date,
			Description: m.Description,
			Type:        m.Type,
		})
	}
	return out, nil
}

func (h *Handler) Decode(w http.ResponseWriter, r *http.Request) {
	var req decodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	milestones, err := req.milestones()
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := decoder.Score(&req.Answers, milestones)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result)
}

type createMilestoneRequest struct {
	Date        string               `json:"date"`
	Description string               `json:"description"`
	Type        models.MilestoneType `json:"type"`
}

func (h *Handler) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	var req createMilestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if req.Description == "" {
		http.Error(w, "description is required", http.StatusBadRequest)
		return
	}
	if !req.Type.Valid() {
		http.Error(w, "type must be one of positive, neutral, challenging, negative", http.StatusBadRequest)
		return
	}

	created, err := h.milestones.Create(r.Context(), &models.Milestone{
		UserID:      dbUser.ID,
		Date:        date,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, created)
}

func (h *Handler) ListMilestones(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	milestones, err := h.milestones.ListByUser(r.Context(), dbUser.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]any{"milestones": milestones})
}

func (h *Handler) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	dbUser, ok := user.GetDBUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.milestones.Delete(r.Context(), dbUser.ID, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]bool{"success": true})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
