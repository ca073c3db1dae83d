package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/FruitReels_Go/internal/catalog"
	"github.com/osse101/FruitReels_Go/internal/domain"
	"github.com/osse101/FruitReels_Go/internal/logger"
	"github.com/osse101/FruitReels_Go/internal/session"
)

// GameHandler exposes the session to presentation clients
type GameHandler struct {
	session     session.Service
	catalog     *catalog.Catalog
	costPerRoll int
}

// NewGameHandler creates a new game handler
func NewGameHandler(svc session.Service, cat *catalog.Catalog, costPerRoll int) *GameHandler {
	return &GameHandler{
		session:     svc,
		catalog:     cat,
		costPerRoll: costPerRoll,
	}
}

// RollResponse is returned by the roll endpoint. When Started is false the
// request was ignored and Roll is the one already in flight.
type RollResponse struct {
	Started bool                    `json:"started"`
	Roll    *domain.Roll            `json:"roll,omitempty"`
	Session *domain.SessionSnapshot `json:"session,omitempty"`
}

// RecentRollsQuery holds the query parameters of the history endpoint
type RecentRollsQuery struct {
	Limit int `validate:"omitempty,min=1,max=100"`
}

// RecentRollsResponse lists recent rolls, most recent first
type RecentRollsResponse struct {
	Rolls []domain.RollRecord `json:"rolls"`
}

// CatalogResponse describes the symbols and the cost of a roll
type CatalogResponse struct {
	CostPerRoll int             `json:"cost_per_roll"`
	Symbols     []domain.Symbol `json:"symbols"`
}

// HandleRoll requests a roll
// @Summary Request a roll
// @Description Start a roll when the session is idle. While a roll is in flight the request is ignored and the current roll is returned.
// @Tags game
// @Produce json
// @Success 202 {object} RollResponse "Roll started"
// @Success 200 {object} RollResponse "Roll already in progress"
// @Failure 503 {object} ErrorResponse "Session closed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/roll [post]
func (h *GameHandler) HandleRoll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roll, started, err := h.session.RequestRoll(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgRollRequestFailed, "error", err)
		respondServiceError(w, err)
		return
	}

	if !started {
		snap := h.session.Snapshot()
		respondJSON(w, http.StatusOK, RollResponse{Started: false, Roll: roll, Session: &snap})
		return
	}

	respondJSON(w, http.StatusAccepted, RollResponse{Started: true, Roll: roll})
}

// HandleReset abandons the in-flight roll
// @Summary Reset the reels
// @Description Return the reels to the idle view. A no-op when no roll is in flight.
// @Tags game
// @Produce json
// @Success 200 {object} domain.SessionSnapshot
// @Failure 503 {object} ErrorResponse "Session closed"
// @Router /api/v1/reset [post]
func (h *GameHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.session.RequestReset(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgResetRequestFailed, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.session.Snapshot())
}

// HandleSession returns the current session snapshot
// @Summary Get session state
// @Tags game
// @Produce json
// @Success 200 {object} domain.SessionSnapshot
// @Router /api/v1/session [get]
func (h *GameHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.session.Snapshot())
}

// HandleRecentRolls lists rolls still held in history
// @Summary List recent rolls
// @Description Most recent first. Rolls expire from history after the configured TTL.
// @Tags game
// @Produce json
// @Param limit query int false "Maximum rolls to return (1-100)"
// @Success 200 {object} RecentRollsResponse
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Router /api/v1/rolls [get]
func (h *GameHandler) HandleRecentRolls(w http.ResponseWriter, r *http.Request) {
	limit, _, err := queryInt(r, "limit")
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
		return
	}

	q := RecentRollsQuery{Limit: limit}
	if err := GetValidator().ValidateStruct(q); err != nil {
		respondValidationError(w, err)
		return
	}

	rolls := h.session.RecentRolls()
	if q.Limit > 0 && len(rolls) > q.Limit {
		rolls = rolls[:q.Limit]
	}
	if rolls == nil {
		rolls = []domain.RollRecord{}
	}

	respondJSON(w, http.StatusOK, RecentRollsResponse{Rolls: rolls})
}

// HandleGetRoll returns one roll by id
// @Summary Get a roll
// @Tags game
// @Produce json
// @Param id path string true "Roll ID (UUID)"
// @Success 200 {object} domain.RollRecord
// @Failure 400 {object} ErrorResponse "Invalid roll ID"
// @Failure 404 {object} ErrorResponse "Roll not found"
// @Router /api/v1/rolls/{id} [get]
func (h *GameHandler) HandleGetRoll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRollID)
		return
	}

	rec, err := h.session.GetRoll(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgGetRollFailed, "roll_id", id, "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

// HandleCatalog returns the symbol catalog
// @Summary Get the symbol catalog
// @Tags game
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/catalog [get]
func (h *GameHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CatalogResponse{
		CostPerRoll: h.costPerRoll,
		Symbols:     h.catalog.Symbols(),
	})
}
