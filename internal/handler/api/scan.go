package api

import (
	"net/http"

	reqdto "perks-ledger/internal/handler/dto/request"
	resdto "perks-ledger/internal/handler/dto/response"
	"perks-ledger/internal/handler/httperr"
	"perks-ledger/internal/usecase/commands"
	"perks-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxActorIDKey = "actor_id"

type ScanHandler struct {
	cmds     commands.ScanCommands
	balances queries.BalanceQueries
	events   queries.ScanEventQueries
	actors   queries.ActorQueries
}

func NewScanHandler(cmds commands.ScanCommands, balances queries.BalanceQueries, events queries.ScanEventQueries, actors queries.ActorQueries) *ScanHandler {
	return &ScanHandler{cmds: cmds, balances: balances, events: events, actors: actors}
}

// RequireBusinessUser resolves the caller to a business user. Customers and
// unknown subjects are rejected before any ledger work.
func (h *ScanHandler) RequireBusinessUser(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	actorID, err := h.actors.ResolveBusinessUser(c.Request.Context(), subject)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Set(ctxActorIDKey, actorID)
	c.Next()
}

func actorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxActorIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// @Summary Process scan
// @Description Accrue points for a customer code and optionally claim reward units
// @Tags scans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProcessScanRequest true "Scan request"
// @Success 201 {object} resdto.ScanResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/business/scans [post]
func (h *ScanHandler) ProcessScan(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusForbidden, nil, msgNotBusinessUser, nil)
		return
	}
	var req reqdto.ProcessScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.cmds.ProcessScan(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromScanResult(result))
}

// @Summary Get scan event
// @Description Get one scan event recorded against a reward
// @Tags scans
// @Produce json
// @Security BearerAuth
// @Param rewardId path string true "Reward ID"
// @Param scanEventId path string true "Scan event ID"
// @Success 200 {object} resdto.ScanEventResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/business/scans/rewards/{rewardId}/events/{scanEventId} [get]
func (h *ScanHandler) GetScanEvent(c *gin.Context) {
	rewardID, err := uuid.Parse(c.Param("rewardId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRewardID, nil)
		return
	}
	eventID, err := uuid.Parse(c.Param("scanEventId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidScanEvent, nil)
		return
	}

	view, err := h.events.GetScanEvent(c.Request.Context(), rewardID, eventID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScanEventView(view))
}

// @Summary Get customer balance
// @Description Effective balance of a customer code for one reward
// @Tags scans
// @Produce json
// @Security BearerAuth
// @Param rewardId path string true "Reward ID"
// @Param code path string true "Customer code"
// @Success 200 {object} resdto.BalanceInfoResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/business/scans/rewards/{rewardId}/customers/{code}/balance [get]
func (h *ScanHandler) GetBalance(c *gin.Context) {
	rewardID, err := uuid.Parse(c.Param("rewardId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRewardID, nil)
		return
	}

	info, err := h.balances.GetBalanceInfo(c.Request.Context(), rewardID, c.Param("code"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceInfo(info))
}
