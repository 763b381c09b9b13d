package api

import (
	"net/http"

	reqdto "perks-ledger/internal/handler/dto/request"
	resdto "perks-ledger/internal/handler/dto/response"
	"perks-ledger/internal/handler/httperr"
	"perks-ledger/internal/usecase/commands"
	"perks-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const customerMePath = "/api/customers/me"

type CustomerHandler struct {
	cmds       commands.CustomerCommands
	q          queries.CustomerQueries
	dashboards queries.DashboardQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries, dashboards queries.DashboardQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q, dashboards: dashboards}
}

// @Summary Register customer
// @Description Create the customer profile for the calling subject
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomerRequest true "Customer"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	created, err := h.cmds.CreateCustomer(c.Request.Context(), req.ToCommand(subject))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Location", customerMePath)
	c.JSON(http.StatusCreated, resdto.FromCustomer(created))
}

// @Summary Current customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CustomerResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/customers/me [get]
func (h *CustomerHandler) Me(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	view, err := h.q.GetBySubject(c.Request.Context(), subject)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Rename customer
// @Description The display name is the only mutable field
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RenameCustomerRequest true "New name"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/customers/me [patch]
func (h *CustomerHandler) Rename(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	var req reqdto.RenameCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	renamed, err := h.cmds.RenameCustomer(c.Request.Context(), subject, req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomer(renamed))
}

// @Summary Delete customer
// @Description Deletes the profile together with its balances, scans and redemptions
// @Tags customers
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/customers/me [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteCustomer(c.Request.Context(), subject); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Customer dashboard
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/customers/me/dashboard [get]
func (h *CustomerHandler) Dashboard(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}
	view, err := h.q.GetBySubject(c.Request.Context(), subject)
	if err != nil {
		abortWithError(c, err)
		return
	}
	d, err := h.dashboards.BuildDashboard(c.Request.Context(), view.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDashboard(d))
}
