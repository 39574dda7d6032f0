package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dashgrid/dashgrid-api/internal/api/metrics"
	"github.com/dashgrid/dashgrid-api/internal/api/middleware"
	"github.com/dashgrid/dashgrid-api/internal/core/domain"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
)

const (
	MsgDashboardExists    = "A dashboard with that name already exists."
	MsgDashboardSelected  = "The selected dashboard has not been found."
	MsgDashboardSpecified = "The specified dashboard has not been found."
	MsgNextIDDecreased    = "Validation Error: nextId must be at least 1 and not lower than the saved value"
)

// DashboardHandler serves the /dashboards routes.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// crudError maps errors of the owner CRUD routes.
func crudError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrDashboardNotFound):
		return businessError(c, http.StatusConflict, MsgDashboardSelected)
	case errors.Is(err, domain.ErrDashboardExists):
		return businessError(c, http.StatusConflict, MsgDashboardExists)
	case errors.Is(err, domain.ErrInvalidNextID):
		return businessError(c, http.StatusBadRequest, MsgNextIDDecreased)
	}
	return err
}

// sharingError maps errors of the sharing routes.
func sharingError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrDashboardNotFound) {
		return businessError(c, http.StatusConflict, MsgDashboardSpecified)
	}
	return err
}

func toView(v *ports.DashboardView) *dashboardView {
	if v == nil {
		return nil
	}
	return &dashboardView{Name: v.Name, Layout: v.Layout, Items: v.Items}
}

// List returns the caller's dashboards.
//
// @Summary      List owned dashboards
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listDashboardsResponse
// @Failure      403  {object}  statusResponse
// @Router       /dashboards/dashboards [get]
func (h *DashboardHandler) List(c echo.Context) error {
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	found, err := h.service.ListDashboards(c.Request().Context(), owner)
	if err != nil {
		return err
	}
	out := make([]dashboardSummary, 0, len(found))
	for _, d := range found {
		out = append(out, dashboardSummary{ID: d.ID, Name: d.Name, Views: d.Views})
	}
	return c.JSON(http.StatusOK, listDashboardsResponse{Success: true, Dashboards: out})
}

// Create adds an empty dashboard.
//
// @Summary      Create a dashboard
// @Tags         dashboards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDashboardRequest  true  "Dashboard name"
// @Success      200   {object}  successResponse
// @Router       /dashboards/create-dashboard [post]
func (h *DashboardHandler) Create(c echo.Context) error {
	var req createDashboardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	if err := h.service.CreateDashboard(c.Request().Context(), owner, req.Name); err != nil {
		return crudError(c, err)
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Delete removes an owned dashboard.
//
// @Summary      Delete a dashboard
// @Tags         dashboards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      idRequest  true  "Dashboard id"
// @Success      200   {object}  successResponse
// @Router       /dashboards/delete-dashboard [post]
func (h *DashboardHandler) Delete(c echo.Context) error {
	var req idRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteDashboard(c.Request().Context(), owner, req.ID); err != nil {
		return crudError(c, err)
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Get returns an owned dashboard for editing plus the owner's source names.
//
// @Summary      Get a dashboard
// @Tags         dashboards
// @Produce      json
// @Security     BearerAuth
// @Param        id   query     string  true  "Dashboard id"
// @Success      200  {object}  getDashboardResponse
// @Router       /dashboards/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	d, err := h.service.GetDashboard(c.Request().Context(), owner, c.QueryParam("id"))
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(http.StatusOK, getDashboardResponse{
		Success: true,
		Dashboard: dashboardDetail{
			ID:     d.ID,
			Name:   d.Name,
			Layout: d.Layout,
			Items:  d.Items,
			NextID: d.NextID,
		},
		Sources: d.Sources,
	})
}

// Save replaces the layout, items and nextId of an owned dashboard.
//
// @Summary      Save a dashboard
// @Tags         dashboards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveDashboardRequest  true  "Dashboard content"
// @Success      200   {object}  successResponse
// @Router       /dashboards/save-dashboard [post]
func (h *DashboardHandler) Save(c echo.Context) error {
	var req saveDashboardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	err = h.service.SaveDashboard(c.Request().Context(), owner, ports.SaveDashboardInput{
		ID:     req.ID,
		Layout: req.Layout,
		Items:  req.Items,
		NextID: req.NextID,
	})
	if err != nil {
		return crudError(c, err)
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Clone copies an owned dashboard under a new name.
//
// @Summary      Clone a dashboard
// @Tags         dashboards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      cloneDashboardRequest  true  "Source dashboard and new name"
// @Success      200   {object}  successResponse
// @Router       /dashboards/clone-dashboard [post]
func (h *DashboardHandler) Clone(c echo.Context) error {
	var req cloneDashboardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	if err := h.service.CloneDashboard(c.Request().Context(), owner, req.DashboardID, req.Name); err != nil {
		return crudError(c, err)
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// CheckPasswordNeeded tells a viewer whether the dashboard can be shown.
// The route is public. A verified token identifies the requester; without
// one the optional body user id is used.
//
// @Summary      Check dashboard access
// @Tags         dashboards
// @Accept       json
// @Produce      json
// @Param        body  body      checkPasswordNeededRequest  true  "Dashboard and optional viewer"
// @Success      200   {object}  checkPasswordNeededResponse
// @Router       /dashboards/check-password-needed [post]
func (h *DashboardHandler) CheckPasswordNeeded(c echo.Context) error {
	var req checkPasswordNeededRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	requester := ""
	if claims := middleware.ClaimsFrom(c); claims != nil {
		requester = claims.ID
	} else if req.User != nil {
		requester = req.User.ID
	}

	res, err := h.service.CheckPasswordNeeded(c.Request().Context(), req.DashboardID, requester)
	if err != nil {
		return sharingError(c, err)
	}
	if res.Dashboard != nil {
		path := "shared"
		if res.Owner == domain.OwnerSelf {
			path = "owner"
		}
		metrics.DashboardViewsTotal.WithLabelValues(path).Inc()
	}

	return c.JSON(http.StatusOK, checkPasswordNeededResponse{
		Success:        true,
		Owner:          res.Owner,
		Shared:         res.Shared,
		HasPassword:    res.HasPassword,
		PasswordNeeded: res.PasswordNeeded,
		Dashboard:      toView(res.Dashboard),
	})
}

// CheckPassword answers the password challenge of a protected dashboard.
//
// @Summary      Check a dashboard password
// @Tags         dashboards
// @Accept       json
// @Produce      json
// @Param        body  body      checkPasswordRequest  true  "Dashboard and password"
// @Success      200   {object}  checkPasswordResponse
// @Router       /dashboards/check-password [post]
func (h *DashboardHandler) CheckPassword(c echo.Context) error {
	var req checkPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.service.CheckPassword(c.Request().Context(), req.DashboardID, req.Password)
	if err != nil {
		return sharingError(c, err)
	}
	if !res.Correct {
		metrics.PasswordChecksTotal.WithLabelValues("incorrect").Inc()
		return c.JSON(http.StatusOK, checkPasswordResponse{Success: true, CorrectPassword: false})
	}
	metrics.PasswordChecksTotal.WithLabelValues("correct").Inc()
	metrics.DashboardViewsTotal.WithLabelValues("password").Inc()

	return c.JSON(http.StatusOK, checkPasswordResponse{
		Success:         true,
		CorrectPassword: true,
		Owner:           res.Owner,
		Dashboard:       toView(res.Dashboard),
	})
}

// Share toggles the shared flag of an owned dashboard.
//
// @Summary      Toggle dashboard sharing
// @Tags         dashboards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      shareDashboardRequest  true  "Dashboard id"
// @Success      200   {object}  shareDashboardResponse
// @Router       /dashboards/share-dashboard [post]
func (h *DashboardHandler) Share(c echo.Context) error {
	var req shareDashboardRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	shared, err := h.service.ToggleShare(c.Request().Context(), owner, req.DashboardID)
	if err != nil {
		return sharingError(c, err)
	}
	return c.JSON(http.StatusOK, shareDashboardResponse{Success: true, Shared: shared})
}

// ChangePassword sets or clears the viewer password of an owned dashboard.
//
// @Summary      Change a dashboard password
// @Tags         dashboards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changeDashboardPasswordRequest  true  "Dashboard id and password (null clears)"
// @Success      200   {object}  successResponse
// @Router       /dashboards/change-password [post]
func (h *DashboardHandler) ChangePassword(c echo.Context) error {
	var req changeDashboardPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	password := ""
	if req.Password != nil {
		password = *req.Password
	}
	if err := h.service.ChangePassword(c.Request().Context(), owner, req.DashboardID, password); err != nil {
		return sharingError(c, err)
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
