package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dashgrid/dashgrid-api/internal/core/domain"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
)

const (
	MsgSourceExists   = "A source with that name already exists."
	MsgSourceNotFound = "The selected source has not been found."
	MsgSourceRenamed  = "A source with the same name has been found."
)

// SourceHandler serves the /sources routes.
type SourceHandler struct {
	service ports.SourceService
}

func NewSourceHandler(service ports.SourceService) *SourceHandler {
	return &SourceHandler{service: service}
}

func (f sourceFields) input() ports.SourceInput {
	return ports.SourceInput{
		Name:     f.Name,
		Type:     f.Type,
		URL:      f.URL,
		Login:    f.Login,
		Passcode: f.Passcode,
		VHost:    f.VHost,
	}
}

// List returns the caller's sources. Connection state is not tracked, so
// active is always false.
//
// @Summary      List owned sources
// @Tags         sources
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listSourcesResponse
// @Router       /sources/sources [get]
func (h *SourceHandler) List(c echo.Context) error {
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	found, err := h.service.ListSources(c.Request().Context(), owner)
	if err != nil {
		return err
	}
	out := make([]sourceItem, 0, len(found))
	for _, s := range found {
		out = append(out, sourceItem{
			ID:       s.ID,
			Name:     s.Name,
			Type:     s.Type,
			URL:      s.URL,
			Login:    s.Login,
			Passcode: s.Passcode,
			VHost:    s.VHost,
		})
	}
	return c.JSON(http.StatusOK, listSourcesResponse{Success: true, Sources: out})
}

// Create adds a source.
//
// @Summary      Create a source
// @Tags         sources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSourceRequest  true  "Source fields"
// @Success      200   {object}  successResponse
// @Router       /sources/create-source [post]
func (h *SourceHandler) Create(c echo.Context) error {
	var req createSourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	if err := h.service.CreateSource(c.Request().Context(), owner, req.input()); err != nil {
		if errors.Is(err, domain.ErrSourceExists) {
			return businessError(c, http.StatusConflict, MsgSourceExists)
		}
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Change rewrites an owned source.
//
// @Summary      Change a source
// @Tags         sources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changeSourceRequest  true  "Source id and fields"
// @Success      200   {object}  successResponse
// @Router       /sources/change-source [post]
func (h *SourceHandler) Change(c echo.Context) error {
	var req changeSourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	err = h.service.ChangeSource(c.Request().Context(), owner, req.ID, req.input())
	switch {
	case errors.Is(err, domain.ErrSourceNotFound):
		return businessError(c, http.StatusConflict, MsgSourceNotFound)
	case errors.Is(err, domain.ErrSourceExists):
		return businessError(c, http.StatusConflict, MsgSourceRenamed)
	case err != nil:
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Delete removes an owned source.
//
// @Summary      Delete a source
// @Tags         sources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      idRequest  true  "Source id"
// @Success      200   {object}  successResponse
// @Router       /sources/delete-source [post]
func (h *SourceHandler) Delete(c echo.Context) error {
	var req idRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteSource(c.Request().Context(), owner, req.ID); err != nil {
		if errors.Is(err, domain.ErrSourceNotFound) {
			return businessError(c, http.StatusConflict, MsgSourceNotFound)
		}
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Get returns the connection fields of a named source. owner is "self" or
// the caller's own account id.
//
// @Summary      Get a source by name
// @Tags         sources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      getSourceRequest  true  "Source name and owner reference"
// @Success      200   {object}  getSourceResponse
// @Router       /sources/source [post]
func (h *SourceHandler) Get(c echo.Context) error {
	var req getSourceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	requester, err := ctxOwner(c)
	if err != nil {
		return err
	}

	src, err := h.service.GetSource(c.Request().Context(), requester, req.Owner, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrSourceNotFound) {
			return businessError(c, http.StatusConflict, MsgSourceNotFound)
		}
		return err
	}
	return c.JSON(http.StatusOK, getSourceResponse{
		Success: true,
		Source: sourceConnection{
			Type:     src.Type,
			URL:      src.URL,
			Login:    src.Login,
			Passcode: src.Passcode,
			VHost:    src.VHost,
		},
	})
}

// CheckSources creates placeholders for every listed name the caller does
// not own yet.
//
// @Summary      Reconcile source names
// @Tags         sources
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkSourcesRequest  true  "Source names"
// @Success      200   {object}  checkSourcesResponse
// @Router       /sources/check-sources [post]
func (h *SourceHandler) CheckSources(c echo.Context) error {
	var req checkSourcesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	owner, err := ctxOwner(c)
	if err != nil {
		return err
	}

	created, err := h.service.CheckSources(c.Request().Context(), owner, req.Sources)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checkSourcesResponse{Success: true, NewSources: created})
}
