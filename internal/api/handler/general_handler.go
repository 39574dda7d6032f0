package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dashgrid/dashgrid-api/internal/core/ports"
	"github.com/dashgrid/dashgrid-api/internal/infrastructure/probe"
)

// URLProber performs the outbound checks behind /general/test-url*.
type URLProber interface {
	TestURL(ctx context.Context, target string) probe.Result
	Request(ctx context.Context, in probe.RequestInput) probe.RequestResult
}

// GeneralHandler serves platform statistics, URL probes and the root banner.
type GeneralHandler struct {
	stats   ports.StatsService
	prober  URLProber
	version string
}

func NewGeneralHandler(stats ports.StatsService, prober URLProber, version string) *GeneralHandler {
	return &GeneralHandler{stats: stats, prober: prober, version: version}
}

// Statistics returns platform-wide totals.
//
// @Summary      Platform statistics
// @Tags         general
// @Produce      json
// @Success      200  {object}  statisticsResponse
// @Router       /general/statistics [get]
func (h *GeneralHandler) Statistics(c echo.Context) error {
	s, err := h.stats.Statistics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statisticsResponse{
		Success:    true,
		Users:      s.Users,
		Dashboards: s.Dashboards,
		Views:      s.Views,
		Sources:    s.Sources,
	})
}

// TestURL reports whether url answers a GET with 200.
//
// @Summary      Probe a URL
// @Tags         general
// @Produce      json
// @Param        url  query     string  true  "URL to probe"
// @Success      200  {object}  probe.Result
// @Router       /general/test-url [get]
func (h *GeneralHandler) TestURL(c echo.Context) error {
	return c.JSON(http.StatusOK, h.prober.TestURL(c.Request().Context(), c.QueryParam("url")))
}

// TestURLRequest relays a GET, POST or PUT and returns the upstream answer.
//
// @Summary      Relay a request
// @Tags         general
// @Produce      json
// @Param        url      query     string  true   "Target URL"
// @Param        type     query     string  true   "GET, POST or PUT"
// @Param        headers  query     string  false  "JSON object of headers"
// @Param        body     query     string  false  "JSON body for POST and PUT"
// @Param        params   query     string  false  "JSON object of query parameters for GET"
// @Success      200      {object}  probe.RequestResult
// @Router       /general/test-url-request [get]
func (h *GeneralHandler) TestURLRequest(c echo.Context) error {
	res := h.prober.Request(c.Request().Context(), probe.RequestInput{
		URL:     c.QueryParam("url"),
		Type:    c.QueryParam("type"),
		Headers: c.QueryParam("headers"),
		Body:    c.QueryParam("body"),
		Params:  c.QueryParam("params"),
	})
	return c.JSON(http.StatusOK, res)
}

// Root returns a small service banner.
//
// @Summary      Service banner
// @Tags         general
// @Produce      json
// @Success      200  {object}  bannerResponse
// @Router       / [get]
func (h *GeneralHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, bannerResponse{Name: "dashgrid-api", Version: h.version})
}
