package handler

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"

	"nifresolver/internal/service"
	"nifresolver/internal/urlutil"
	"nifresolver/pkg/resolver"
)

// bootstrapPage reads location.pathname and location.hash in the browser and
// asks /api/resolve for a decision. Fragments never reach the server, so
// any page that may need resolving must go through it.
//
//go:embed bootstrap.html
var bootstrapPage []byte

type ResolveHandler struct {
	service service.ResolveService
}

type decisionResponse struct {
	Rule     resolver.Rule `json:"rule"`
	Navigate bool          `json:"navigate"`
	Target   string        `json:"target,omitempty"`
	Message  string        `json:"message"`
}

func NewResolveHandler(service service.ResolveService) *ResolveHandler {
	return &ResolveHandler{service: service}
}

func (h *ResolveHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	e.GET("/resolve", h.Redirect)
	e.GET("/api/resolve", h.Decide)
}

func (h *ResolveHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Bootstrap serves the client-side resolver page.
func (h *ResolveHandler) Bootstrap(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, bootstrapPage)
}

// Redirect answers 302 to the resolved target, or 200 with the diagnostic
// text when no navigation is due. The bootstrap page does not use it; it
// serves direct links and clients without JavaScript.
func (h *ResolveHandler) Redirect(c echo.Context) error {
	loc := resolver.Location{
		Path:     c.QueryParam("path"),
		Fragment: c.QueryParam("fragment"),
	}
	d, err := h.service.Resolve(c.Request().Context(), loc)
	if err != nil {
		return writeServiceError(c, err)
	}
	if !resolver.Apply(d, resolver.NavigatorFunc(func(target string) {
		err = c.Redirect(http.StatusFound, target)
	})) {
		return c.String(http.StatusOK, d.Message())
	}
	return err
}

// Decide returns the decision for ?url= or ?path=&fragment= as JSON.
func (h *ResolveHandler) Decide(c echo.Context) error {
	loc := resolver.Location{
		Path:     c.QueryParam("path"),
		Fragment: c.QueryParam("fragment"),
	}
	if raw := c.QueryParam("url"); raw != "" {
		loc.Path, loc.Fragment = urlutil.SplitLocation(raw)
	}
	d, err := h.service.Resolve(c.Request().Context(), loc)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toDecisionResponse(d))
}

func toDecisionResponse(d resolver.Decision) decisionResponse {
	return decisionResponse{
		Rule:     d.Rule,
		Navigate: d.Navigate(),
		Target:   d.Target,
		Message:  d.Message(),
	}
}
