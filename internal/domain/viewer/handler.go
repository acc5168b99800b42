package viewer

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/miokit/mioviewer/internal/domain/viewmodel"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/bundles", h.ListBundles)
	api.GET("/bundles/:bundleID", h.GetOverview)
	api.GET("/entry/:bundleID/:ref", h.GetEntry)
	api.GET("/subEntry/:bundleID/:parentRef/:ref", h.GetSubEntry)
	api.GET("/export/:bundleID", h.ExportBundle)
}

// ModelJSON is the wire shape of a presentation model.
type ModelJSON struct {
	Headline  string      `json:"headline"`
	Values    []ValueJSON `json:"values"`
	MainValue ValueJSON   `json:"mainValue"`
}

type ValueJSON struct {
	Label    string `json:"label,omitempty"`
	Value    string `json:"value"`
	Href     string `json:"href,omitempty"`
	RenderAs string `json:"renderAs,omitempty"`
}

func toJSON(m viewmodel.Model) ModelJSON {
	values := make([]ValueJSON, 0, len(m.Values()))
	for _, v := range m.Values() {
		values = append(values, valueJSON(v))
	}
	return ModelJSON{Headline: m.Headline(), Values: values, MainValue: valueJSON(m.MainValue())}
}

func valueJSON(v viewmodel.Value) ValueJSON {
	return ValueJSON{Label: v.Label, Value: v.Value, Href: v.Href, RenderAs: v.RenderAs}
}

func (h *Handler) ListBundles(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListBundles())
}

func (h *Handler) GetOverview(c echo.Context) error {
	models, err := h.svc.Overview(c.Param("bundleID"))
	if err != nil {
		return httpError(err)
	}
	out := make([]ModelJSON, 0, len(models))
	for _, m := range models {
		out = append(out, toJSON(m))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetEntry(c echo.Context) error {
	m, err := h.svc.EntryModel(c.Param("bundleID"), pathParam(c, "ref"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toJSON(m))
}

func (h *Handler) GetSubEntry(c echo.Context) error {
	m, err := h.svc.SubEntryModel(c.Param("bundleID"),
		pathParam(c, "parentRef"), pathParam(c, "ref"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, toJSON(m))
}

func (h *Handler) ExportBundle(c echo.Context) error {
	tree, err := h.svc.ExportContent(c.Param("bundleID"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tree)
}

// pathParam unescapes a route segment that the model layer built with
// url.PathEscape.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrBundleNotFound), errors.Is(err, ErrEntryNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnsupportedType):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
