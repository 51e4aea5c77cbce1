package prescription

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medcart/medcart/internal/platform/apperr"
	"github.com/medcart/medcart/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/prescriptions", auth.RequireRole("patient"))
	g.GET("/payable", h.GetPayable)
	g.POST("/:id/pay", h.Pay)
}

func (h *Handler) GetPayable(c echo.Context) error {
	pid, err := uuid.Parse(auth.UserIDFromContext(c.Request().Context()))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	list, err := h.svc.PayableByPatient(c.Request().Context(), pid)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) Pay(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid prescription id")
	}
	if err := h.svc.MarkPaid(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "prescription paid"})
}
