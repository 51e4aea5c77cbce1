package identity

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medcart/medcart/internal/platform/apperr"
	"github.com/medcart/medcart/internal/platform/auth"
	"github.com/medcart/medcart/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Self-service routes for the authenticated patient.
	me := api.Group("/patients/me", auth.RequireRole("patient"))
	me.GET("/details", h.GetMyDetails)
	me.GET("/delivery-addresses", h.GetDeliveryAddresses)
	me.POST("/delivery-addresses", h.AddDeliveryAddress)

	// Directory administration.
	admin := api.Group("/patients", auth.RequireRole("admin"))
	admin.GET("", h.ListPatients)
	admin.GET("/search", h.SearchPatients)
	admin.GET("/:id", h.GetPatient)
	admin.DELETE("/:id", h.DeletePatient)
}

func currentPatientID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(auth.UserIDFromContext(c.Request().Context()))
}

func (h *Handler) ListPatients(c echo.Context) error {
	p := pagination.FromContext(c)
	list, total, err := h.svc.List(c.Request().Context(), p)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(list, total, p.Limit, p.Offset))
}

func (h *Handler) SearchPatients(c echo.Context) error {
	p := pagination.FromContext(c)
	list, total, err := h.svc.SearchByName(c.Request().Context(), c.QueryParam("name"), p)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(list, total, p.Limit, p.Offset))
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	patient, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, patient)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "patient deleted"})
}

func (h *Handler) GetMyDetails(c echo.Context) error {
	id, err := currentPatientID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	details, err := h.svc.Details(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, details)
}

func (h *Handler) GetDeliveryAddresses(c echo.Context) error {
	id, err := currentPatientID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	addresses, err := h.svc.DeliveryAddresses(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"delivery_addresses": addresses})
}

type addAddressRequest struct {
	Address string `json:"address"`
}

func (h *Handler) AddDeliveryAddress(c echo.Context) error {
	id, err := currentPatientID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var req addAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	addresses, err := h.svc.AddDeliveryAddress(c.Request().Context(), id, req.Address)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"delivery_addresses": addresses})
}
