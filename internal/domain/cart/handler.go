package cart

import (
	"net/http"
	"strconv"

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
	g := api.Group("/cart", auth.RequireRole("patient"))
	g.GET("", h.GetCart)
	g.GET("/stock", h.GetCartStock)
	g.POST("", h.AddToCart)
	g.PUT("/:medicineId/:newQuantity", h.ChangeQuantity)
	g.DELETE("/:itemId", h.RemoveItem)
	g.DELETE("", h.ClearCart)
}

func patientID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(auth.UserIDFromContext(c.Request().Context()))
}

type addToCartRequest struct {
	MedicineID uuid.UUID `json:"medicine_id"`
	Quantity   int       `json:"quantity"`
	OTC        bool      `json:"otc"`
}

func (h *Handler) AddToCart(c echo.Context) error {
	pid, err := patientID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.MedicineID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "medicine_id is required")
	}
	if err := h.svc.AddToCart(c.Request().Context(), pid, req.MedicineID, req.Quantity, req.OTC); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "added to cart"})
}

func (h *Handler) GetCart(c echo.Context) error {
	pid, err := patientID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	items, err := h.svc.Items(c.Request().Context(), pid)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetCartStock(c echo.Context) error {
	pid, err := patientID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	quantities, err := h.svc.Stock(c.Request().Context(), pid)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"available_quantities": quantities})
}

func (h *Handler) ChangeQuantity(c echo.Context) error {
	pid, err := patientID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	medicineID, err := uuid.Parse(c.Param("medicineId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid medicine id")
	}
	newQuantity, err := strconv.Atoi(c.Param("newQuantity"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must be a positive number")
	}
	if err := h.svc.ChangeQuantity(c.Request().Context(), pid, medicineID, newQuantity); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "quantity updated"})
}

func (h *Handler) RemoveItem(c echo.Context) error {
	pid, err := patientID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	medicineID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	if err := h.svc.RemoveItem(c.Request().Context(), pid, medicineID); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "item removed from cart"})
}

func (h *Handler) ClearCart(c echo.Context) error {
	pid, err := patientID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	if err := h.svc.Clear(c.Request().Context(), pid); err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "cart cleared"})
}
