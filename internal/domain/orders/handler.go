package orders

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
	g := api.Group("/orders", auth.RequireRole("patient"))
	g.POST("", h.CreateOrder)
	g.GET("", h.ListOrders)
	g.DELETE("/:orderId", h.CancelOrder)
}

func patientID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(auth.UserIDFromContext(c.Request().Context()))
}

type orderLineRequest struct {
	MedicineID uuid.UUID `json:"medicine_id"`
	Quantity   int       `json:"quantity"`
}

type createOrderRequest struct {
	PatientName   string             `json:"patient_name"`
	Address       string             `json:"address"`
	MobileNumber  string             `json:"mobile_number"`
	Medicines     []orderLineRequest `json:"medicines"`
	PaidAmount    float64            `json:"paid_amount"`
	PaymentMethod string             `json:"payment_method"`
}

func (h *Handler) CreateOrder(c echo.Context) error {
	pid, err := patientID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lines := make([]Line, 0, len(req.Medicines))
	for _, m := range req.Medicines {
		lines = append(lines, Line{MedicineID: m.MedicineID, Quantity: m.Quantity})
	}

	order, err := h.svc.Create(c.Request().Context(), CreateInput{
		PatientID:     pid,
		PatientName:   req.PatientName,
		Address:       req.Address,
		MobileNumber:  req.MobileNumber,
		Lines:         lines,
		PaidAmount:    req.PaidAmount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *Handler) ListOrders(c echo.Context) error {
	pid, err := patientID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	list, err := h.svc.ListByPatient(c.Request().Context(), pid)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) CancelOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	order, err := h.svc.Cancel(c.Request().Context(), orderID)
	if err != nil {
		return echo.NewHTTPError(apperr.HTTPStatus(err), apperr.ClientMessage(err))
	}
	return c.JSON(http.StatusOK, order)
}
