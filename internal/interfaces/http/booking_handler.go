package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rental-fleet-api/internal/application/dto"
	"github.com/jhoicas/rental-fleet-api/internal/application/ledger"
	"github.com/jhoicas/rental-fleet-api/internal/application/usecase"
)

// BookingHandler maneja las peticiones HTTP para reservas y pagos (protegido).
// Las mutaciones van al núcleo de reservas; las lecturas al caso de uso de
// consulta.
type BookingHandler struct {
	ledger *ledger.Service
	query  *usecase.BookingQueryUseCase
}

// NewBookingHandler construye el handler.
func NewBookingHandler(ledger *ledger.Service, query *usecase.BookingQueryUseCase) *BookingHandler {
	return &BookingHandler{ledger: ledger, query: query}
}

// Create godoc
// @Summary      Crear reserva
// @Tags         bookings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookingRequest  true  "cliente, vehículo y rango de fechas"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	// Las fechas ya pasaron la validación de formato del DTO.
	start, _ := time.Parse(dto.DateLayout, in.StartDate)
	end, _ := time.Parse(dto.DateLayout, in.EndDate)

	booking, err := h.ledger.CreateBooking(c.Context(), ledger.CreateBookingInput{
		CustomerID: in.CustomerID,
		VehicleID:  in.VehicleID,
		StartDate:  start,
		EndDate:    end,
		EmployeeID: GetUsername(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.BookingToResponse(booking))
}

// List godoc
// @Summary      Listar reservas
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BookingResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	out, err := h.query.ListBookings()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener reserva por ID
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.BookingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.query.GetBooking(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Quote godoc
// @Summary      Importe esperado de una reserva (días × tarifa congelada)
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/quote [get]
func (h *BookingHandler) Quote(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	total, err := h.ledger.Quote(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.QuoteResponse{BookingID: id, Total: total})
}

// ProcessPayment godoc
// @Summary      Registrar el pago de una reserva activa
// @Tags         bookings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la reserva"
// @Param        body  body  dto.ProcessPaymentRequest  true  "monto, método y fecha"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bookings/{id}/payments [post]
func (h *BookingHandler) ProcessPayment(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ProcessPaymentRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	paymentDate, _ := time.Parse(dto.DateLayout, in.PaymentDate)

	payment, err := h.ledger.ProcessPayment(c.Context(), ledger.ProcessPaymentInput{
		BookingID:   id,
		Amount:      in.Amount,
		Method:      in.Method,
		PaymentDate: paymentDate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.PaymentToResponse(payment))
}

// ListPayments godoc
// @Summary      Listar todos los pagos
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentResponse
// @Router       /api/payments [get]
func (h *BookingHandler) ListPayments(c *fiber.Ctx) error {
	out, err := h.query.ListPayments()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
