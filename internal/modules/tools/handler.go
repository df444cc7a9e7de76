package tools

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"hospitalityhub/internal/domain"
	"hospitalityhub/internal/middleware"
	"hospitalityhub/internal/modules/booking"
	"hospitalityhub/internal/modules/order"
	"hospitalityhub/internal/modules/rooms"
	"hospitalityhub/internal/pkg/response"
	"hospitalityhub/internal/telemetry"
)

// Handler exposes the tool surface over HTTP: a listing endpoint for
// discovery and one invocation endpoint per tool name.
type Handler struct {
	rooms    *rooms.Service
	bookings *booking.Service
	orders   *order.Service
	sink     telemetry.Sink
}

func NewHandler(rooms *rooms.Service, bookings *booking.Service, orders *order.Service, sink telemetry.Sink) *Handler {
	if sink == nil {
		sink = telemetry.Nop{}
	}
	return &Handler{rooms: rooms, bookings: bookings, orders: orders, sink: sink}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/tools", h.List)
	r.POST("/tools/:name", h.Call)
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"tools": Definitions()})
}

func (h *Handler) Call(c *gin.Context) {
	name := c.Param("name")
	start := time.Now()

	result, err := h.dispatch(c, name)

	outcome := telemetry.OutcomeOK
	if err != nil {
		outcome = telemetry.OutcomeError
	}
	h.sink.Record(telemetry.Event{
		Tool:      name,
		RequestID: middleware.GetRequestID(c),
		Outcome:   outcome,
		Duration:  time.Since(start),
		Args:      rawArgs(c),
		Err:       err,
	})

	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) dispatch(c *gin.Context, name string) (any, error) {
	switch name {
	case ToolCheckAvailability:
		return h.checkAvailability(c)
	case ToolCreateBooking:
		return h.createBooking(c)
	case ToolUpdateBooking:
		return h.updateBooking(c)
	case ToolGetMenu:
		return h.getMenu(c)
	case ToolCreateOrder:
		return h.createOrder(c)
	case ToolGetRoomInfo:
		return h.getRoomInfo(c)
	case ToolGetActiveBooking:
		return h.getActiveBooking(c)
	default:
		return nil, domain.NotFound("Tool", name)
	}
}

func (h *Handler) checkAvailability(c *gin.Context) (any, error) {
	var req rooms.AvailabilityRequest
	if err := bindJSON(c, &req); err != nil {
		return nil, err
	}
	available, err := h.rooms.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		return nil, err
	}
	return gin.H{
		"availableRooms": available,
		"totalAvailable": len(available),
		"checkIn":        req.CheckIn,
		"checkOut":       req.CheckOut,
	}, nil
}

func (h *Handler) createBooking(c *gin.Context) (any, error) {
	var req booking.CreateRequest
	if err := bindJSON(c, &req); err != nil {
		return nil, err
	}
	b, err := h.bookings.Create(c.Request.Context(), req)
	if err != nil {
		return nil, err
	}
	return gin.H{"booking": b}, nil
}

func (h *Handler) updateBooking(c *gin.Context) (any, error) {
	var req booking.UpdateRequest
	if err := bindJSON(c, &req); err != nil {
		return nil, err
	}
	b, err := h.bookings.Update(c.Request.Context(), req)
	if err != nil {
		return nil, err
	}
	return gin.H{"booking": b}, nil
}

func (h *Handler) getMenu(c *gin.Context) (any, error) {
	var req order.MenuRequest
	if err := bindJSON(c, &req); err != nil {
		return nil, err
	}
	items, err := h.orders.Menu(c.Request.Context(), req)
	if err != nil {
		return nil, err
	}
	return gin.H{"menu": items, "totalItems": len(items)}, nil
}

func (h *Handler) createOrder(c *gin.Context) (any, error) {
	var req order.CreateRequest
	if err := bindJSON(c, &req); err != nil {
		return nil, err
	}
	o, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		return nil, err
	}
	return gin.H{"order": o}, nil
}

func (h *Handler) getRoomInfo(c *gin.Context) (any, error) {
	var req rooms.RoomInfoRequest
	if err := bindJSON(c, &req); err != nil {
		return nil, err
	}
	room, err := h.rooms.RoomInfo(c.Request.Context(), req.RoomNumber)
	if err != nil {
		return nil, err
	}
	return gin.H{"room": room}, nil
}

func (h *Handler) getActiveBooking(c *gin.Context) (any, error) {
	var req booking.SearchRequest
	if err := bindJSON(c, &req); err != nil {
		return nil, err
	}

	// A lone room number is the common "who is in room N" case and maps to
	// the single-occupant lookup; everything else goes through search.
	if req.RoomNumber != "" && req.GuestName == "" && req.GuestEmail == "" &&
		req.GuestPhone == "" && req.BookingID == "" {
		b, err := h.bookings.ActiveForRoom(c.Request.Context(), req.RoomNumber)
		if err != nil {
			return nil, err
		}
		found := []domain.Booking{}
		if b != nil {
			found = append(found, *b)
		}
		return gin.H{"bookings": found, "total": len(found)}, nil
	}

	found, err := h.bookings.Search(c.Request.Context(), req)
	if err != nil {
		return nil, err
	}
	return gin.H{"bookings": found, "total": len(found)}, nil
}

// bindJSON decodes the request body into out, tolerating an empty body so
// tools whose parameters are all optional can be called without one. The body
// is cached so rawArgs can re-read it for telemetry.
func bindJSON(c *gin.Context, out any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindBodyWith(out, binding.JSON); err != nil {
		return domain.Invalid("", err.Error())
	}
	return nil
}

func rawArgs(c *gin.Context) map[string]any {
	v, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return nil
	}
	raw, ok := v.([]byte)
	if !ok {
		return nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil
	}
	return args
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var (
		validation  *domain.ValidationError
		notFound    *domain.NotFoundError
		unavailable *domain.UnavailableError
		backend     *domain.BackendError
	)
	switch {
	case errors.As(err, &validation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", validation.Error())
	case errors.As(err, &notFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", notFound.Error())
	case errors.As(err, &unavailable):
		response.Error(c, http.StatusConflict, "ITEM_UNAVAILABLE", unavailable.Error())
	case errors.As(err, &backend):
		response.Error(c, http.StatusBadGateway, "BACKEND_ERROR", backend.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
