package api

import (
	"errors"
	"net/http"
	"strconv"

	"reserva/internal/domain/booking"
	reqdto "reserva/internal/handler/dto/request"
	resdto "reserva/internal/handler/dto/response"
	"reserva/internal/handler/httperr"
	"reserva/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary List bookings
// @Description List bookings ordered by creation time, newest first
// @Tags bookings
// @Produce json
// @Param limit query int false "Max items (default 100, max 500)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 500 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var limit int32
	if v := c.Query("limit"); v != "" {
		iv, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = int32(iv)
	}

	items, err := h.bookingUseCase.List(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingList(items))
}

// @Summary Create booking
// @Description Create a booking if the requested window is free; conflicting windows return 409
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	created, err := h.bookingUseCase.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidBookingInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		case errors.Is(err, usecase.ErrUnknownResource):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking references an unknown resource", nil)
		case errors.Is(err, usecase.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking window overlaps an active booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary Start booking
// @Description Move a booking to ONGOING and stamp started_at
// @Tags bookings
// @Produce json
// @Security SessionCookie
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/start [post]
func (h *BookingHandler) Start(c *gin.Context) {
	h.transition(c, booking.TransitionStart)
}

// @Summary Finish booking
// @Description Move a booking to SUCCESS and stamp ended_at
// @Tags bookings
// @Produce json
// @Security SessionCookie
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/finish [post]
func (h *BookingHandler) Finish(c *gin.Context) {
	h.transition(c, booking.TransitionFinish)
}

// @Summary Cancel booking
// @Description Move a booking to CANCEL and stamp canceled_at
// @Tags bookings
// @Produce json
// @Security SessionCookie
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, booking.TransitionCancel)
}

func (h *BookingHandler) transition(c *gin.Context, tr booking.Transition) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	updated, err := h.bookingUseCase.Transition(c.Request.Context(), id, tr)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, usecase.ErrBookingFinalized):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already in a terminal state", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(updated))
}
