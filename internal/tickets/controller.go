package tickets

import (
	"errors"
	"net/http"

	"skybook/internal/flights"
	"skybook/internal/payments"
	"skybook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func actor(ctx *gin.Context) (string, bool, bool) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		return "", false, false
	}
	role, _ := ctx.Get("user_role")
	isAdmin := role == "ADMIN"
	return userID.(string), isAdmin, true
}

// respondError maps engine errors onto HTTP status codes.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTicketNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Ticket not found", nil, nil)
	case errors.Is(err, flights.ErrFlightNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Flight not found", nil, nil)
	case errors.Is(err, payments.ErrCardNotFound):
		response.RespondJSON(ctx, "error", http.StatusNotFound, "Card not found", nil, nil)
	case errors.Is(err, ErrNotTicketOwner):
		response.RespondJSON(ctx, "error", http.StatusForbidden, "Ticket belongs to another user", nil, nil)
	case errors.Is(err, ErrCapacityExhausted):
		response.RespondJSON(ctx, "error", http.StatusConflict, "No seats remain in the requested class", nil, nil)
	case errors.Is(err, ErrDuplicatePassenger):
		response.RespondJSON(ctx, "error", http.StatusConflict, "A passenger already holds an active ticket on this flight", nil, nil)
	case errors.Is(err, ErrWaitlistFull):
		response.RespondJSON(ctx, "error", http.StatusConflict, "The waitlist for this flight is full", nil, nil)
	case errors.Is(err, ErrSeatTaken):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Seat is already taken", nil, nil)
	case errors.Is(err, ErrInvalidSeat):
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Seat code is not valid for this class", nil, nil)
	case errors.Is(err, ErrAlreadyCancelled):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Ticket is already cancelled", nil, nil)
	case errors.Is(err, ErrNotWaitlisted):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Ticket is not waitlisted", nil, nil)
	case errors.Is(err, ErrNotPending):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Ticket is not awaiting payment", nil, nil)
	case errors.Is(err, ErrClassChangeLocked):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Seat class cannot change on a confirmed ticket", nil, nil)
	case errors.Is(err, ErrTicketLimitReached):
		response.RespondJSON(ctx, "error", http.StatusConflict, "Ticket limit reached for this flight", nil, nil)
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Operation failed", nil, nil)
	}
}

func (c *Controller) BookFlight(ctx *gin.Context) {
	userID, _, ok := actor(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req BookFlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.BookFlight(ctx.Request.Context(), userID, ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	msg := "Tickets booked successfully"
	if resp.Waitlisted {
		msg = "Flight is full; passengers added to the waitlist"
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, msg, resp, nil)
}

func (c *Controller) GetTicket(ctx *gin.Context) {
	userID, isAdmin, ok := actor(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	resp, err := c.service.GetTicket(ctx.Request.Context(), userID, isAdmin, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket retrieved successfully", resp, nil)
}

func (c *Controller) ListMyTickets(ctx *gin.Context) {
	userID, _, ok := actor(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	resp, err := c.service.ListMyTickets(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tickets retrieved successfully", resp, nil)
}

func (c *Controller) ListFlightTickets(ctx *gin.Context) {
	resp, err := c.service.ListFlightTickets(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Tickets retrieved successfully", resp, nil)
}

func (c *Controller) ListWaitlist(ctx *gin.Context) {
	resp, err := c.service.ListWaitlist(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Waitlist retrieved successfully", resp, nil)
}

func (c *Controller) GetSeatAvailability(ctx *gin.Context) {
	resp, err := c.service.GetSeatAvailability(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat availability retrieved successfully", resp, nil)
}

func (c *Controller) EditTicket(ctx *gin.Context) {
	userID, isAdmin, ok := actor(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req EditTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.EditTicket(ctx.Request.Context(), userID, isAdmin, ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket updated successfully", resp, nil)
}

func (c *Controller) PayTicket(ctx *gin.Context) {
	userID, isAdmin, ok := actor(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req PayTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	resp, err := c.service.PayTicket(ctx.Request.Context(), userID, isAdmin, ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket paid successfully", resp, nil)
}

func (c *Controller) CancelTicket(ctx *gin.Context) {
	userID, isAdmin, ok := actor(ctx)
	if !ok {
		response.RespondJSON(ctx, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CancelTicketRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
			return
		}
		if err := c.validator.Struct(&req); err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
			return
		}
	}

	resp, err := c.service.CancelTicket(ctx.Request.Context(), userID, isAdmin, ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket cancelled successfully", resp, nil)
}

func (c *Controller) PromoteTicket(ctx *gin.Context) {
	resp, err := c.service.PromoteTicket(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket promoted successfully", resp, nil)
}

func (c *Controller) DeleteTicket(ctx *gin.Context) {
	if err := c.service.DeleteTicket(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Ticket deleted successfully", nil, nil)
}
