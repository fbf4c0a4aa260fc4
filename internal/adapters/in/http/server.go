// Package http exposes the booking API over Echo. Handlers translate JSON
// requests into command and query objects and map domain errors onto HTTP
// status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/pkg/errs"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator echo binds request bodies with.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the bound request struct against its validate tags.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createBookingHandler     commands.CreateBookingCommandHandler
	transitionItemHandler    commands.TransitionOrderItemCommandHandler
	cancelBookingHandler     commands.CancelBookingCommandHandler
	rescheduleBookingHandler commands.RescheduleBookingCommandHandler
	createPartnerHandler     commands.CreatePartnerCommandHandler

	getBookingHandler         queries.GetBookingQueryHandler
	getUnassignedItemsHandler queries.GetUnassignedItemsQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createBookingHandler commands.CreateBookingCommandHandler,
	transitionItemHandler commands.TransitionOrderItemCommandHandler,
	cancelBookingHandler commands.CancelBookingCommandHandler,
	rescheduleBookingHandler commands.RescheduleBookingCommandHandler,
	createPartnerHandler commands.CreatePartnerCommandHandler,
	getBookingHandler queries.GetBookingQueryHandler,
	getUnassignedItemsHandler queries.GetUnassignedItemsQueryHandler,
) *Server {
	return &Server{
		createBookingHandler:      createBookingHandler,
		transitionItemHandler:     transitionItemHandler,
		cancelBookingHandler:      cancelBookingHandler,
		rescheduleBookingHandler:  rescheduleBookingHandler,
		createPartnerHandler:      createPartnerHandler,
		getBookingHandler:         getBookingHandler,
		getUnassignedItemsHandler: getUnassignedItemsHandler,
	}
}

// RegisterRoutes mounts all booking API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/bookings", s.CreateBooking)
	api.GET("/bookings/:id", s.GetBooking)
	api.POST("/bookings/:id/cancel", s.CancelBooking)
	api.POST("/bookings/:id/reschedule", s.RescheduleBooking)

	api.POST("/items/:id/transition", s.TransitionOrderItem)
	api.GET("/items/unassigned", s.GetUnassignedItems)

	api.POST("/partners", s.CreatePartner)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrBusinessRuleViolated),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNoItemsRequested):
		code = http.StatusBadRequest
	}
	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, msg string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Code: http.StatusBadRequest, Message: msg})
}

type bookingItemRequest struct {
	ServiceID string `json:"serviceId" validate:"required,uuid"`
	VariantID string `json:"variantId" validate:"omitempty,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type createBookingRequest struct {
	CustomerID    string               `json:"customerId" validate:"required,uuid"`
	AddressLabel  string               `json:"addressLabel"`
	AddressText   string               `json:"addressText" validate:"required"`
	AddressArea   string               `json:"addressArea"`
	Lat           *float64             `json:"lat"`
	Lng           *float64             `json:"lng"`
	Kind          string               `json:"kind" validate:"required,oneof=ASAP SCHEDULED SOS"`
	ScheduledDate string               `json:"scheduledDate" validate:"omitempty,datetime=2006-01-02"`
	ScheduledTime string               `json:"scheduledTime"`
	Items         []bookingItemRequest `json:"items" validate:"required,min=1,dive"`
	DiscountCents int64                `json:"discountCents" validate:"gte=0"`
}

type createBookingResponse struct {
	ID string `json:"id"`
}

// CreateBooking handles POST /api/v1/bookings - the checkout endpoint.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var req createBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	kind, err := booking.KindFromString(req.Kind)
	if err != nil {
		return writeError(ctx, err)
	}

	var scheduledDate *time.Time
	if req.ScheduledDate != "" {
		date, parseErr := time.Parse("2006-01-02", req.ScheduledDate)
		if parseErr != nil {
			return badRequest(ctx, "invalid scheduled date")
		}
		scheduledDate = &date
	}

	items := make([]commands.CreateBookingItem, 0, len(req.Items))
	for _, it := range req.Items {
		serviceID, itemErr := kernel.UUIDFromString(it.ServiceID)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		item := commands.CreateBookingItem{
			ItemID:    kernel.NewUUID(),
			ServiceID: serviceID,
			Quantity:  it.Quantity,
		}
		if it.VariantID != "" {
			variantID, variantErr := kernel.UUIDFromString(it.VariantID)
			if variantErr != nil {
				return writeError(ctx, variantErr)
			}
			item.VariantID = &variantID
		}
		items = append(items, item)
	}

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		bookingID, customerID,
		req.AddressLabel, req.AddressText, req.AddressArea,
		req.Lat, req.Lng,
		kind, scheduledDate, req.ScheduledTime,
		items, req.DiscountCents)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, createBookingResponse{ID: bookingID.String()})
}

// GetBooking handles GET /api/v1/bookings/:id - the booking detail view.
func (s *Server) GetBooking(ctx echo.Context) error {
	bookingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetBookingQuery(bookingID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getBookingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]bookingItemView, 0, len(view.Items))
	for _, it := range view.Items {
		item := bookingItemView{
			ID:          it.ID.String(),
			ServiceName: it.ServiceName,
			VariantName: it.VariantName,
			Status:      it.Status,
			Quantity:    it.Quantity,
			PriceCents:  it.PriceCents,
			PartnerName: it.PartnerName,
		}
		if it.PartnerID != nil {
			id := it.PartnerID.String()
			item.PartnerID = &id
		}
		items = append(items, item)
	}

	return ctx.JSON(http.StatusOK, bookingView{
		ID:            view.ID.String(),
		Number:        view.Number,
		Kind:          view.Kind,
		Status:        view.Status,
		PaymentStatus: view.PaymentStatus,
		AddressText:   view.AddressText,
		TotalCents:    view.TotalCents,
		Items:         items,
	})
}

type bookingItemView struct {
	ID          string  `json:"id"`
	ServiceName string  `json:"serviceName"`
	VariantName string  `json:"variantName,omitempty"`
	Status      string  `json:"status"`
	Quantity    int     `json:"quantity"`
	PriceCents  int64   `json:"priceCents"`
	PartnerID   *string `json:"partnerId,omitempty"`
	PartnerName string  `json:"partnerName,omitempty"`
}

type bookingView struct {
	ID            string            `json:"id"`
	Number        string            `json:"number"`
	Kind          string            `json:"kind"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"paymentStatus"`
	AddressText   string            `json:"addressText"`
	TotalCents    int64             `json:"totalCents"`
	Items         []bookingItemView `json:"items"`
}

type actorRequest struct {
	Role string `json:"role" validate:"required,oneof=CUSTOMER PARTNER ADMIN SYSTEM"`
	ID   string `json:"id" validate:"required"`
}

func (r actorRequest) toDomain() orderitem.Actor {
	return orderitem.Actor{Role: orderitem.Role(r.Role), ID: r.ID}
}

type cancelBookingRequest struct {
	Actor  actorRequest `json:"actor" validate:"required"`
	Reason string       `json:"reason" validate:"required"`
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel.
func (s *Server) CancelBooking(ctx echo.Context) error {
	bookingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req cancelBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCancelBookingCommand(bookingID, req.Actor.toDomain(), req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

type rescheduleBookingRequest struct {
	Date  string       `json:"date" validate:"required,datetime=2006-01-02"`
	Time  string       `json:"time" validate:"required"`
	Actor actorRequest `json:"actor" validate:"required"`
}

// RescheduleBooking handles POST /api/v1/bookings/:id/reschedule.
func (s *Server) RescheduleBooking(ctx echo.Context) error {
	bookingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req rescheduleBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return badRequest(ctx, "invalid date")
	}

	cmd, err := commands.NewRescheduleBookingCommand(bookingID, date, req.Time, req.Actor.toDomain())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.rescheduleBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

type transitionItemRequest struct {
	Target     string       `json:"target" validate:"required"`
	Actor      actorRequest `json:"actor" validate:"required"`
	OTP        string       `json:"otp"`
	HoldReason string       `json:"holdReason"`
	HoldRemark string       `json:"holdRemark"`
}

// TransitionOrderItem handles POST /api/v1/items/:id/transition - every
// lifecycle move of an order item, OTP-gated where the target demands it.
func (s *Server) TransitionOrderItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req transitionItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	target, err := orderitem.StatusFromString(req.Target)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderItemCommand(
		itemID, target, req.Actor.toDomain(), req.OTP, req.HoldReason, req.HoldRemark)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.transitionItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

type unassignedItemView struct {
	ItemID        string `json:"itemId"`
	BookingID     string `json:"bookingId"`
	BookingNumber string `json:"bookingNumber"`
	BookingKind   string `json:"bookingKind"`
	ServiceName   string `json:"serviceName"`
	Status        string `json:"status"`
}

// GetUnassignedItems handles GET /api/v1/items/unassigned - the admin view of
// items still waiting for a partner.
func (s *Server) GetUnassignedItems(ctx echo.Context) error {
	query := queries.NewGetUnassignedItemsQuery()

	items, err := s.getUnassignedItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]unassignedItemView, 0, len(items))
	for _, it := range items {
		response = append(response, unassignedItemView{
			ItemID:        it.ItemID.String(),
			BookingID:     it.BookingID.String(),
			BookingNumber: it.BookingNumber,
			BookingKind:   it.BookingKind,
			ServiceName:   it.ServiceName,
			Status:        it.Status,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

type createPartnerRequest struct {
	Name      string   `json:"name" validate:"required"`
	Phone     string   `json:"phone" validate:"required"`
	Email     string   `json:"email" validate:"omitempty,email"`
	Password  string   `json:"password" validate:"required,min=8"`
	Services  []string `json:"services" validate:"required,min=1"`
	RegionIDs []string `json:"regionIds" validate:"omitempty,dive,uuid"`
}

type createPartnerResponse struct {
	PartnerID string `json:"partnerId"`
	AccountID string `json:"accountId"`
}

// CreatePartner handles POST /api/v1/partners - partner onboarding.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var req createPartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	regionIDs := make([]kernel.UUID, 0, len(req.RegionIDs))
	for _, raw := range req.RegionIDs {
		regionID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		regionIDs = append(regionIDs, regionID)
	}

	partnerID := kernel.NewUUID()
	accountID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(
		partnerID, accountID,
		req.Name, req.Phone, req.Email, req.Password,
		req.Services, regionIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, createPartnerResponse{
		PartnerID: partnerID.String(),
		AccountID: accountID.String(),
	})
}
