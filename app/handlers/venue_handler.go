package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/app/dto"
	businessflow "github.com/ClaudsFalse/fullStackNanodegree-Fyyur/business_flow"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type VenueHandlerInterface interface {
	ListVenues(c fiber.Ctx) error
	SearchVenues(c fiber.Ctx) error
	GetVenue(c fiber.Ctx) error
	GetVenueEditForm(c fiber.Ctx) error
	CreateVenue(c fiber.Ctx) error
	UpdateVenue(c fiber.Ctx) error
	DeleteVenue(c fiber.Ctx) error
}

type VenueHandler struct {
	flow      businessflow.VenueFlow
	validator *validator.Validate
}

func NewVenueHandler(flow businessflow.VenueFlow) *VenueHandler {
	v := validator.New()
	registerDirectoryValidations(v)
	return &VenueHandler{flow: flow, validator: v}
}

func (h *VenueHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error:   dto.ErrorDetail{Code: errorCode, Details: details},
	})
}

func (h *VenueHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{Success: true, Message: message, Data: data})
}

// ListVenues returns every venue grouped by city and state
// @Summary List Venues
// @Tags Venues
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListVenuesResponse}
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/venues [get]
func (h *VenueHandler) ListVenues(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.ListVenues(h.createRequestContext(c, "/api/v1/venues"), metadata)
	if err != nil {
		log.Println("List venues failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list venues", "LIST_VENUES_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Venues retrieved successfully", res)
}

// SearchVenues returns venues whose name contains the search term
// @Summary Search Venues
// @Tags Venues
// @Accept json
// @Produce json
// @Param request body dto.SearchVenuesRequest true "Search payload"
// @Success 200 {object} dto.APIResponse{data=dto.SearchVenuesResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/venues/search [post]
func (h *VenueHandler) SearchVenues(c fiber.Ctx) error {
	var req dto.SearchVenuesRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.SearchVenues(h.createRequestContext(c, "/api/v1/venues/search"), &req, metadata)
	if err != nil {
		log.Println("Search venues failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search venues", "SEARCH_VENUES_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Venues searched successfully", res)
}

// GetVenue returns a venue's detail view with past and upcoming shows
// @Summary Get Venue
// @Tags Venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} dto.APIResponse{data=dto.GetVenueResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/venues/{id} [get]
func (h *VenueHandler) GetVenue(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID", "INVALID_VENUE_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.GetVenue(h.createRequestContext(c, "/api/v1/venues/"+idStr), uint(id), metadata)
	if err != nil {
		if businessflow.IsVenueNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Venue not found", "VENUE_NOT_FOUND", nil)
		}

		log.Println("Get venue failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get venue", "GET_VENUE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Venue retrieved successfully", res)
}

// GetVenueEditForm returns the editable fields of a venue for form prefill
// @Summary Get Venue Edit Form
// @Tags Venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} dto.APIResponse{data=dto.GetVenueEditFormResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/venues/{id}/edit [get]
func (h *VenueHandler) GetVenueEditForm(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID", "INVALID_VENUE_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.GetVenueEditForm(h.createRequestContext(c, "/api/v1/venues/"+idStr+"/edit"), uint(id), metadata)
	if err != nil {
		if businessflow.IsVenueNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Venue not found", "VENUE_NOT_FOUND", nil)
		}

		log.Println("Get venue edit form failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get venue", "GET_VENUE_EDIT_FORM_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Venue retrieved successfully", res)
}

// CreateVenue records a new venue from a full form submission
// @Summary Create Venue
// @Tags Venues
// @Accept json
// @Produce json
// @Param request body dto.CreateVenueRequest true "Create venue payload"
// @Success 201 {object} dto.APIResponse{data=dto.CreateVenueResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/venues [post]
func (h *VenueHandler) CreateVenue(c fiber.Ctx) error {
	var req dto.CreateVenueRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.CreateVenue(h.createRequestContext(c, "/api/v1/venues"), &req, metadata)
	if err != nil {
		if ve, ok := businessflow.AsValidationError(err); ok {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", ve.Fields)
		}

		log.Println("Create venue failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create venue", "CREATE_VENUE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, res.Message, res)
}

// UpdateVenue overwrites every editable field of an existing venue
// @Summary Update Venue
// @Tags Venues
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param request body dto.CreateVenueRequest true "Update venue payload"
// @Success 200 {object} dto.APIResponse{data=dto.UpdateVenueResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/venues/{id} [put]
func (h *VenueHandler) UpdateVenue(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID", "INVALID_VENUE_ID", nil)
	}

	var req dto.UpdateVenueRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}
	req.ID = uint(id)

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.UpdateVenue(h.createRequestContext(c, "/api/v1/venues/"+idStr), &req, metadata)
	if err != nil {
		if ve, ok := businessflow.AsValidationError(err); ok {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", ve.Fields)
		}
		if businessflow.IsVenueNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Venue not found", "VENUE_NOT_FOUND", nil)
		}

		log.Println("Update venue failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update venue", "UPDATE_VENUE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, res.Message, res)
}

// DeleteVenue removes a venue together with every show booked at it
// @Summary Delete Venue
// @Tags Venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteVenueResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/venues/{id} [delete]
func (h *VenueHandler) DeleteVenue(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID", "INVALID_VENUE_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.DeleteVenue(h.createRequestContext(c, "/api/v1/venues/"+idStr), uint(id), metadata)
	if err != nil {
		if businessflow.IsVenueNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Venue not found", "VENUE_NOT_FOUND", nil)
		}

		log.Println("Delete venue failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete venue", "DELETE_VENUE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, res.Message, res)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *VenueHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

// createRequestContextWithTimeout creates a context with custom timeout and request-scoped values
func (h *VenueHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get(businessflow.RequestIDKey))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)

	return ctx
}
