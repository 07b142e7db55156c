package handlers

import (
	"context"
	"log"
	"time"

	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/app/dto"
	businessflow "github.com/ClaudsFalse/fullStackNanodegree-Fyyur/business_flow"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type ShowHandlerInterface interface {
	ListShows(c fiber.Ctx) error
	CreateShow(c fiber.Ctx) error
}

type ShowHandler struct {
	flow      businessflow.ShowFlow
	validator *validator.Validate
}

func NewShowHandler(flow businessflow.ShowFlow) *ShowHandler {
	v := validator.New()
	registerDirectoryValidations(v)
	return &ShowHandler{flow: flow, validator: v}
}

func (h *ShowHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error:   dto.ErrorDetail{Code: errorCode, Details: details},
	})
}

func (h *ShowHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{Success: true, Message: message, Data: data})
}

// ListShows returns every booking with venue and artist joined in
// @Summary List Shows
// @Tags Shows
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListShowsResponse}
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/shows [get]
func (h *ShowHandler) ListShows(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.ListShows(h.createRequestContext(c, "/api/v1/shows"), metadata)
	if err != nil {
		log.Println("List shows failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list shows", "LIST_SHOWS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Shows retrieved successfully", res)
}

// CreateShow books an artist at a venue for a start time
// @Summary Create Show
// @Tags Shows
// @Accept json
// @Produce json
// @Param request body dto.CreateShowRequest true "Create show payload"
// @Success 201 {object} dto.APIResponse{data=dto.CreateShowResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/shows [post]
func (h *ShowHandler) CreateShow(c fiber.Ctx) error {
	var req dto.CreateShowRequest
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
	res, err := h.flow.CreateShow(h.createRequestContext(c, "/api/v1/shows"), &req, metadata)
	if err != nil {
		if businessflow.IsShowVenueMissing(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Venue does not exist", "SHOW_VENUE_MISSING", nil)
		}
		if businessflow.IsShowArtistMissing(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Artist does not exist", "SHOW_ARTIST_MISSING", nil)
		}

		log.Println("Create show failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create show", "CREATE_SHOW_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, res.Message, res)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *ShowHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *ShowHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get(businessflow.RequestIDKey))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)

	return ctx
}
