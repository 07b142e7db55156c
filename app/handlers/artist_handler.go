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

type ArtistHandlerInterface interface {
	ListArtists(c fiber.Ctx) error
	SearchArtists(c fiber.Ctx) error
	GetArtist(c fiber.Ctx) error
	GetArtistEditForm(c fiber.Ctx) error
	CreateArtist(c fiber.Ctx) error
	UpdateArtist(c fiber.Ctx) error
	DeleteArtist(c fiber.Ctx) error
}

type ArtistHandler struct {
	flow      businessflow.ArtistFlow
	validator *validator.Validate
}

func NewArtistHandler(flow businessflow.ArtistFlow) *ArtistHandler {
	v := validator.New()
	registerDirectoryValidations(v)
	return &ArtistHandler{flow: flow, validator: v}
}

func (h *ArtistHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error:   dto.ErrorDetail{Code: errorCode, Details: details},
	})
}

func (h *ArtistHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{Success: true, Message: message, Data: data})
}

// ListArtists returns every artist as a flat summary list
// @Summary List Artists
// @Tags Artists
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListArtistsResponse}
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/artists [get]
func (h *ArtistHandler) ListArtists(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.ListArtists(h.createRequestContext(c, "/api/v1/artists"), metadata)
	if err != nil {
		log.Println("List artists failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list artists", "LIST_ARTISTS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Artists retrieved successfully", res)
}

// SearchArtists returns artists whose name contains the search term
// @Summary Search Artists
// @Tags Artists
// @Accept json
// @Produce json
// @Param request body dto.SearchArtistsRequest true "Search payload"
// @Success 200 {object} dto.APIResponse{data=dto.SearchArtistsResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/artists/search [post]
func (h *ArtistHandler) SearchArtists(c fiber.Ctx) error {
	var req dto.SearchArtistsRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.SearchArtists(h.createRequestContext(c, "/api/v1/artists/search"), &req, metadata)
	if err != nil {
		log.Println("Search artists failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search artists", "SEARCH_ARTISTS_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Artists searched successfully", res)
}

// GetArtist returns an artist's detail view with past and upcoming shows
// @Summary Get Artist
// @Tags Artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} dto.APIResponse{data=dto.GetArtistResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/artists/{id} [get]
func (h *ArtistHandler) GetArtist(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID", "INVALID_ARTIST_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.GetArtist(h.createRequestContext(c, "/api/v1/artists/"+idStr), uint(id), metadata)
	if err != nil {
		if businessflow.IsArtistNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Artist not found", "ARTIST_NOT_FOUND", nil)
		}

		log.Println("Get artist failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get artist", "GET_ARTIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Artist retrieved successfully", res)
}

// GetArtistEditForm returns the editable fields of an artist for form prefill
// @Summary Get Artist Edit Form
// @Tags Artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} dto.APIResponse{data=dto.GetArtistEditFormResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/artists/{id}/edit [get]
func (h *ArtistHandler) GetArtistEditForm(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID", "INVALID_ARTIST_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.GetArtistEditForm(h.createRequestContext(c, "/api/v1/artists/"+idStr+"/edit"), uint(id), metadata)
	if err != nil {
		if businessflow.IsArtistNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Artist not found", "ARTIST_NOT_FOUND", nil)
		}

		log.Println("Get artist edit form failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get artist", "GET_ARTIST_EDIT_FORM_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Artist retrieved successfully", res)
}

// CreateArtist records a new artist from a full form submission
// @Summary Create Artist
// @Tags Artists
// @Accept json
// @Produce json
// @Param request body dto.CreateArtistRequest true "Create artist payload"
// @Success 201 {object} dto.APIResponse{data=dto.CreateArtistResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/artists [post]
func (h *ArtistHandler) CreateArtist(c fiber.Ctx) error {
	var req dto.CreateArtistRequest
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
	res, err := h.flow.CreateArtist(h.createRequestContext(c, "/api/v1/artists"), &req, metadata)
	if err != nil {
		if ve, ok := businessflow.AsValidationError(err); ok {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", ve.Fields)
		}

		log.Println("Create artist failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create artist", "CREATE_ARTIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, res.Message, res)
}

// UpdateArtist overwrites every editable field of an existing artist
// @Summary Update Artist
// @Tags Artists
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Param request body dto.CreateArtistRequest true "Update artist payload"
// @Success 200 {object} dto.APIResponse{data=dto.UpdateArtistResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/artists/{id} [put]
func (h *ArtistHandler) UpdateArtist(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID", "INVALID_ARTIST_ID", nil)
	}

	var req dto.UpdateArtistRequest
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
	res, err := h.flow.UpdateArtist(h.createRequestContext(c, "/api/v1/artists/"+idStr), &req, metadata)
	if err != nil {
		if ve, ok := businessflow.AsValidationError(err); ok {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", ve.Fields)
		}
		if businessflow.IsArtistNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Artist not found", "ARTIST_NOT_FOUND", nil)
		}

		log.Println("Update artist failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update artist", "UPDATE_ARTIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, res.Message, res)
}

// DeleteArtist removes an artist together with every show booked for it
// @Summary Delete Artist
// @Tags Artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteArtistResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 500 {object} dto.APIResponse
// @Router /api/v1/artists/{id} [delete]
func (h *ArtistHandler) DeleteArtist(c fiber.Ctx) error {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID", "INVALID_ARTIST_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	res, err := h.flow.DeleteArtist(h.createRequestContext(c, "/api/v1/artists/"+idStr), uint(id), metadata)
	if err != nil {
		if businessflow.IsArtistNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Artist not found", "ARTIST_NOT_FOUND", nil)
		}

		log.Println("Delete artist failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete artist", "DELETE_ARTIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, res.Message, res)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *ArtistHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return h.createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

func (h *ArtistHandler) createRequestContextWithTimeout(c fiber.Ctx, endpoint string, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	ctx = context.WithValue(ctx, utils.RequestIDKey, c.Get(businessflow.RequestIDKey))
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get("User-Agent"))
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	ctx = context.WithValue(ctx, utils.TimeoutKey, timeout)
	ctx = context.WithValue(ctx, utils.CancelFuncKey, cancel)

	return ctx
}
