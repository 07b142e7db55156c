package handlers

import (
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/app/dto"
	"github.com/ClaudsFalse/fullStackNanodegree-Fyyur/models"
	"github.com/gofiber/fiber/v3"
)

type LookupHandlerInterface interface {
	ListGenres(c fiber.Ctx) error
	ListStates(c fiber.Ctx) error
}

// LookupHandler serves the form vocabularies
type LookupHandler struct{}

func NewLookupHandler() *LookupHandler {
	return &LookupHandler{}
}

// ListGenres returns the canonical genre vocabulary
// @Summary List Genres
// @Tags Lookups
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListGenresResponse}
// @Router /api/v1/genres [get]
func (h *LookupHandler) ListGenres(c fiber.Ctx) error {
	genres := make([]string, len(models.Genres))
	copy(genres, models.Genres)
	return c.Status(fiber.StatusOK).JSON(dto.APIResponse{
		Success: true,
		Message: "Genres retrieved successfully",
		Data: dto.ListGenresResponse{
			Message: "Genres retrieved successfully",
			Genres:  genres,
		},
	})
}

// ListStates returns the accepted US state and territory codes
// @Summary List States
// @Tags Lookups
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ListStatesResponse}
// @Router /api/v1/states [get]
func (h *LookupHandler) ListStates(c fiber.Ctx) error {
	states := make([]string, len(models.States))
	copy(states, models.States)
	return c.Status(fiber.StatusOK).JSON(dto.APIResponse{
		Success: true,
		Message: "States retrieved successfully",
		Data: dto.ListStatesResponse{
			Message: "States retrieved successfully",
			States:  states,
		},
	})
}
