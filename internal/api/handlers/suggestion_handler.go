package handlers

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/internal/api/presenters"
	"FamilyPantry-Backend/pkg/suggestion"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SuggestionHandler interface {
		GenerateSuggestions(c *fiber.Ctx) error
	}

	suggestionHandler struct {
		suggestionService suggestion.SuggestionService
		validator         *validator.Validate
	}
)

func NewSuggestionHandler(suggestionService suggestion.SuggestionService, validator *validator.Validate) SuggestionHandler {
	return &suggestionHandler{
		suggestionService: suggestionService,
		validator:         validator,
	}
}

func (h *suggestionHandler) GenerateSuggestions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	houseID := c.Params("houseId")
	req := new(domain.GenerateSuggestionsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, err)
	}

	res, err := h.suggestionService.GenerateSuggestions(c.Context(), houseID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetSuggestions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}
