package handlers

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/internal/api/presenters"
	"FamilyPantry-Backend/pkg/pantry"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PantryHandler interface {
		AddEntry(c *fiber.Ctx) error
		GetPantry(c *fiber.Ctx) error
		ConsumeEntry(c *fiber.Ctx) error
		UnconsumeEntry(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService pantry.PantryService
		validator     *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService: pantryService,
		validator:     validator,
	}
}

func statusForError(err error) int {
	var validationErr *domain.ValidationError
	var lockConflict *domain.LockConflictError

	switch {
	case errors.Is(err, domain.ErrHouseNotFound),
		errors.Is(err, domain.ErrPantryEntryNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrListNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotHouseMember):
		return fiber.StatusForbidden
	case errors.As(err, &lockConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrLockExpired), errors.Is(err, domain.ErrLockNotHeld):
		return fiber.StatusPreconditionFailed
	case errors.Is(err, domain.ErrInvalidItemTransition):
		return fiber.StatusConflict
	case errors.As(err, &validationErr):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusBadRequest
	}
}

func (h *pantryHandler) AddEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	houseID := c.Params("houseId")
	req := new(domain.AddPantryEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryEntry, err)
	}

	res, err := h.pantryService.AddEntry(c.Context(), houseID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddPantryEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPantryEntry)
}

func (h *pantryHandler) GetPantry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	houseID := c.Params("houseId")

	entries, err := h.pantryService.GetPantry(c.Context(), houseID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetPantry, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"entries": entries}, fiber.StatusOK, domain.MessageSuccessGetPantry)
}

func (h *pantryHandler) ConsumeEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	houseID := c.Params("houseId")
	entryID := c.Params("id")
	req := new(domain.ConsumeEntryRequest)

	if err := c.BodyParser(req); err != nil && len(c.Body()) > 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConsumeEntry, err)
	}

	res, err := h.pantryService.ConsumeEntry(c.Context(), houseID, entryID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedConsumeEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessConsumeEntry)
}

func (h *pantryHandler) UnconsumeEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	houseID := c.Params("houseId")
	entryID := c.Params("id")

	res, err := h.pantryService.UnconsumeEntry(c.Context(), houseID, entryID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUnconsumeEntry, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUnconsumeEntry)
}
