package handlers

import (
	"FamilyPantry-Backend/domain"
	"FamilyPantry-Backend/internal/api/presenters"
	"FamilyPantry-Backend/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		CreateList(c *fiber.Ctx) error
		GetLists(c *fiber.Ctx) error
		GetListDetail(c *fiber.Ctx) error
		UpdateListStatus(c *fiber.Ctx) error
		AcquireLock(c *fiber.Ctx) error
		ReleaseLock(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		AdjustItemQuantity(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		CheckItem(c *fiber.Ctx) error
		UncheckItem(c *fiber.Ctx) error
		VerifyItem(c *fiber.Ctx) error
		MarkItemNotPurchased(c *fiber.Ctx) error
		UndoItem(c *fiber.Ctx) error
		MoveItem(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) CreateList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	houseID := c.Params("houseId")
	req := new(domain.CreateShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateList, err)
	}

	res, err := h.shoppingService.CreateList(c.Context(), houseID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateList)
}

func (h *shoppingHandler) GetLists(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	houseID := c.Params("houseId")

	lists, err := h.shoppingService.GetLists(c.Context(), houseID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetLists, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"lists": lists}, fiber.StatusOK, domain.MessageSuccessGetLists)
}

func (h *shoppingHandler) GetListDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	houseID := c.Params("houseId")
	listID := c.Params("id")

	list, items, err := h.shoppingService.GetListDetail(c.Context(), houseID, listID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetListDetail, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"list":  list,
		"items": items,
	}, fiber.StatusOK, domain.MessageSuccessGetListDetail)
}

func (h *shoppingHandler) UpdateListStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	houseID := c.Params("houseId")
	listID := c.Params("id")
	req := new(domain.UpdateListStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateList, err)
	}

	if err := h.shoppingService.UpdateListStatus(c.Context(), houseID, listID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateList)
}

func (h *shoppingHandler) AcquireLock(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Locals("session_id").(string)
	houseID := c.Params("houseId")
	listID := c.Params("id")

	res, err := h.shoppingService.AcquireLock(c.Context(), houseID, listID, sessionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAcquireLock, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAcquireLock)
}

func (h *shoppingHandler) ReleaseLock(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Locals("session_id").(string)
	houseID := c.Params("houseId")
	listID := c.Params("id")

	if err := h.shoppingService.ReleaseLock(c.Context(), houseID, listID, sessionID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedReleaseLock, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReleaseLock)
}

func (h *shoppingHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Locals("session_id").(string)
	houseID := c.Params("houseId")
	listID := c.Params("id")
	req := new(domain.AddItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	res, err := h.shoppingService.AddItem(c.Context(), houseID, listID, *req, sessionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddItem)
}

func (h *shoppingHandler) UpdateItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Locals("session_id").(string)
	houseID := c.Params("houseId")
	listID := c.Params("id")
	itemID := c.Params("itemId")
	req := new(domain.UpdateItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	res, err := h.shoppingService.UpdateItem(c.Context(), houseID, listID, itemID, *req, sessionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}

func (h *shoppingHandler) AdjustItemQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Locals("session_id").(string)
	houseID := c.Params("houseId")
	listID := c.Params("id")
	itemID := c.Params("itemId")
	req := new(domain.AdjustQuantityRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	res, err := h.shoppingService.AdjustItemQuantity(c.Context(), houseID, listID, itemID, *req, sessionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}

func (h *shoppingHandler) DeleteItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Locals("session_id").(string)
	houseID := c.Params("houseId")
	listID := c.Params("id")
	itemID := c.Params("itemId")

	if err := h.shoppingService.DeleteItem(c.Context(), houseID, listID, itemID, sessionID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}

func (h *shoppingHandler) transition(c *fiber.Ctx, op string, verify *domain.VerifyItemRequest) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Locals("session_id").(string)
	houseID := c.Params("houseId")
	listID := c.Params("id")
	itemID := c.Params("itemId")

	res, err := h.shoppingService.TransitionItem(c.Context(), houseID, listID, itemID, op, verify, sessionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}

func (h *shoppingHandler) CheckItem(c *fiber.Ctx) error {
	return h.transition(c, shopping.OpCheck, nil)
}

func (h *shoppingHandler) UncheckItem(c *fiber.Ctx) error {
	return h.transition(c, shopping.OpUncheck, nil)
}

func (h *shoppingHandler) VerifyItem(c *fiber.Ctx) error {
	req := new(domain.VerifyItemRequest)

	if err := c.BodyParser(req); err != nil && len(c.Body()) > 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateItem, err)
	}

	return h.transition(c, shopping.OpVerify, req)
}

func (h *shoppingHandler) MarkItemNotPurchased(c *fiber.Ctx) error {
	return h.transition(c, shopping.OpNotPurchased, nil)
}

func (h *shoppingHandler) UndoItem(c *fiber.Ctx) error {
	return h.transition(c, shopping.OpUndo, nil)
}

func (h *shoppingHandler) MoveItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Locals("session_id").(string)
	houseID := c.Params("houseId")
	listID := c.Params("id")
	itemID := c.Params("itemId")
	req := new(domain.MoveItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMoveItem, err)
	}

	res, err := h.shoppingService.MoveItem(c.Context(), houseID, listID, itemID, *req, sessionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedMoveItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMoveItem)
}
