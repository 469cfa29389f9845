package handler

import (
	"log/slog"
	"net/http"

	"planotes/internal/delivery/http/response"
	"planotes/internal/domain/entity"
	"planotes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShopHandler holds dependencies for the reward shop and ledger handlers.
type ShopHandler struct {
	uc     usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(uc usecase.ShopUsecase, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{uc: uc, logger: logger}
}

type createItemRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Price int    `json:"price" validate:"required,min=1"`
	Type  string `json:"type" validate:"required,oneof=one_time recurring"`
}

type updateItemRequest struct {
	Name   string `json:"name" validate:"required,max=255"`
	Price  int    `json:"price" validate:"required,min=1"`
	Type   string `json:"type" validate:"required,oneof=one_time recurring"`
	Status string `json:"status" validate:"required,oneof=available unavailable"`
}

// CreateItem adds a reward to the user's shop.
func (h *ShopHandler) CreateItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.CreateItem(c.Request().Context(), usecase.CreateItemInput{
		UserID: userID,
		Name:   req.Name,
		Price:  req.Price,
		Type:   entity.ItemType(req.Type),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item created")
}

// GetItem returns a single shop item.
func (h *ShopHandler) GetItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.uc.GetItem(c.Request().Context(), userID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// ListItems returns a page of the user's shop items.
func (h *ShopHandler) ListItems(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	page, err := h.uc.ListItems(c.Request().Context(), usecase.ListItemsInput{
		UserID: userID,
		Page:   pageFromQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pagedResponse(page), "")
}

// UpdateItem handles edits to a shop item.
func (h *ShopHandler) UpdateItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.UpdateItem(c.Request().Context(), usecase.UpdateItemInput{
		UserID: userID,
		ItemID: itemID,
		Name:   req.Name,
		Price:  req.Price,
		Type:   entity.ItemType(req.Type),
		Status: entity.ItemStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Item updated")
}

// DeleteItem removes a shop item.
func (h *ShopHandler) DeleteItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteItem(c.Request().Context(), userID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted")
}

// Purchase spends balance on an item.
func (h *ShopHandler) Purchase(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.Purchase(c.Request().Context(), userID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Item purchased")
}

// BalanceHistory returns a newest-first page of the user's ledger.
func (h *ShopHandler) BalanceHistory(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	page, err := h.uc.BalanceHistory(c.Request().Context(), usecase.BalanceHistoryInput{
		UserID: userID,
		Page:   pageFromQuery(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pagedResponse(page), "")
}
