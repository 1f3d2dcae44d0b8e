package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/domain/entity"
	"github.com/pipeagudelo3/e-commerce-chat-ai/internal/handler/dto"
)

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	usecase domain.ProductUsecase
	logger  *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(usecase domain.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// List returns the catalog, optionally filtered.
//
//	@Summary		List products
//	@Description	Full catalog, optionally filtered by exact brand or category
//	@Tags			products
//	@Produce		json
//	@Param			brand		query		string	false	"Exact brand filter"
//	@Param			category	query		string	false	"Exact category filter"
//	@Success		200			{array}		dto.ProductResponse
//	@Router			/products [get]
func (h *ProductHandler) List(ctx context.Context, c *app.RequestContext) {
	brand := c.Query("brand")
	category := c.Query("category")

	products, err := h.usecase.List(ctx, brand, category)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.FromProductEntities(products))
}

// Get returns one product by id.
//
//	@Summary		Get product
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	dto.ProductResponse
//	@Failure		404	{object}	handler.ErrorBody
//	@Router			/products/{id} [get]
func (h *ProductHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	product, err := h.usecase.Get(ctx, id)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.FromProductEntity(product))
}

// Create inserts a new product.
//
//	@Summary		Create product
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProductRequest	true	"Product"
//	@Success		201		{object}	dto.ProductResponse
//	@Failure		400		{object}	handler.ErrorBody
//	@Router			/products [post]
func (h *ProductHandler) Create(ctx context.Context, c *app.RequestContext) {
	product, ok := h.bindProduct(c)
	if !ok {
		return
	}

	created, err := h.usecase.Create(ctx, product)
	if err != nil {
		h.logger.Error("failed to create product", "error", err)
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusCreated, dto.FromProductEntity(created))
}

// Update overwrites an existing product.
//
//	@Summary		Update product
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Product ID"
//	@Param			request	body		dto.ProductRequest	true	"Product"
//	@Success		200		{object}	dto.ProductResponse
//	@Failure		404		{object}	handler.ErrorBody
//	@Router			/products/{id} [put]
func (h *ProductHandler) Update(ctx context.Context, c *app.RequestContext) {
	id, ok := h.productID(c)
	if !ok {
		return
	}
	product, ok := h.bindProduct(c)
	if !ok {
		return
	}

	updated, err := h.usecase.Update(ctx, id, product)
	if err != nil {
		ErrorResponse(c, err)
		return
	}

	c.JSON(consts.StatusOK, dto.FromProductEntity(updated))
}

// Delete removes a product.
//
//	@Summary		Delete product
//	@Tags			products
//	@Param			id	path	int	true	"Product ID"
//	@Success		204
//	@Failure		404	{object}	handler.ErrorBody
//	@Router			/products/{id} [delete]
func (h *ProductHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(ctx, id); err != nil {
		ErrorResponse(c, err)
		return
	}

	c.Status(consts.StatusNoContent)
}

func (h *ProductHandler) productID(c *app.RequestContext) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		BadRequestResponse(c, "invalid product id")
		return 0, false
	}
	return id, true
}

func (h *ProductHandler) bindProduct(c *app.RequestContext) (*entity.Product, bool) {
	var req dto.ProductRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		BadRequestResponse(c, "invalid request body")
		return nil, false
	}

	product, err := req.ToEntity()
	if err != nil {
		ErrorResponse(c, err)
		return nil, false
	}
	return product, true
}
