package catalog

import (
	"net/url"

	"catalog-webservice/core/logger"
	"catalog-webservice/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/products/count", h.HandleProductCount)
	group.Get("/categories/:id/products/count", h.HandleCategoryProductCount)
	group.Get("/products/:sku/configurable-attributes", h.HandleConfigurableAttributes)
	group.Get("/products/:sku/used-attributes", h.HandleUsedAttributes)
	group.Get("/products/:sku/variations", h.HandleGetVariations)
	group.Put("/products/:sku/variations", h.HandleSetVariations)
	group.Post("/audit/variations", h.HandleAuditVariations)
}

// CountResponse wraps a count.
type CountResponse struct {
	Count int64 `json:"count"`
}

func internalError(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// skuParam returns the unescaped SKU path parameter. SKUs may contain
// characters that arrive percent-encoded.
func skuParam(c *fiber.Ctx) string {
	raw := c.Params("sku")
	if sku, err := url.PathUnescape(raw); err == nil {
		return sku
	}
	return raw
}

// HandleProductCount returns the number of catalog products.
// @Summary Catalog product count
// @Description Number of products in the catalog.
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.CountResponse
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/products/count [get]
func (h *Handler) HandleProductCount(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	count, err := h.service.GetCatalogProductCount(c.Context())
	if err != nil {
		return internalError(c, l, "Product count failed", err)
	}
	return c.JSON(CountResponse{Count: count})
}

// HandleCategoryProductCount returns the number of products in a category.
// @Summary Category product count
// @Description Number of products assigned to a category. Unknown categories count 0.
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} catalog.CountResponse
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/categories/{id}/products/count [get]
func (h *Handler) HandleCategoryProductCount(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	count, err := h.service.GetCategoryProductCount(c.Context(), utils.ToInt(c.Params("id")))
	if err != nil {
		return internalError(c, l, "Category product count failed", err)
	}
	return c.JSON(CountResponse{Count: count})
}

// HandleConfigurableAttributes returns the attributes a configurable product varies on.
// @Summary Configurable attributes
// @Description Super attributes of a configurable product with the option values its variations use.
// @Tags catalog
// @Produce json
// @Param sku path string true "Product SKU"
// @Success 200 {object} catalog.AttributesResult
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/products/{sku}/configurable-attributes [get]
func (h *Handler) HandleConfigurableAttributes(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.GetConfigurableAttributes(c.Context(), skuParam(c))
	if err != nil {
		return internalError(c, l, "Configurable attributes lookup failed", err)
	}
	return c.JSON(result)
}

// HandleUsedAttributes returns the EAV attributes backing a configurable product.
// @Summary Used product attributes
// @Description EAV attributes used by a configurable product.
// @Tags catalog
// @Produce json
// @Param sku path string true "Product SKU"
// @Success 200 {object} catalog.UsedAttributesResult
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/products/{sku}/used-attributes [get]
func (h *Handler) HandleUsedAttributes(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.GetUsedProductAttributes(c.Context(), skuParam(c))
	if err != nil {
		return internalError(c, l, "Used attributes lookup failed", err)
	}
	return c.JSON(result)
}

// HandleGetVariations returns the SKUs linked to a configurable product.
// @Summary Get variations
// @Description Resolve the simple product SKUs linked to a configurable product.
// @Tags catalog
// @Produce json
// @Param sku path string true "Configurable product SKU"
// @Success 200 {object} catalog.ReconciliationResult
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/products/{sku}/variations [get]
func (h *Handler) HandleGetVariations(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.GetConfigurableVariations(c.Context(), skuParam(c))
	if err != nil {
		return internalError(c, l, "Get variations failed", err)
	}
	return c.JSON(result)
}

// HandleSetVariations replaces the variations of a configurable product.
// @Summary Set variations
// @Description Link the given simple product SKUs to a configurable product, replacing existing links.
// @Tags catalog
// @Accept json
// @Produce json
// @Param sku path string true "Configurable product SKU"
// @Param body body catalog.SetVariationsRequest true "Variation SKUs"
// @Success 200 {object} catalog.ReconciliationResult
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/products/{sku}/variations [put]
func (h *Handler) HandleSetVariations(c *fiber.Ctx) error {
	sku := skuParam(c)
	l := logger.WithRayID(h.service.logger, c).With(zap.String("sku", sku))

	var req SetVariationsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if verrs := req.Validate(); len(verrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": verrs,
		})
	}

	result, err := h.service.SetConfigurableVariations(c.Context(), sku, req.Variations)
	if err != nil {
		return internalError(c, l, "Set variations failed", err)
	}
	return c.JSON(result)
}

// HandleAuditVariations audits the variation links of every configurable product.
// @Summary Audit variations
// @Description Report configurable products with dangling or unresolvable variation links.
// @Tags catalog
// @Produce json
// @Param upload query boolean false "Upload the report to storage"
// @Success 200 {object} catalog.AuditReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/audit/variations [post]
func (h *Handler) HandleAuditVariations(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.AuditVariations(c.Context(), utils.ToBool(c.Query("upload")))
	if err != nil {
		return internalError(c, l, "Variation audit failed", err)
	}
	return c.JSON(report)
}
