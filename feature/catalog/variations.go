package catalog

import (
	"context"
	"errors"
	"fmt"

	"catalog-webservice/feature/catalog/models"

	"go.uber.org/zap"
)

// VariationReconciler reads and rewrites the variation links of configurable products.
// Missing products are reported in the result; store failures are returned as errors.
type VariationReconciler struct {
	products ProductStore
	logger   *zap.Logger
}

// NewVariationReconciler creates a reconciler over the product store.
func NewVariationReconciler(products ProductStore, logger *zap.Logger) *VariationReconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VariationReconciler{products: products, logger: logger}
}

// loadConfigurable returns the configurable product for sku, or nil when no
// product with that sku exists or it is not configurable.
func (r *VariationReconciler) loadConfigurable(ctx context.Context, sku string) (*models.Product, error) {
	product, err := r.products.LoadBySku(ctx, sku)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load configurable product %q: %w", sku, err)
	}
	if !product.IsConfigurable() {
		return nil, nil
	}
	return product, nil
}

// GetVariations resolves the SKUs of the simple products linked to a configurable product.
func (r *VariationReconciler) GetVariations(ctx context.Context, sku string) (*ReconciliationResult, error) {
	product, err := r.loadConfigurable(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return critResult(MsgConfigurableNotFound), nil
	}

	result := &ReconciliationResult{}
	skus := make([]string, 0, len(product.Links))

	for _, id := range product.VariationIDs() {
		simple, err := r.products.LoadByID(ctx, id)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("failed to load simple product %d: %w", id, err)
			}
			msg := fmt.Sprintf(MsgSimpleNotFoundByID, id)
			result.warn(msg)
			r.logger.Warn(msg,
				zap.String("configurable_sku", sku),
				zap.Uint("product_id", id))
			continue
		}
		skus = append(skus, simple.Sku)
	}

	if len(skus) == 0 {
		return result.crit(fmt.Sprintf(MsgNoVariationsByID, sku)), nil
	}

	result.Success = &ResultSuccess{
		Variations: skus,
		Count:      len(skus),
	}
	if n := len(result.Warnings()); n > 0 {
		result.Success.Warn = []string{fmt.Sprintf(MsgGetSummary, n)}
	}
	return result, nil
}

// SetVariations replaces the configurable product's variation links with the
// simple products named by variationSkus, then reports the stored link set.
// Skus of products that are not simple are reported like missing ones.
func (r *VariationReconciler) SetVariations(ctx context.Context, sku string, variationSkus []string) (*ReconciliationResult, error) {
	product, err := r.loadConfigurable(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return critResult(MsgConfigurableNotFound), nil
	}

	result := &ReconciliationResult{}
	ids := make([]uint, 0, len(variationSkus))

	for _, variationSku := range variationSkus {
		simple, err := r.products.LoadBySku(ctx, variationSku)
		if err == nil && simple.TypeID != models.TypeSimple {
			err = ErrNotFound
		}
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("failed to load simple product %q: %w", variationSku, err)
			}
			msg := fmt.Sprintf(MsgSimpleNotFoundBySku, variationSku)
			result.warn(msg)
			r.logger.Warn(msg,
				zap.String("configurable_sku", sku),
				zap.String("sku", variationSku))
			continue
		}
		ids = append(ids, simple.EntityID)
	}

	if len(ids) == 0 {
		return result.crit(MsgNoVariationsBySku), nil
	}

	product.SetVariationIDs(ids)
	if err := r.products.Save(ctx, product); err != nil {
		return nil, err
	}

	assigned, err := r.GetVariations(ctx, sku)
	if err != nil {
		return nil, err
	}

	result.Success = &ResultSuccess{AssignedVariations: assigned}
	if n := len(result.Warnings()); n > 0 {
		result.Success.Warn = []string{fmt.Sprintf(MsgSetSummary, n)}
	}
	return result, nil
}
