package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"time"

	"catalog-webservice/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// AuditEntry describes one configurable product whose links need attention.
type AuditEntry struct {
	Sku      string   `json:"sku"`
	Crit     string   `json:"crit,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Resolved int      `json:"resolved"`
}

// AuditReport summarises the variation links of every configurable product.
type AuditReport struct {
	GeneratedAt      time.Time    `json:"generated_at"`
	Scanned          int          `json:"scanned"`
	Healthy          int          `json:"healthy"`
	Dangling         int          `json:"dangling"`
	Broken           int          `json:"broken"`
	ReindexSuggested bool         `json:"reindex_suggested"`
	Entries          []AuditEntry `json:"entries"`
	ObjectKey        string       `json:"object_key,omitempty"`
}

// AuditVariations checks every configurable product's links. Products with
// unresolvable links are reported as dangling; products with none resolved are
// broken. With upload the report is written to the storage bucket.
func (s *Service) AuditVariations(ctx context.Context, upload bool) (*AuditReport, error) {
	skus, err := s.stores.Products.ListSkusByType(ctx, models.TypeConfigurable)
	if err != nil {
		return nil, err
	}

	report := &AuditReport{
		GeneratedAt: time.Now().UTC(),
		Entries:     []AuditEntry{},
	}

	for _, sku := range skus {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := s.reconciler.GetVariations(ctx, sku)
		if err != nil {
			return nil, err
		}
		report.Scanned++

		entry := AuditEntry{Sku: sku, Warnings: result.Warnings()}
		switch {
		case !result.IsSuccess():
			entry.Crit = result.Crit()
			report.Broken++
		case len(entry.Warnings) > 0:
			entry.Resolved = result.Success.Count
			report.Dangling++
		default:
			report.Healthy++
			continue
		}
		report.Entries = append(report.Entries, entry)
	}
	report.ReindexSuggested = report.Dangling > 0

	s.logger.Info("Variation audit completed",
		zap.Int("scanned", report.Scanned),
		zap.Int("dangling", report.Dangling),
		zap.Int("broken", report.Broken))

	if upload {
		if err := s.uploadReport(ctx, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func (s *Service) uploadReport(ctx context.Context, report *AuditReport) error {
	if s.client == nil {
		return fmt.Errorf("storage is not configured")
	}

	key := path.Join(s.cfg.ReportPrefix, report.GeneratedAt.Format("20060102T150405Z")+".json")
	report.ObjectKey = key

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode audit report: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload audit report: %w", err)
	}
	s.logger.Info("Audit report uploaded", zap.String("bucket", s.bucket), zap.String("key", key))

	return s.pruneReports(ctx)
}

// pruneReports removes the oldest reports beyond the retention limit.
func (s *Service) pruneReports(ctx context.Context) error {
	if s.cfg.ReportRetention <= 0 {
		return nil
	}

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.cfg.ReportPrefix + "/",
		Recursive: true,
	}) {
		if obj.Err != nil {
			return fmt.Errorf("failed to list audit reports: %w", obj.Err)
		}
		if path.Ext(obj.Key) == ".json" {
			keys = append(keys, obj.Key)
		}
	}
	if len(keys) <= s.cfg.ReportRetention {
		return nil
	}

	// Keys embed a sortable timestamp.
	sort.Strings(keys)
	for _, key := range keys[:len(keys)-s.cfg.ReportRetention] {
		if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove audit report %s: %w", key, err)
		}
		s.logger.Debug("Pruned audit report", zap.String("key", key))
	}
	return nil
}
