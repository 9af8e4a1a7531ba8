package metadata

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("metaforms/metadata")

//go:embed catalog
var catalogFS embed.FS

const catalogDir = "catalog"

// LoadCatalog parses the embedded catalog, adds the record-backed forms,
// and returns it without building a registry.
func LoadCatalog(ctx context.Context) (Catalog, error) {
	_, span := tracer.Start(ctx, "metadata.LoadCatalog",
		trace.WithAttributes(attribute.String("catalog.dir", catalogDir)))
	defer span.End()

	cat, err := ParseFS(catalogFS, catalogDir)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Catalog{}, fmt.Errorf("load embedded catalog: %w", err)
	}
	cat.AddRecordForms(recordForms...)

	span.SetAttributes(
		attribute.Int("catalog.modules", len(cat.Modules)),
		attribute.Int("catalog.forms", len(cat.Forms)),
	)
	return cat, nil
}

// Load builds a registry from the embedded catalog.
func Load(ctx context.Context) (*Registry, error) {
	ctx, span := tracer.Start(ctx, "metadata.Load")
	defer span.End()

	cat, err := LoadCatalog(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	reg, err := NewRegistry(cat)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("registry.forms", reg.Len()))
	return reg, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the process-wide registry built from the embedded catalog.
// It is built on first use and panics if the catalog is invalid.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = Load(context.Background())
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultRegistry
}

// GetFormMetadata resolves id against the default registry.
func GetFormMetadata(id string) (FormMetadata, bool) {
	return Default().GetFormMetadata(id)
}
