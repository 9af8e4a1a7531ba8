package main

import (
	"context"
	"fmt"
	"io"

	"metaforms/internal/metadata"
)

// loadRegistry builds the form registry from the embedded catalog.
func loadRegistry(ctx context.Context) (*metadata.Registry, error) {
	reg, err := metadata.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load form registry: %w", err)
	}
	return reg, nil
}

// printSummary writes a per-module overview of the registry.
func printSummary(w io.Writer, reg *metadata.Registry) {
	mods := reg.Modules()
	fmt.Fprintf(w, "Catalog valid\n")
	fmt.Fprintf(w, "  Forms: %d\n", reg.Len())
	fmt.Fprintf(w, "  Modules: %d\n", len(mods))
	for _, mod := range mods {
		fmt.Fprintf(w, "    - %s (%s): %d forms\n", mod.ID, mod.Label, len(mod.Forms))
	}
}
