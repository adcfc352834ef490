package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Registry maps companies to their catalogs. Companies without a catalog of
// their own are served the fallback.
//
// Register is meant for setup; once the server starts, the registry is only read.
type Registry struct {
	fallback Repository
	tenants  map[string]Repository
}

// NewRegistry creates a registry serving fallback to every company.
func NewRegistry(fallback Repository) *Registry {
	return &Registry{
		fallback: fallback,
		tenants:  make(map[string]Repository),
	}
}

// Register assigns a catalog to a company.
func (r *Registry) Register(companyID string, repo Repository) {
	r.tenants[companyID] = repo
}

// For returns the catalog of a company, or the fallback.
func (r *Registry) For(companyID string) Repository {
	if repo, ok := r.tenants[companyID]; ok {
		return repo
	}
	return r.fallback
}

// Companies returns the ids of companies with their own catalog.
func (r *Registry) Companies() []string {
	ids := make([]string, 0, len(r.tenants))
	for id := range r.tenants {
		ids = append(ids, id)
	}
	return ids
}

// LoadDir builds a registry from a directory of <company-id>.yaml files.
// An empty dir yields a registry holding only the fallback.
func LoadDir(dir string, fallback Repository) (*Registry, error) {
	reg := NewRegistry(fallback)
	if dir == "" {
		return reg, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		companyID := strings.TrimSuffix(e.Name(), ext)
		repo, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		reg.Register(companyID, repo)
		slog.Info("Catalog loaded", "company_id", companyID, "product_types", len(repo.ProductTypes()))
	}

	return reg, nil
}
