package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/carwash/internal/models"
)

// ErrInvalidCatalog is returned when a catalog file fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// fileCatalog is the on-disk layout: entries are nested under their product
// type, so the owning key never has to be repeated.
type fileCatalog struct {
	ProductTypes []fileProductType `yaml:"productTypes"`
}

type fileProductType struct {
	models.ProductType `yaml:",inline"`

	MainProducts []models.MainProduct `yaml:"mainProducts"`
	Addons       []models.Addon       `yaml:"addons"`
}

// LoadFile reads and validates a YAML catalog file.
func LoadFile(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML catalog.
//
// Structural problems (missing ids, duplicates, unknown addon kinds, negative
// prices, inverted quantity bounds) are errors. An addon missing the price
// field of its kind is accepted with a warning: it prices at 0.
func Parse(raw []byte) (*Static, error) {
	var fc fileCatalog
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	data := Data{}
	for _, pt := range fc.ProductTypes {
		data.ProductTypes = append(data.ProductTypes, pt.ProductType)
		for _, p := range pt.MainProducts {
			p.ProductType = pt.Key
			data.MainProducts = append(data.MainProducts, p)
		}
		for _, a := range pt.Addons {
			a.ProductType = pt.Key
			data.Addons = append(data.Addons, a)
		}
	}

	if err := Validate(data); err != nil {
		return nil, err
	}
	return NewStatic(data), nil
}

// Validate checks catalog data for authoring mistakes. All problems are
// reported together.
func Validate(data Data) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidCatalog}, args...)...))
	}

	types := make(map[string]bool, len(data.ProductTypes))
	for _, pt := range data.ProductTypes {
		switch {
		case pt.Key == "":
			fail("product type %q has no key", pt.Name)
		case types[pt.Key]:
			fail("duplicate product type %q", pt.Key)
		}
		types[pt.Key] = true
	}

	products := make(map[string]bool, len(data.MainProducts))
	for _, p := range data.MainProducts {
		key := p.ProductType + "/" + p.ID
		switch {
		case p.ID == "":
			fail("main product %q of %q has no id", p.Name, p.ProductType)
		case products[key]:
			fail("duplicate main product %q", key)
		case p.Price < 0:
			fail("main product %q has negative price %d", key, p.Price)
		}
		products[key] = true
	}

	addons := make(map[string]bool, len(data.Addons))
	for _, a := range data.Addons {
		key := a.ProductType + "/" + a.ID
		if a.ID == "" {
			fail("addon %q of %q has no id", a.Name, a.ProductType)
			continue
		}
		if addons[key] {
			fail("duplicate addon %q", key)
		}
		addons[key] = true

		switch a.Kind {
		case models.AddonKindBoolean:
			if a.Price == nil {
				slog.Warn("Catalog addon has no price, it will price at 0", "addon", key)
			} else if *a.Price < 0 {
				fail("addon %q has negative price %d", key, *a.Price)
			}
		case models.AddonKindQuantity:
			if a.UnitPrice == nil {
				slog.Warn("Catalog addon has no unit price, it will price at 0", "addon", key)
			} else if *a.UnitPrice < 0 {
				fail("addon %q has negative unit price %d", key, *a.UnitPrice)
			}
			if a.Min < 0 || (a.Max > 0 && a.Min > a.Max) {
				fail("addon %q has invalid quantity bounds [%d, %d]", key, a.Min, a.Max)
			}
		default:
			fail("addon %q has unknown kind %q", key, a.Kind)
		}
	}

	return errors.Join(errs...)
}
