// Package catalog loads the product list shown on the page.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Products []models.Product `yaml:"products"`
}

// Parse decodes a YAML catalog. Unknown fields are rejected; every product
// needs a unique id and a name. A missing image gets the placeholder.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	for i := range c.Products {
		if c.Products[i].Image == "" {
			c.Products[i].Image = models.DefaultItemImage
		}
	}
	return &c, nil
}

// Load reads a catalog file, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Default is the built-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Find looks a product up by id.
func (c *Catalog) Find(id string) (models.Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Products))
	var errs []error
	for i, p := range c.Products {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("product %d: id is required", i))
		case seen[p.ID]:
			errs = append(errs, fmt.Errorf("product %d: duplicate id %q", i, p.ID))
		}
		seen[p.ID] = true
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("product %d: name is required", i))
		}
		if p.Price < 0 {
			errs = append(errs, fmt.Errorf("product %d: negative price", i))
		}
	}
	return errors.Join(errs...)
}
