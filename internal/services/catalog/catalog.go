// Package catalog serves the built-in list of Indian stocks for symbol search.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/ternarybob/tickerlens/internal/models"
)

// MinQueryLength is the shortest query that produces results
const MinQueryLength = 2

// MaxResults caps the number of entries returned by Search
const MaxResults = 10

//go:embed stocks.toml
var stocksTOML []byte

type catalogFile struct {
	Stocks []models.CatalogEntry `toml:"stocks"`
}

// Catalog implements interfaces.CatalogService
type Catalog struct {
	entries []models.CatalogEntry
}

// New loads the embedded catalog
func New() (*Catalog, error) {
	return Parse(stocksTOML)
}

// Parse builds a catalog from TOML holding a [[stocks]] array
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse stock catalog: %w", err)
	}
	return &Catalog{entries: f.Stocks}, nil
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Search returns up to MaxResults entries whose symbol, company name or sector contains query,
// ignoring case. Queries shorter than MinQueryLength return an empty slice.
func (c *Catalog) Search(query string) []models.CatalogEntry {
	results := []models.CatalogEntry{}

	term := strings.ToLower(strings.TrimSpace(query))
	if len(term) < MinQueryLength {
		return results
	}

	for _, e := range c.entries {
		if strings.Contains(strings.ToLower(e.Symbol), term) ||
			strings.Contains(strings.ToLower(e.CompanyName), term) ||
			strings.Contains(strings.ToLower(e.Sector), term) {
			results = append(results, e)
			if len(results) == MaxResults {
				break
			}
		}
	}
	return results
}
