package usecase

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/propchart-api/internal/domain/sport"
)

// SportCatalog resolves sport keys from requests against the registry.
type SportCatalog struct {
	registry *sport.Registry
}

func NewSportCatalog(registry *sport.Registry) *SportCatalog {
	if registry == nil {
		registry = sport.DefaultRegistry()
	}
	return &SportCatalog{registry: registry}
}

func (c *SportCatalog) List() []sport.Sport {
	return c.registry.List()
}

// Lookup returns the sport registered under key regardless of its features.
func (c *SportCatalog) Lookup(key string) (sport.Sport, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return sport.Sport{}, fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}

	item, ok := c.registry.Get(key)
	if !ok {
		return sport.Sport{}, fmt.Errorf("%w: sport=%s", ErrNotFound, key)
	}
	return item, nil
}

// Resolve returns the sport for key if it serves feature.
func (c *SportCatalog) Resolve(key string, feature sport.Feature) (sport.Sport, error) {
	item, err := c.Lookup(key)
	if err != nil {
		return sport.Sport{}, err
	}
	if !item.Supports(feature) {
		return sport.Sport{}, fmt.Errorf("%w: sport=%s feature=%s", ErrUnsupported, item.Key, feature)
	}
	return item, nil
}
