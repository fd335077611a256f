package domain

import (
	"fmt"
	"strings"

	apperrors "technova/internal/platform/errors"
)

type TrackProfile struct {
	Name             string
	BaseSalary       float64
	SalaryGrowthRate float64
	Volatility       float64
	JobStability     float64
	MarketDemand     float64
}

func (p TrackProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("track name is required: %w", apperrors.ErrInvalidConfig)
	}
	if p.BaseSalary <= 0 {
		return fmt.Errorf("track %q: base_salary must be > 0: %w", p.Name, apperrors.ErrInvalidConfig)
	}
	if p.Volatility <= 0 {
		return fmt.Errorf("track %q: volatility must be > 0: %w", p.Name, apperrors.ErrInvalidConfig)
	}
	if p.JobStability < 0 || p.JobStability > 100 {
		return fmt.Errorf("track %q: job_stability must be within [0,100]: %w", p.Name, apperrors.ErrInvalidConfig)
	}
	if p.MarketDemand < 0 || p.MarketDemand > 100 {
		return fmt.Errorf("track %q: market_demand must be within [0,100]: %w", p.Name, apperrors.ErrInvalidConfig)
	}
	return nil
}

// Catalog is the read-only track table. It is never mutated after NewCatalog returns.
type Catalog struct {
	order       []string
	byName      map[string]TrackProfile
	defaultName string
}

func NewCatalog(profiles []TrackProfile, defaultName string) (*Catalog, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("track table is empty: %w", apperrors.ErrInvalidConfig)
	}
	c := &Catalog{
		order:       make([]string, 0, len(profiles)),
		byName:      make(map[string]TrackProfile, len(profiles)),
		defaultName: defaultName,
	}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate track %q: %w", p.Name, apperrors.ErrInvalidConfig)
		}
		c.byName[p.Name] = p
		c.order = append(c.order, p.Name)
	}
	if _, ok := c.byName[defaultName]; !ok {
		return nil, fmt.Errorf("default track %q not in table: %w", defaultName, apperrors.ErrInvalidConfig)
	}
	return c, nil
}

// Resolve looks up name exactly. Unknown names yield the default profile and fallback=true.
func (c *Catalog) Resolve(name string) (profile TrackProfile, fallback bool) {
	if p, ok := c.byName[name]; ok {
		return p, false
	}
	return c.byName[c.defaultName], true
}

func (c *Catalog) DefaultName() string {
	return c.defaultName
}

func (c *Catalog) Profiles() []TrackProfile {
	out := make([]TrackProfile, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}
