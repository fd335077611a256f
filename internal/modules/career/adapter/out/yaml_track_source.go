package out

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"technova/internal/modules/career/domain"
	apperrors "technova/internal/platform/errors"
)

//go:embed tracks/tracks.yaml
var builtinTracks []byte

type trackFile struct {
	Tracks []trackEntry `yaml:"tracks"`
}

type trackEntry struct {
	Name             string  `yaml:"name"`
	BaseSalary       float64 `yaml:"base_salary"`
	SalaryGrowthRate float64 `yaml:"salary_growth_rate"`
	Volatility       float64 `yaml:"volatility"`
	JobStability     float64 `yaml:"job_stability"`
	MarketDemand     float64 `yaml:"market_demand"`
}

// YAMLTrackSource reads the track table from path, or the built-in table when path is empty.
type YAMLTrackSource struct {
	path string
}

func NewYAMLTrackSource(path string) YAMLTrackSource {
	return YAMLTrackSource{path: strings.TrimSpace(path)}
}

func (s YAMLTrackSource) Load(ctx context.Context) ([]domain.TrackProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := builtinTracks
	origin := "built-in table"
	if s.path != "" {
		data, err := os.ReadFile(s.path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("tracks file %s: %w", s.path, apperrors.ErrNotFound)
			}
			return nil, fmt.Errorf("read tracks file: %w", err)
		}
		raw = data
		origin = s.path
	}

	var file trackFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", origin, errors.Join(apperrors.ErrInvalidConfig, err))
	}
	profiles := make([]domain.TrackProfile, 0, len(file.Tracks))
	for i, entry := range file.Tracks {
		if strings.TrimSpace(entry.Name) == "" {
			return nil, fmt.Errorf("%s: track %d has no name: %w", origin, i, apperrors.ErrInvalidConfig)
		}
		profiles = append(profiles, domain.TrackProfile{
			Name:             entry.Name,
			BaseSalary:       entry.BaseSalary,
			SalaryGrowthRate: entry.SalaryGrowthRate,
			Volatility:       entry.Volatility,
			JobStability:     entry.JobStability,
			MarketDemand:     entry.MarketDemand,
		})
	}
	return profiles, nil
}
