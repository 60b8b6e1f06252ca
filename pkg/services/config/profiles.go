package config

import (
	"context"
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/services/dataset"
	"gopkg.in/ini.v1"
)

// Registry resolves named column profiles: mappings from the header names
// an upload actually uses onto the canonical dashboard schema.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetMapping(ctx context.Context, profile string) (dataset.ColumnMapping, error)
}

type iniRegistry struct {
	cfg *ini.File
}

// NewRegistry loads a profiles file. Each section is one profile; the keys
// day, category, sales and visitors name the source headers. Omitted keys
// default to the canonical column names.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetMapping(_ context.Context, profile string) (dataset.ColumnMapping, error) {
	mapping := dataset.DefaultMapping()
	if profile == "" {
		return mapping, nil
	}

	section, err := r.cfg.GetSection(profile)
	if err != nil {
		return mapping, fmt.Errorf("profile %q not found", profile)
	}

	if k := section.Key("day").String(); k != "" {
		mapping.Day = k
	}
	if k := section.Key("category").String(); k != "" {
		mapping.Category = k
	}
	if k := section.Key("sales").String(); k != "" {
		mapping.Sales = k
	}
	if k := section.Key("visitors").String(); k != "" {
		mapping.Visitors = k
	}
	return mapping, nil
}

// EmptyRegistry is a Registry with no profiles; every lookup other than
// the default returns an error. Used when no profiles file is configured.
type EmptyRegistry struct{}

func (EmptyRegistry) GetProfiles(_ context.Context) ([]string, error) {
	return nil, nil
}

func (EmptyRegistry) GetMapping(_ context.Context, profile string) (dataset.ColumnMapping, error) {
	if profile != "" {
		return dataset.ColumnMapping{}, fmt.Errorf("profile %q not found", profile)
	}
	return dataset.DefaultMapping(), nil
}
