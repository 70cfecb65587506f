// Package boot loads the boot document (orc_boot.yaml) that tells the brief which feeds to read
// and whose fortunes to print.
package boot

import (
	"errors"
	"fmt"
	"os"

	"github.com/samgozman/orc-brief/pkg/errlvl"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the boot document looked up in the working directory.
const DefaultPath = "orc_boot.yaml"

var (
	errReadConfig  = errors.New("failed to read boot config")
	errParseConfig = errors.New("failed to parse boot config")

	// ErrNoBirthYears is returned when orc.fortune_birth_years is missing or null. An empty list is valid.
	ErrNoBirthYears = errors.New("orc.fortune_birth_years is required")
)

// Config is the part of the boot document used by the brief. Unknown keys are ignored.
type Config struct {
	Orc     Orc     `yaml:"orc"`
	Targets Targets `yaml:"targets_metrics_methods"`
}

// Orc holds the fortune subjects.
type Orc struct {
	FortuneBirthYears []int `yaml:"fortune_birth_years"`
}

// Targets groups sensing targets by topic. Only the tech topic is read.
type Targets struct {
	Tech struct {
		Targets struct {
			RSS []string `yaml:"rss"`
		} `yaml:"targets"`
	} `yaml:"tech"`
}

// RSS returns the tech feed URLs in document order. A missing section yields an empty list.
func (c *Config) RSS() []string {
	return c.Targets.Tech.Targets.RSS
}

// BirthYears returns the fortune birth years in document order.
func (c *Config) BirthYears() []int {
	return c.Orc.FortuneBirthYears
}

// Load reads and parses the boot document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errlvl.Wrap(errors.Join(errReadConfig, err), errlvl.FATAL)
	}

	return Parse(data)
}

// Parse decodes a boot document. The birth years key is mandatory, feeds are not.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errlvl.Wrap(errors.Join(errParseConfig, err), errlvl.FATAL)
	}

	// yaml.v3 decodes an explicit [] into an empty non-nil slice
	if cfg.Orc.FortuneBirthYears == nil {
		return nil, errlvl.Wrap(fmt.Errorf("%w: %w", errParseConfig, ErrNoBirthYears), errlvl.FATAL)
	}

	return &cfg, nil
}
