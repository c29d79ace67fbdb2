// Package config loads the asset universe and the provider settings.
//
// A built-in universe is embedded in the binary; a YAML file with the same
// layout can replace it.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/etnz/corrmap"
	"github.com/etnz/corrmap/date"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed universe.yaml
var builtin []byte

var validate = validator.New()

// Config is the content of a universe file.
type Config struct {
	From     date.Date `yaml:"from"`
	To       date.Date `yaml:"to"`
	Provider string    `yaml:"provider" default:"yahoo" validate:"oneof=yahoo eodhd"`
	Sectors  []Sector  `yaml:"sectors" validate:"required,min=1,dive"`
	Fetch    Fetch     `yaml:"fetch"`
}

// Sector is a named group of symbols.
type Sector struct {
	Name    string   `yaml:"name" validate:"required"`
	Symbols []string `yaml:"symbols" validate:"required,min=1,dive,required"`
}

// Fetch configures the http client of the providers.
type Fetch struct {
	CachePeriod string        `yaml:"cache_period" default:"daily" validate:"oneof=daily weekly monthly quarterly yearly"`
	Rate        float64       `yaml:"rate" default:"2" validate:"gt=0"` // requests per second
	Burst       int           `yaml:"burst" default:"2" validate:"gte=1"`
	Timeout     time.Duration `yaml:"timeout" default:"30s" validate:"gt=0"`
	Parallelism int           `yaml:"parallelism" default:"4" validate:"gte=1"`
}

// SetDefaults implements defaults.Setter for the fields tags cannot express.
func (c *Config) SetDefaults() {
	if c.From.IsZero() {
		c.From = date.New(2022, 1, 1)
	}
	if c.To.IsZero() {
		c.To = date.New(2023, 12, 31)
	}
}

// Default returns the built-in universe.
func Default() (*Config, error) {
	return Parse(builtin)
}

// Load reads a universe file, or the built-in universe if path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read universe: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes, completes and validates a universe file content.
func Parse(data []byte) (*Config, error) {
	c := new(Config)
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if err := defaults.Set(c); err != nil {
		return nil, err
	}
	if err := validate.Struct(c); err != nil {
		return nil, validationError(err)
	}
	return c, nil
}

// validationError turns validator errors into a single readable error.
func validationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.Tag() {
		case "required", "min":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Namespace()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", e.Namespace(), strings.ReplaceAll(e.Param(), " ", ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation: %s %s", e.Namespace(), e.Tag(), e.Param()))
		}
	}
	return fmt.Errorf("invalid universe: %s", strings.Join(msgs, "; "))
}

// Range returns the analysis range.
func (c *Config) Range() date.Range { return date.Range{From: c.From, To: c.To} }

// CachePeriod returns the cache expiration period.
func (c *Config) CachePeriod() date.Period {
	p, err := date.ParsePeriod(c.Fetch.CachePeriod)
	if err != nil {
		return date.Daily
	}
	return p
}

// Universe converts the configuration into a valid corrmap.Universe.
func (c *Config) Universe() (corrmap.Universe, error) {
	u := corrmap.Universe{Range: c.Range()}
	for _, s := range c.Sectors {
		sector := corrmap.Sector{Name: strings.TrimSpace(s.Name)}
		for _, sym := range s.Symbols {
			sector.Symbols = append(sector.Symbols, corrmap.ParseSymbol(sym))
		}
		u.Sectors = append(u.Sectors, sector)
	}
	if err := u.Validate(); err != nil {
		return corrmap.Universe{}, err
	}
	return u, nil
}
