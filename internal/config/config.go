// Package config
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amirphl/cfmm-router/internal/objective"
)

/*
YAML config example:
orders:
  - name: "fee-capture"
    kind: "linear"
    prices: [1.0, 2.0]
    expiry: "30s"
    probes:
      - [1.0, 2.0]
      - [0.5, 2.0]
  - name: "dump-basket"
    kind: "basket"
    out: 1
    amounts: [0.0, 3.0]
    probes:
      - [1.0, 5.0]
  - name: "two-token"
    kind: "swap"
    out: 1
    in: 2
    amount: 10.0
    tokens: 2
*/

// Order is one objective declaration from the orders file, plus optional
// probe vectors the inspector evaluates it at.
type Order struct {
	Name    string      `yaml:"name"`
	Kind    string      `yaml:"kind"`
	Prices  []float64   `yaml:"prices"`
	Out     int         `yaml:"out"`
	In      int         `yaml:"in"`
	Amounts []float64   `yaml:"amounts"`
	Amount  float64     `yaml:"amount"`
	Tokens  int         `yaml:"tokens"`
	Expiry  string      `yaml:"expiry"` // duration string, e.g. "30s"; empty means never
	Probes  [][]float64 `yaml:"probes"`
}

type Config struct {
	Orders []Order `yaml:"orders"`
}

// Load reads and parses the orders file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if len(cfg.Orders) == 0 {
		return Config{}, errors.New("config has no orders")
	}
	for i := range cfg.Orders {
		if cfg.Orders[i].Name == "" {
			cfg.Orders[i].Name = fmt.Sprintf("order-%d", i+1)
		}
	}
	return cfg, nil
}

// Spec converts the order into the declarative form the objective factory
// consumes, parsing the expiry duration into seconds.
func (o Order) Spec() (objective.Spec, error) {
	tau := objective.NeverExpires
	if o.Expiry != "" {
		d, err := time.ParseDuration(o.Expiry)
		if err != nil {
			return objective.Spec{}, fmt.Errorf("order %s has invalid expiry %q: %w", o.Name, o.Expiry, err)
		}
		tau = d.Seconds()
	}
	return objective.Spec{
		Kind:    o.Kind,
		Prices:  o.Prices,
		Out:     o.Out,
		In:      o.In,
		Amounts: o.Amounts,
		Amount:  o.Amount,
		Tokens:  o.Tokens,
		Expiry:  tau,
	}, nil
}
