// Package levels holds the authored battle scenarios: world dimensions,
// collision tuning, and the list of prefab spawns.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var ScenariosFS embed.FS

type Scenario struct {
	Name    string      `yaml:"name"`
	World   WorldSpec   `yaml:"world"`
	Resolve ResolveSpec `yaml:"resolve"`
	Spawns  []Spawn     `yaml:"spawns"`
}

type WorldSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
}

// ResolveSpec tunes collision resolution. Zero values mean the defaults:
// first-pair contacts and symmetric grid resync.
type ResolveSpec struct {
	Deepest      bool `yaml:"deepest"`
	LegacyResync bool `yaml:"legacy_resync"`
}

type Spawn struct {
	Prefab   string         `yaml:"prefab"`
	X        float64        `yaml:"x"`
	Y        float64        `yaml:"y"`
	Rotation float64        `yaml:"rotation"`
	Player   bool           `yaml:"player"`
	Behavior map[string]any `yaml:"behavior,omitempty"`
}

// LoadScenarioFromFS reads a scenario by name from the embedded set.
func LoadScenarioFromFS(name string) (*Scenario, error) {
	data, err := fs.ReadFile(ScenariosFS, name)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return decodeScenario(data)
}

// LoadScenarioFromFile reads a scenario from a path on disk.
func LoadScenarioFromFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return decodeScenario(data)
}

func decodeScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("unmarshal scenario: %w", err)
	}
	return &sc, nil
}
