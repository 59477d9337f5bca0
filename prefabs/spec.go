package prefabs

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// SceneSpec describes the objects a scene starts with.
type SceneSpec struct {
	Name       string       `yaml:"name"`
	Background string       `yaml:"background"`
	Objects    []ObjectSpec `yaml:"objects"`
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ObjectSpec is one entity. Components are attached in field order: image,
// button, script, mover.
type ObjectSpec struct {
	Name     string      `yaml:"name"`
	Position VecSpec     `yaml:"position"`
	Platform *VecSpec    `yaml:"platform"`
	Layer    int         `yaml:"layer"`
	Active   *bool       `yaml:"active"`
	Image    string      `yaml:"image"`
	Button   *ButtonSpec `yaml:"button"`
	Script   string      `yaml:"script"`
	Mover    bool        `yaml:"mover"`
}

type ButtonSpec struct {
	Action string `yaml:"action"`
}

// IsActive reports the configured active flag, defaulting to true.
func (o ObjectSpec) IsActive() bool {
	return o.Active == nil || *o.Active
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadScene loads and validates a scene spec by name, with or without the
// .yaml extension.
func LoadScene(name string) (*SceneSpec, error) {
	if !isSpecFile(name) {
		name += ".yaml"
	}
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// ParseScene decodes and validates a scene spec from YAML.
func ParseScene(data []byte) (*SceneSpec, error) {
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal scene: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *SceneSpec) Validate() error {
	seen := make(map[string]bool, len(s.Objects))
	for i, o := range s.Objects {
		name := strings.TrimSpace(o.Name)
		if name == "" {
			return fmt.Errorf("%w: object %d has no name", ErrInvalidSpec, i)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate object %q", ErrInvalidSpec, name)
		}
		seen[name] = true
		if o.Script != "" && !isScriptFile(o.Script) {
			return fmt.Errorf("%w: object %q: script %q is not a .tengo file", ErrInvalidSpec, name, o.Script)
		}
	}
	return nil
}
