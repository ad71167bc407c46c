package parameter

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultProfile is used when no profile is configured
const DefaultProfile = "optimized"

// ErrUnknownProfile is returned for profile names absent from the profile set
var ErrUnknownProfile = errors.New("unknown profile")

//go:embed profiles.yaml
var builtinProfiles []byte

type profileFile struct {
	Profiles map[string]yaml.Node `yaml:"profiles"`
}

// Profiles holds named tuning variants decoded over Default()
type Profiles struct {
	byName map[string]Tuning
}

// LoadProfiles decodes a profile document; nil data selects the built-in set
func LoadProfiles(data []byte) (*Profiles, error) {
	if data == nil {
		data = builtinProfiles
	}

	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}

	p := &Profiles{byName: make(map[string]Tuning, len(f.Profiles))}
	for name, node := range f.Profiles {
		t := Default()
		if err := node.Decode(&t); err != nil {
			return nil, fmt.Errorf("decode profile %q: %w", name, err)
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		p.byName[name] = t
	}
	return p, nil
}

// Get returns the named variant
func (p *Profiles) Get(name string) (Tuning, error) {
	if name == "" {
		name = DefaultProfile
	}
	t, ok := p.byName[name]
	if !ok {
		return Tuning{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return t, nil
}

// Names returns profile names in sorted order
func (p *Profiles) Names() []string {
	names := make([]string, 0, len(p.byName))
	for name := range p.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
