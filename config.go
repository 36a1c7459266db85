package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// A Profile tunes an engine from a YAML file: diagnostics budget, storage
// limit, extra special characters, and per-word priority overrides applied
// as catalog words are defined.
//
//	error_limit: 25
//	cell_limit: 65536
//	specials: ";,"
//	priorities:
//	  "+": 7
type Profile struct {
	ErrorLimit int             `yaml:"error_limit"`
	CellLimit  int             `yaml:"cell_limit"`
	Specials   string          `yaml:"specials"`
	Priorities map[string]uint `yaml:"priorities"`
}

func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := parseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("invalid profile %v: %w", path, err)
	}
	return p, nil
}

func parseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, err
	}
	for w, prio := range p.Priorities {
		if prio > prioLiteral {
			return nil, fmt.Errorf("word %q: priority %d out of range", w, prio)
		}
	}
	return &p, nil
}

func WithProfile(p *Profile) Option { return profileOption{p} }

type profileOption struct{ p *Profile }

func (o profileOption) apply(en *Engine) {
	p := o.p
	if p == nil {
		return
	}
	if p.ErrorLimit > 0 {
		en.errLimit = p.ErrorLimit
	}
	if p.CellLimit > 0 {
		en.cellLimit = p.CellLimit
	}
	en.specials += p.Specials
	for w, prio := range p.Priorities {
		if en.prios == nil {
			en.prios = make(map[string]uint)
		}
		en.prios[w] = prio
	}
}
