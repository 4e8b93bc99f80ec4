package neuroview

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is the plain-data description of a model, layer or neuron. It is
// what selection callbacks receive; nodes carry the record they were built
// from in Node.Data.
type Record struct {
	ID       string   `yaml:"id" json:"id" validate:"required"`
	Label    string   `yaml:"label,omitempty" json:"label,omitempty"`
	Type     string   `yaml:"type,omitempty" json:"type,omitempty"`
	Children []Record `yaml:"children,omitempty" json:"children,omitempty" validate:"dive"`
}

// DisplayName returns Label, falling back to ID.
func (r Record) DisplayName() string {
	if r.Label != "" {
		return r.Label
	}
	return r.ID
}

// Child returns the direct child with the given id.
func (r Record) Child(id string) (Record, bool) {
	for _, c := range r.Children {
		if c.ID == id {
			return c, true
		}
	}
	return Record{}, false
}

// Dataset is the top-level document describing every model to display.
type Dataset struct {
	Models []Record `yaml:"models" json:"models" validate:"min=1,dive"`
}

// ParseDataset decodes a YAML (or JSON) dataset. Every record must carry an
// id, and sibling ids must be unique.
func ParseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if err := validate.Struct(&ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", validationError(err))
	}
	if err := checkSiblings("models", ds.Models); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return &ds, nil
}

// checkSiblings reports the first repeated id among recs or any of their
// descendants' siblings. Paths are slash-joined ids.
func checkSiblings(path string, recs []Record) error {
	seen := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%s: duplicate id %q", path, r.ID)
		}
		seen[r.ID] = struct{}{}
		if err := checkSiblings(path+"/"+r.ID, r.Children); err != nil {
			return err
		}
	}
	return nil
}
