package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Stage is one entry of a pipeline specification: a transform, its key in
// textual form, and whether it takes part.
type Stage struct {
	// Name selects the transform.
	Name Name `yaml:"name"`

	// Key is parsed by the transform's [Factory].  Integer keys are written
	// in decimal.  Keyless transforms require an empty key.
	Key string `yaml:"key,omitempty"`

	// Enabled stages run; disabled ones are skipped without parsing their
	// key.  When decoding YAML a missing field means true.
	Enabled bool `yaml:"enabled"`
}

// UnmarshalYAML decodes a stage, defaulting Enabled to true.  Fields other
// than name, key and enabled are rejected.
func (s *Stage) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			switch k := value.Content[i]; k.Value {
			case "name", "key", "enabled":
			default:
				return fmt.Errorf("line %d: unknown stage field %q", k.Line, k.Value)
			}
		}
	}
	type plain Stage
	raw := plain{Enabled: true}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*s = Stage(raw)
	return nil
}

// Spec is an unordered set of stages.  The order of Stages does not affect
// the resulting pipeline; see [EncryptOrder].
type Spec struct {
	Stages []Stage `yaml:"stages"`
}

// Set enables name with key, replacing an existing stage of the same name or
// appending a new one.
func (s *Spec) Set(name Name, key string) {
	for i := range s.Stages {
		if s.Stages[i].Name == name {
			s.Stages[i].Key = key
			s.Stages[i].Enabled = true
			return
		}
	}
	s.Stages = append(s.Stages, Stage{Name: name, Key: key, Enabled: true})
}

// Enabled returns the enabled stages in encryption order.
func (s *Spec) Enabled() []Stage {
	out := make([]Stage, 0, len(s.Stages))
	for _, st := range s.Stages {
		if st.Enabled {
			out = append(out, st)
		}
	}
	sortByPosition(out, func(st Stage) Name { return st.Name })
	return out
}

// Validate checks that every stage names a transform known to r and that no
// transform is listed twice.  Keys are not parsed; [New] does that.
func (s *Spec) Validate(r *Registry) error {
	seen := make(map[Name]bool, len(s.Stages))
	for _, st := range s.Stages {
		if !r.Has(st.Name) {
			return fmt.Errorf("%w: %q", ErrUnknownTransform, st.Name)
		}
		if seen[st.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateStage, st.Name)
		}
		seen[st.Name] = true
	}
	return nil
}
