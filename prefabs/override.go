package prefabs

import "gopkg.in/yaml.v3"

// ApplyBehaviorOverride layers a raw mapping from a level spawn on top of
// a prefab's behavior block. Only the keys present in raw change; the
// rest keep the prefab's values.
func ApplyBehaviorOverride(base BehaviorSpec, raw map[string]any) (BehaviorSpec, error) {
	if len(raw) == 0 {
		return base, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return base, err
	}
	merged := base
	if err := yaml.Unmarshal(b, &merged); err != nil {
		return base, err
	}
	return merged, nil
}
