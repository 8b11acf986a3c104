package sensor

import(
	"fmt"

	"gopkg.in/yaml.v2"
)

// LoadYaml parses a user-supplied profile table, e.g. for sensors not
// in the built-in database.
func LoadYaml(b []byte) ([]Profile, error) {
	var out []Profile
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("parse sensor profiles: %v", err)
	}
	return out, nil
}

// AsYaml renders a profile table, mostly so users have a template to
// edit.
func AsYaml(profiles []Profile) (string, error) {
	b, err := yaml.Marshal(profiles)
	if err != nil {
		return "", fmt.Errorf("marshal sensor profiles: %v", err)
	}
	return string(b), nil
}
