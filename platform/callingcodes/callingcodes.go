// Package callingcodes loads the externally supplied calling-code-to-region
// table the phonenumber engine needs at construction time, standing in for
// the "static numbering-plan table" the source library ships as a
// generated resource.
package callingcodes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Table is the on-disk shape of the calling-code table fixture: a map of
// calling code (as a string key, since YAML keys are strings) to its list
// of region codes, main region first.
type Table map[string][]string

// Load reads and parses the calling-code table from path.
func Load(path string) (map[int][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("callingcodes: reading %s: %w", path, err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("callingcodes: parsing %s: %w", path, err)
	}

	out := make(map[int][]string, len(table))
	for key, regions := range table {
		var cc int
		if _, err := fmt.Sscanf(key, "%d", &cc); err != nil {
			return nil, fmt.Errorf("callingcodes: invalid calling code key %q: %w", key, err)
		}
		out[cc] = regions
	}
	return out, nil
}
