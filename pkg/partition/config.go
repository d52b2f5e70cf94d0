package partition

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// classFile is the on-disk structure of a partition configuration file.
type classFile struct {
	Classes []Class `yaml:"classes" json:"classes"`
}

// LoadClasses reads workload class definitions from a YAML or JSON file,
// keyed on the file extension. The result feeds straight into NewGroup:
//
//	classes, err := partition.LoadClasses("pools.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	group, err := partition.NewGroup(classes...)
//
// A minimal YAML file:
//
//	classes:
//	  - name: io
//	    workers: 32
//	  - name: cpu
//	    workers: 0          # runtime.NumCPU()
//	  - name: critical
//	    workers: 2
//	    queue_capacity: 64
func LoadClasses(path string) ([]Class, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read partition config: %w", err)
	}

	var file classFile
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported partition config format: %s", ext)
	}

	if len(file.Classes) == 0 {
		return nil, errors.New("partition config defines no workload classes")
	}

	return file.Classes, nil
}
