package config

import (
	"encoding/json"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// VcSeed is one VC definition from the boot seed file.
type VcSeed struct {
	VcName   string            `yaml:"vcName"`
	Quota    map[string]int    `yaml:"quota"`
	Metadata map[string]string `yaml:"metadata"`
}

// QuotaJSON renders the quota in the stored form.
func (s VcSeed) QuotaJSON() string {
	raw, _ := json.Marshal(s.Quota)
	return string(raw)
}

// MetadataJSON renders the metadata in the stored form.
func (s VcSeed) MetadataJSON() string {
	if s.Metadata == nil {
		return "{}"
	}
	raw, _ := json.Marshal(s.Metadata)
	return string(raw)
}

// LoadVcSeed reads the seed file. Every entry must carry a name and a
// quota; a partial file is rejected whole.
func LoadVcSeed(path string) ([]VcSeed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vc seed file: %w", err)
	}

	var seeds []VcSeed
	if err := yaml.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("parse vc seed file %s: %w", path, err)
	}

	for i, seed := range seeds {
		if seed.VcName == "" {
			return nil, fmt.Errorf("vc seed entry %d has no vcName", i)
		}
		if len(seed.Quota) == 0 {
			return nil, fmt.Errorf("vc seed entry %s has no quota", seed.VcName)
		}
	}
	return seeds, nil
}
