package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"designzone/internal/design"
	"designzone/internal/zone"

	"gopkg.in/yaml.v3"
)

// designFile: {"nodes": [...]}. A bare array of nodes is accepted too.
type designFile struct {
	Nodes []design.Node `json:"nodes"`
}

// zonesFile: YAML (or JSON) document with a top-level zones list
type zonesFile struct {
	Zones []zone.Zone `yaml:"zones"`
}

func readDesign(path string) ([]design.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read design: %w", err)
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var nodes []design.Node
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			return nil, fmt.Errorf("failed to parse design: %w", err)
		}
		return nodes, nil
	}

	var f designFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse design: %w", err)
	}
	return f.Nodes, nil
}

func readZones(path string) ([]zone.Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones: %w", err)
	}

	var f zonesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse zones: %w", err)
	}
	return f.Zones, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
