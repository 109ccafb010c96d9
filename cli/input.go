package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hydronet/network"
)

// loadNetwork reads a network description from path, decoding YAML for
// .yaml/.yml files and JSON otherwise.
func loadNetwork(path string) (*network.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network file: %w", err)
	}

	var net network.Network
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &net); err != nil {
			return nil, fmt.Errorf("parse YAML network %q: %w", path, err)
		}
	default:
		if err = json.Unmarshal(data, &net); err != nil {
			return nil, fmt.Errorf("parse JSON network %q: %w", path, err)
		}
	}

	return &net, nil
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
