package xconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func loadFromFiles(config any, filenames []string) error {
	for _, filename := range filenames {
		if err := loadFromFile(config, filename); err != nil {
			return fmt.Errorf("file %s: %w", filename, err)
		}
	}

	return nil
}

func loadFromFile(config any, filename string) error {
	data, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return json.Unmarshal(data, config)

	case ".yaml", ".yml":
		return yaml.Unmarshal(data, config)

	default:
		return fmt.Errorf("unsupported file extension")
	}
}
