package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/terraincognita07/aajkakhana/internal/models"
	"github.com/terraincognita07/aajkakhana/menudata"
	"gopkg.in/yaml.v3"
)

const (
	MenuFormatJSON = "json"
	MenuFormatYAML = "yaml"
)

type menuDocument struct {
	Days []models.DayMenu `json:"days" yaml:"days"`
}

// LoadMenuCycle reads a dataset from path, or the embedded default when path is empty.
func LoadMenuCycle(path string) (*MenuCycle, error) {
	if strings.TrimSpace(path) == "" {
		return ParseMenuCycle(menudata.Default, MenuFormatJSON)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu %s: %w", path, err)
	}

	cycle, err := ParseMenuCycle(content, MenuFormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("load menu %s: %w", path, err)
	}
	return cycle, nil
}

func MenuFormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return MenuFormatYAML
	default:
		return MenuFormatJSON
	}
}

func ParseMenuCycle(content []byte, format string) (*MenuCycle, error) {
	document := menuDocument{}

	switch format {
	case MenuFormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&document); err != nil {
			return nil, fmt.Errorf("%w: parse yaml: %v", ErrInvalidMenu, err)
		}
	case MenuFormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(content))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&document); err != nil {
			return nil, fmt.Errorf("%w: parse json: %v", ErrInvalidMenu, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidMenu, format)
	}

	return NewMenuCycle(document.Days)
}
