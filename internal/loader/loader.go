package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	goyaml "gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat reports a file whose extension is neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported file format, use YAML or JSON")

// Load reads the file at path and decodes it into an untyped document tree
// (map[string]any, []any, scalars). The parser is chosen by file extension:
// .yaml and .yml decode as YAML, .json as JSON. Every failure is logged at
// error level before it propagates.
func Load(logger *log.Logger, path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Error("file not found", "path", path)
			return nil, fmt.Errorf("file not found: %w", err)
		}
		logger.Error("error loading file", "path", path, "err", err)
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	var doc any
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		if err := goyaml.Unmarshal(raw, &doc); err != nil {
			logger.Error("error parsing YAML file", "path", path, "err", err)
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case strings.HasSuffix(path, ".json"):
		if err := json.Unmarshal(raw, &doc); err != nil {
			logger.Error("error parsing JSON file", "path", path, "err", err)
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		logger.Error("unsupported file format", "path", path)
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return doc, nil
}
