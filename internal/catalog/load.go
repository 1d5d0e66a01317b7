package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/papapumpkin/mainseq/internal/star"
)

// currentVersion is the newest catalog file format this build understands.
const currentVersion = 1

// Load reads a catalog file, picking the decoder by extension: .toml files
// hold [[star]] tables, .yaml/.yml files hold a stars list. A missing
// version field defaults to the current version.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var c Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &c); err != nil {
			return Catalog{}, fmt.Errorf("catalog: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Catalog{}, fmt.Errorf("catalog: parse %s: %w", path, err)
		}
	default:
		return Catalog{}, fmt.Errorf("catalog: %s: unsupported extension (want .toml, .yaml, or .yml)", path)
	}

	if c.Version == 0 {
		c.Version = currentVersion
	}
	if c.Version > currentVersion {
		return Catalog{}, fmt.Errorf("catalog: %s: version %d is newer than supported version %d", path, c.Version, currentVersion)
	}
	return c, nil
}

// ValidationError describes one invalid catalog entry.
type ValidationError struct {
	Name string
	Err  error
}

// Error renders the entry name alongside the underlying cause.
func (e ValidationError) Error() string {
	return fmt.Sprintf("star %q: %v", e.Name, e.Err)
}

// Validate checks every entry by resolving it with default options and
// collects the failures. It also rejects unnamed entries, duplicate names,
// and non-positive metallicities, which the resolver itself passes through.
func Validate(c Catalog) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool, len(c.Stars))

	for _, e := range c.Stars {
		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, ValidationError{Name: e.Name, Err: fmt.Errorf("entry has no name")})
			continue
		}
		key := strings.ToLower(e.Name)
		if seen[key] {
			errs = append(errs, ValidationError{Name: e.Name, Err: fmt.Errorf("duplicate name")})
			continue
		}
		seen[key] = true

		if e.Metallicity != nil && *e.Metallicity <= 0 {
			errs = append(errs, ValidationError{Name: e.Name, Err: fmt.Errorf("metallicity must be positive, got %g", *e.Metallicity)})
			continue
		}
		if _, err := star.Resolve(e.Seed(), star.DefaultOptions()); err != nil {
			errs = append(errs, ValidationError{Name: e.Name, Err: err})
		}
	}
	return errs
}
