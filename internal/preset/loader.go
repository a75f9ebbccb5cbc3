package preset

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/xtding233/enemy-scaling/internal/scaling"
)

// DefaultName is the preset resolved when no name is given.
const DefaultName = "default"

var validName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Paths helper for preset files.
type Paths struct {
	BaseDir string // base directory, e.g., ./config
}

func (p Paths) Dir() string {
	return filepath.Join(p.BaseDir, "presets")
}
func (p Paths) DefaultPath() string {
	return filepath.Join(p.Dir(), DefaultName+".yaml")
}
func (p Paths) PresetPath(name string) string {
	return filepath.Join(p.Dir(), name+".yaml")
}

// Loader reads YAML presets and merges builtin → default → named preset.
type Loader struct {
	paths Paths
	log   *slog.Logger

	mu    sync.RWMutex
	cache map[string]RawPreset // key: preset name, DefaultName for default only
}

// NewLoader creates a preset loader rooted at baseDir. A nil logger discards output.
func NewLoader(baseDir string, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		log:   log,
		cache: make(map[string]RawPreset),
	}
}

// Paths returns the file layout the loader reads from.
func (l *Loader) Paths() Paths { return l.paths }

// Builtin is the bottom layer of every merge: the calculator's initial form.
func Builtin() RawPreset {
	raw := Encode(scaling.Defaults(), scaling.DefaultToggles())
	raw.Version = "builtin"
	return raw
}

// LoadMerged loads and merges builtin → default.yaml → <name>.yaml.
// It returns the merged RawPreset without validation.
func (l *Loader) LoadMerged(name string) (RawPreset, error) {
	name, err := cleanName(name)
	if err != nil {
		return RawPreset{}, err
	}

	l.mu.RLock()
	if raw, ok := l.cache[name]; ok {
		l.mu.RUnlock()
		return raw, nil
	}
	l.mu.RUnlock()

	defRaw, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawPreset{}, fmt.Errorf("read default: %w", err)
	}
	merged := Builtin()
	if err := mergeRaw(&merged, defRaw); err != nil {
		return RawPreset{}, err
	}

	if name != DefaultName {
		path := l.paths.PresetPath(name)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return RawPreset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
		}
		nameRaw, err := readYAML(path)
		if err != nil {
			return RawPreset{}, fmt.Errorf("read preset %s: %w", name, err)
		}
		if err := mergeRaw(&merged, nameRaw); err != nil {
			return RawPreset{}, err
		}
	}
	l.log.Debug("preset loaded", "name", name, "dir", l.paths.Dir(), "version", merged.Version)

	l.mu.Lock()
	l.cache[name] = merged
	l.mu.Unlock()
	return merged, nil
}

// Resolve merges the named preset with o and converts it into engine params.
func (l *Loader) Resolve(name string, o Overrides) (RawPreset, Resolved, error) {
	merged, err := l.LoadMerged(name)
	if err != nil {
		return RawPreset{}, Resolved{}, err
	}
	if err := mergeRaw(&merged, o.Raw()); err != nil {
		return RawPreset{}, Resolved{}, err
	}
	p, t, err := ToParams(merged)
	if err != nil {
		l.log.Warn("preset rejected", "name", name, "err", err)
		return RawPreset{}, Resolved{}, err
	}
	if name == "" {
		name = DefaultName
	}
	return merged, Resolved{
		Name:    name,
		Label:   merged.Label,
		Version: merged.Version,
		Params:  p,
		Toggles: t,
	}, nil
}

// List returns the names of the presets on disk, sorted, default excluded.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.paths.Dir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		n := strings.TrimSuffix(e.Name(), ".yaml")
		if n == DefaultName || !validName.MatchString(n) {
			continue
		}
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// Save writes raw as the named preset and drops cached merges.
func (l *Loader) Save(name string, raw RawPreset) (string, error) {
	name, err := cleanName(name)
	if err != nil {
		return "", err
	}
	path := l.paths.PresetPath(name)
	if err := Save(path, raw); err != nil {
		return "", err
	}
	l.Invalidate()
	l.log.Info("preset saved", "name", name, "path", path)
	return path, nil
}

// WatchPaths lists the files whose change invalidates the named preset.
func (l *Loader) WatchPaths(name string) []string {
	paths := []string{l.paths.DefaultPath()}
	if n, err := cleanName(name); err == nil && n != DefaultName {
		paths = append(paths, l.paths.PresetPath(n))
	}
	return paths
}

// Invalidate clears loader's cache. Call after hot-reload detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawPreset)
}

func cleanName(name string) (string, error) {
	name = lower(name)
	if name == "" {
		return DefaultName, nil
	}
	if !validName.MatchString(name) {
		return "", fmt.Errorf("%w: bad preset name %q", ErrInvalidPreset, name)
	}
	return name, nil
}

// readYAML loads a YAML file into RawPreset. Missing files return a zero preset, no error.
func readYAML(path string) (RawPreset, error) {
	var raw RawPreset
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawPreset{}, nil
		}
		return RawPreset{}, err
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return RawPreset{}, fmt.Errorf("%w: %s: %v", ErrInvalidPreset, filepath.Base(path), err)
	}
	return raw, nil
}

// mergeRaw overlays src onto dst: every set field in src wins.
func mergeRaw(dst *RawPreset, src RawPreset) error {
	if err := mergo.Merge(dst, src, mergo.WithOverride, mergo.WithoutDereference); err != nil {
		return fmt.Errorf("merge preset: %w", err)
	}
	return nil
}
