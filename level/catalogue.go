package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/GamesFromRust/piston-shooty/logger"
)

const indexFile = "levels.yaml"

//go:embed levels/*.csv levels/levels.yaml
var builtin embed.FS

// Entry maps a display name to a grid file
type Entry struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

type index struct {
	Levels []Entry `yaml:"levels"`
}

// Catalogue is the ordered list of playable levels and where to read them
type Catalogue struct {
	fsys    fs.FS
	entries []Entry
	Strict  bool
}

// Builtin returns the levels compiled into the binary
func Builtin() *Catalogue {
	sub, err := fs.Sub(builtin, "levels")
	if err != nil {
		panic(err)
	}
	c, err := NewCatalogue(sub, true)
	if err != nil {
		panic(fmt.Sprintf("built-in levels: %v", err))
	}
	return c
}

// NewCatalogue reads levels.yaml from fsys for the play order
// Without an index every visible .csv file is a level named after the file, in name order
func NewCatalogue(fsys fs.FS, strict bool) (*Catalogue, error) {
	c := &Catalogue{fsys: fsys, Strict: strict}

	data, err := fs.ReadFile(fsys, indexFile)
	switch {
	case err == nil:
		var idx index
		if err := yaml.Unmarshal(data, &idx); err != nil {
			return nil, fmt.Errorf("parse %s: %w", indexFile, err)
		}
		c.entries = idx.Levels
	case errors.Is(err, fs.ErrNotExist):
		c.entries, err = discover(fsys)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("read %s: %w", indexFile, err)
	}

	if len(c.entries) == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	return c, nil
}

func discover(fsys fs.FS) ([]Entry, error) {
	dirEntries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read level directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || strings.HasPrefix(name, ".") || path.Ext(name) != ".csv" {
			continue
		}
		entries = append(entries, Entry{Name: strings.TrimSuffix(name, ".csv"), File: name})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Restrict keeps only the named levels, in the given order
func (c *Catalogue) Restrict(names []string) error {
	if len(names) == 0 {
		return nil
	}
	kept := make([]Entry, 0, len(names))
	for _, n := range names {
		e, ok := c.find(n)
		if !ok {
			return fmt.Errorf("level %q: %w", n, ErrUnknownLevel)
		}
		kept = append(kept, e)
	}
	c.entries = kept
	return nil
}

// Names returns the level names in play order
func (c *Catalogue) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of levels
func (c *Catalogue) Len() int {
	return len(c.entries)
}

// Load parses the named level into reg
func (c *Catalogue) Load(name string, reg Registrar) error {
	e, ok := c.find(name)
	if !ok {
		return fmt.Errorf("level %q: %w", name, ErrUnknownLevel)
	}

	f, err := c.fsys.Open(e.File)
	if err != nil {
		return fmt.Errorf("level %q: %w", name, err)
	}
	defer f.Close()

	if err := Parse(f, reg, c.Strict); err != nil {
		return fmt.Errorf("level %q: %w", name, err)
	}

	logger.Log.WithFields(logrus.Fields{"level": name, "file": e.File}).Info("Level loaded")
	return nil
}

func (c *Catalogue) find(name string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
