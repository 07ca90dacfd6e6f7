package tilemap

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Layout is a named ASCII level for Parse.
type Layout struct {
	Name string
	Rows []string
}

// Loader walks an ordered sequence of levels. After the last level it wraps
// around to the first.
type Loader struct {
	names  []string
	load   func(i int) (*TileMap, error)
	index  int // index of the loaded level, -1 before the first load
	logger *log.Logger
}

// NewLoader discovers the *.tmx files in dir, sorted by name.
func NewLoader(fsys fs.FS, dir string, logger *log.Logger) (*Loader, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, dir)
	}
	sort.Strings(matches)

	names := make([]string, len(matches))
	for i, p := range matches {
		names[i] = strings.TrimSuffix(path.Base(p), ".tmx")
	}

	return newLoader(names, func(i int) (*TileMap, error) {
		return LoadTMX(fsys, matches[i])
	}, logger), nil
}

// NewLayoutLoader serves ASCII layouts in the given order.
func NewLayoutLoader(tileSize int, layouts []Layout, logger *log.Logger) (*Loader, error) {
	if len(layouts) == 0 {
		return nil, ErrNoLevels
	}
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = l.Name
	}
	return newLoader(names, func(i int) (*TileMap, error) {
		return Parse(layouts[i].Name, tileSize, layouts[i].Rows)
	}, logger), nil
}

func newLoader(names []string, load func(int) (*TileMap, error), logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		names:  names,
		load:   load,
		index:  -1,
		logger: logger.WithPrefix("levels"),
	}
}

// Names lists the levels in play order.
func (l *Loader) Names() []string {
	return append([]string(nil), l.names...)
}

// Current is the 1-based number of the loaded level, 0 before the first load.
func (l *Loader) Current() int {
	return l.index + 1
}

// NextMap loads the level after the current one. A failed load leaves the
// current level unchanged.
func (l *Loader) NextMap() (*TileMap, error) {
	next := (l.index + 1) % len(l.names)
	m, err := l.loadIndex(next)
	if err != nil {
		return nil, err
	}
	l.index = next
	return m, nil
}

// ReloadMap loads a fresh copy of the current level.
func (l *Loader) ReloadMap() (*TileMap, error) {
	if l.index < 0 {
		return l.NextMap()
	}
	return l.loadIndex(l.index)
}

func (l *Loader) loadIndex(i int) (*TileMap, error) {
	m, err := l.load(i)
	if err != nil {
		l.logger.Error("could not load level", "level", l.names[i], "error", err)
		return nil, err
	}
	l.logger.Info("loaded level",
		"level", l.names[i],
		"number", i+1,
		"size", fmt.Sprintf("%dx%d", m.Width(), m.Height()),
		"entities", m.Len())
	return m, nil
}
