// Package config holds girt's resolved configuration: CLI flags (parsed
// by the caller with pflag, mirroring up.go's package-level flag vars)
// overlaid with values from the external host-VCS configuration map that
// spec §6 treats as an out-of-scope collaborator.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akavel/girt/internal/events"
)

// Source is the external key->string configuration map (spec §6:
// "parsing the host VCS configuration file ... is an external
// collaborator"). girt never parses the underlying file itself.
type Source interface {
	Get(key string) (string, bool)
}

// MapSource is a Source backed by a plain map, used by tests and by any
// caller that has already parsed the host config into memory.
type MapSource map[string]string

func (m MapSource) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

const (
	DefaultCommentChar = '#'
	DefaultUndoLimit   = 5000
	DefaultEditor      = "vi"
)

// Config is girt's fully-resolved runtime configuration.
type Config struct {
	TodoFilePath string
	CommentChar  byte
	UndoLimit    int
	Editor       string

	// PostModifiedLineCommand is invoked with a changed line's full text
	// as its sole argument after a single-line edit (spec §6).
	PostModifiedLineCommand string

	NoColors bool
	Debug    bool
	DebugLog string

	AutoSelectNext bool

	// KeyBindings maps a Meta's config-file name (events.Meta.String())
	// to the key names bound to it, overriding DefaultKeyBindings.
	KeyBindings map[string][]string
}

// New returns a Config populated with girt's built-in defaults.
func New() *Config {
	return &Config{
		CommentChar: DefaultCommentChar,
		UndoLimit:   DefaultUndoLimit,
		Editor:      DefaultEditor,
		DebugLog:    "girt.debug",
		KeyBindings: map[string][]string{},
	}
}

// Overlay fills fields still at their built-in default from src, the
// external configuration source. Flags the caller explicitly set (i.e.
// already differ from New()'s defaults) always win.
func (c *Config) Overlay(src Source) error {
	if src == nil {
		return nil
	}
	if v, ok := src.Get("comment-char"); ok && c.CommentChar == DefaultCommentChar {
		if len(v) != 1 {
			return fmt.Errorf("config: comment-char must be exactly one byte, got %q", v)
		}
		c.CommentChar = v[0]
	}
	if v, ok := src.Get("undo-limit"); ok && c.UndoLimit == DefaultUndoLimit {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid undo-limit %q: %w", v, err)
		}
		c.UndoLimit = n
	}
	if v, ok := src.Get("editor"); ok && c.Editor == DefaultEditor {
		c.Editor = v
	}
	if v, ok := src.Get("post-modified-line-command"); ok && c.PostModifiedLineCommand == "" {
		c.PostModifiedLineCommand = v
	}
	if v, ok := src.Get("auto-select-next"); ok && !c.AutoSelectNext {
		c.AutoSelectNext = v == "true" || v == "1"
	}
	c.loadKeyBindings(src)
	return nil
}

// loadKeyBindings reads "bind.<MetaName>" entries, each a comma-separated
// list of key names (spec §6 "Key binding config").
func (c *Config) loadKeyBindings(src Source) {
	for _, name := range events.AllNames() {
		v, ok := src.Get("bind." + name)
		if _, set := c.KeyBindings[name]; !ok || v == "" || set {
			continue
		}
		keys := strings.Split(v, ",")
		for i := range keys {
			keys[i] = strings.TrimSpace(keys[i])
		}
		c.KeyBindings[name] = keys
	}
}
