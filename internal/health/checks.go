package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/Dallionking/milestone/internal/checklist"
	"github.com/Dallionking/milestone/internal/config"
	"github.com/Dallionking/milestone/internal/storage"
	"github.com/Dallionking/milestone/internal/tui/components"
)

// Smallest terminal the board lays out in without clipping the header.
const (
	minTermWidth  = components.GridGutter + components.MinColumns*components.CellWidth
	minTermHeight = 16
)

// registerChecks registers every check across three categories.
func (c *Checker) registerChecks() {
	// Config checks
	c.add("config-file", "config", c.checkConfigFile)
	c.add("config-valid", "config", c.checkConfigValid)

	// Storage checks
	c.add("data-dir", "storage", c.checkDataDir)
	c.add("checklist-key", "storage", c.checkChecklistKey)
	c.add("theme-key", "storage", c.checkThemeKey)
	c.add("log-file", "storage", c.checkLogFile)

	// Terminal checks
	c.add("tty", "terminal", c.checkTTY)
	c.add("size", "terminal", c.checkSize)
	c.add("color", "terminal", c.checkColor)
}

// ---------------------------------------------------------------------------
// Config checks
// ---------------------------------------------------------------------------

func (c *Checker) checkConfigFile(_ context.Context) CheckResult {
	if c.configFile == "" {
		return CheckResult{Status: StatusPass, Message: "none found, using defaults"}
	}
	return CheckResult{Status: StatusPass, Message: c.configFile}
}

func (c *Checker) checkConfigValid(_ context.Context) CheckResult {
	errs := config.Validate(c.cfg)
	if len(errs) == 0 {
		return CheckResult{Status: StatusPass, Message: "valid"}
	}
	if len(errs) == 1 {
		return CheckResult{Status: StatusFail, Message: errs[0].Error()}
	}
	return CheckResult{Status: StatusFail, Message: fmt.Sprintf("%s (+%d more)", errs[0].Error(), len(errs)-1)}
}

// ---------------------------------------------------------------------------
// Storage checks
// ---------------------------------------------------------------------------

func (c *Checker) checkDataDir(_ context.Context) CheckResult {
	info, err := os.Stat(c.cfg.DataDir)
	if errors.Is(err, os.ErrNotExist) {
		return CheckResult{Status: StatusWarn, Message: "missing, created on first run"}
	}
	if err != nil {
		return CheckResult{Status: StatusFail, Message: err.Error()}
	}
	if !info.IsDir() {
		return CheckResult{Status: StatusFail, Message: "not a directory"}
	}

	probe, err := os.CreateTemp(c.cfg.DataDir, ".probe-*")
	if err != nil {
		return CheckResult{Status: StatusFail, Message: "not writable"}
	}
	probe.Close()
	os.Remove(probe.Name())
	return CheckResult{Status: StatusPass, Message: c.cfg.DataDir}
}

// readKey reads a stored key without creating the data directory.
func (c *Checker) readKey(key string) ([]byte, error) {
	if _, err := os.Stat(c.cfg.DataDir); err != nil {
		return nil, err
	}
	kv, err := storage.OpenDisk(c.cfg.DataDir)
	if err != nil {
		return nil, err
	}
	if !kv.Has(key) {
		return nil, os.ErrNotExist
	}
	return kv.Read(key)
}

func (c *Checker) checkChecklistKey(_ context.Context) CheckResult {
	raw, err := c.readKey(storage.ChecklistKey)
	if errors.Is(err, os.ErrNotExist) {
		return CheckResult{Status: StatusPass, Message: "no saved progress yet"}
	}
	if err != nil {
		return CheckResult{Status: StatusFail, Message: err.Error()}
	}

	var items []bool
	if err := json.Unmarshal(raw, &items); err != nil {
		return CheckResult{Status: StatusWarn, Message: "unreadable, board starts empty"}
	}
	m := checklist.Compute(items)
	switch {
	case len(items) > checklist.TotalItems:
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("%d entries, extra ignored", len(items))}
	case len(items) < checklist.TotalItems:
		return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d sold (%d entries stored)", m.Completed, len(items))}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%d sold", m.Completed)}
}

func (c *Checker) checkThemeKey(_ context.Context) CheckResult {
	raw, err := c.readKey(storage.DarkModeKey)
	if errors.Is(err, os.ErrNotExist) {
		return CheckResult{Status: StatusPass, Message: "not set, using theme.default"}
	}
	if err != nil {
		return CheckResult{Status: StatusFail, Message: err.Error()}
	}
	switch string(raw) {
	case "true":
		return CheckResult{Status: StatusPass, Message: "dark"}
	case "false":
		return CheckResult{Status: StatusPass, Message: "light"}
	}
	return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("unexpected value %q, reads as light", truncate(string(raw), 12))}
}

func (c *Checker) checkLogFile(_ context.Context) CheckResult {
	dir := filepath.Dir(c.cfg.Log.File)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return CheckResult{Status: StatusWarn, Message: "directory missing, created on first run"}
	}
	f, err := os.OpenFile(c.cfg.Log.File, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return CheckResult{Status: StatusFail, Message: "not writable"}
	}
	f.Close()
	return CheckResult{Status: StatusPass, Message: c.cfg.Log.File}
}

// ---------------------------------------------------------------------------
// Terminal checks
// ---------------------------------------------------------------------------

func (c *Checker) checkTTY(_ context.Context) CheckResult {
	if c.term == nil || !isatty.IsTerminal(c.term.Fd()) {
		return CheckResult{Status: StatusWarn, Message: "stdout is not a terminal"}
	}
	return CheckResult{Status: StatusPass, Message: "interactive"}
}

func (c *Checker) checkSize(_ context.Context) CheckResult {
	if c.term == nil {
		return CheckResult{Status: StatusWarn, Message: "no terminal"}
	}
	w, h, err := term.GetSize(int(c.term.Fd()))
	if err != nil {
		return CheckResult{Status: StatusWarn, Message: "size unknown"}
	}
	msg := fmt.Sprintf("%dx%d", w, h)
	if w < minTermWidth {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("%s, need %d columns", msg, minTermWidth)}
	}
	if h < minTermHeight {
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("%s, grid will be cramped", msg)}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%s, %d cells per row", msg, components.ColumnsFor(w, c.cfg.Grid.Columns))}
}

func (c *Checker) checkColor(_ context.Context) CheckResult {
	if c.term == nil {
		return CheckResult{Status: StatusWarn, Message: "no terminal"}
	}
	switch termenv.NewOutput(c.term).ColorProfile() {
	case termenv.TrueColor:
		return CheckResult{Status: StatusPass, Message: "true color"}
	case termenv.ANSI256:
		return CheckResult{Status: StatusPass, Message: "256 colors"}
	case termenv.ANSI:
		return CheckResult{Status: StatusWarn, Message: "16 colors, palette approximated"}
	default:
		return CheckResult{Status: StatusWarn, Message: "no color support"}
	}
}
