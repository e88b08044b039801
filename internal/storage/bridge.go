package storage

import (
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/Dallionking/milestone/internal/checklist"
)

// Fixed storage keys.
const (
	ChecklistKey = "onemandb_milestone"
	DarkModeKey  = "onemandb_dark_mode"
)

// Bridge moves board state between a KV and the checklist store. Reads fail
// open: anything unreadable comes back as the empty default. Writes that fail
// are logged and dropped.
type Bridge struct {
	kv  KV
	log *zap.Logger
}

// NewBridge wires a bridge to kv. A nil logger is replaced with a no-op one.
func NewBridge(kv KV, log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{kv: kv, log: log.Named("storage")}
}

// LoadChecklist returns the stored completion sequence, or an empty one when
// the key is absent or does not hold a JSON array of booleans.
func (b *Bridge) LoadChecklist() []bool {
	raw, err := b.kv.Read(ChecklistKey)
	if err != nil {
		b.log.Debug("checklist not loaded, starting empty", zap.Error(err))
		return []bool{}
	}
	var items []bool
	if err := json.Unmarshal(raw, &items); err != nil {
		b.log.Debug("checklist unparseable, starting empty", zap.Error(err))
		return []bool{}
	}
	if items == nil {
		return []bool{}
	}
	return items
}

// LoadDarkMode returns the stored theme flag. Only the literal "true" counts.
func (b *Bridge) LoadDarkMode() bool {
	raw, err := b.kv.Read(DarkModeKey)
	if err != nil {
		return false
	}
	return string(raw) == "true"
}

// HasDarkMode reports whether a theme preference was ever stored.
func (b *Bridge) HasDarkMode() bool {
	return b.kv.Has(DarkModeKey)
}

// SaveChecklist writes items as a JSON array.
func (b *Bridge) SaveChecklist(items []bool) error {
	if items == nil {
		items = []bool{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return b.kv.Write(ChecklistKey, raw)
}

// SaveDarkMode writes the theme flag as "true" or "false".
func (b *Bridge) SaveDarkMode(dark bool) error {
	return b.kv.Write(DarkModeKey, []byte(strconv.FormatBool(dark)))
}

// Observe persists the key touched by a committed transition.
func (b *Bridge) Observe(c checklist.Change) {
	var err error
	switch c.Kind {
	case checklist.ChangeItems:
		err = b.SaveChecklist(c.Items)
	case checklist.ChangeTheme:
		err = b.SaveDarkMode(c.DarkMode)
	default:
		return
	}
	if err != nil {
		b.log.Warn("persist failed",
			zap.Stringer("kind", c.Kind),
			zap.String("op", c.Op),
			zap.Error(err),
		)
		return
	}
	b.log.Debug("persisted", zap.Stringer("kind", c.Kind), zap.String("op", c.Op))
}

// OpenStore loads both keys and returns a checklist store that writes back
// through this bridge on every change. fallbackDark is used when no theme was
// ever stored.
func (b *Bridge) OpenStore(fallbackDark bool) *checklist.Store {
	dark := fallbackDark
	if b.HasDarkMode() {
		dark = b.LoadDarkMode()
	}
	s := checklist.NewStore(b.LoadChecklist(), dark)
	s.Subscribe(b)
	return s
}
