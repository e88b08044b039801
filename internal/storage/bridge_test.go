package storage

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Dallionking/milestone/internal/checklist"
)

// failingKV rejects every operation.
type failingKV struct{}

func (failingKV) Read(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingKV) Write(string, []byte) error  { return errors.New("disk on fire") }
func (failingKV) Has(string) bool             { return false }

func TestLoadChecklistAbsentKeyIsEmpty(t *testing.T) {
	b := NewBridge(NewMemory(), zaptest.NewLogger(t))
	items := b.LoadChecklist()
	assert.NotNil(t, items)
	assert.Empty(t, items)

	s := b.OpenStore(false)
	assert.Zero(t, s.Metrics().Completed)
}

func TestLoadChecklistMalformedIsEmpty(t *testing.T) {
	for name, raw := range map[string]string{
		"garbage":      "{not json",
		"wrong type":   `{"a":1}`,
		"mixed array":  `[true, "yes", false]`,
		"null literal": `null`,
		"empty":        ``,
	} {
		t.Run(name, func(t *testing.T) {
			kv := NewMemory()
			require.NoError(t, kv.Write(ChecklistKey, []byte(raw)))
			b := NewBridge(kv, zaptest.NewLogger(t))

			assert.Empty(t, b.LoadChecklist())
			assert.Zero(t, b.OpenStore(false).Metrics().Completed)
		})
	}
}

func TestLoadChecklistAllTrue(t *testing.T) {
	all := make([]bool, checklist.TotalItems)
	for i := range all {
		all[i] = true
	}
	raw, err := json.Marshal(all)
	require.NoError(t, err)

	kv := NewMemory()
	require.NoError(t, kv.Write(ChecklistKey, raw))

	m := NewBridge(kv, nil).OpenStore(false).Metrics()
	assert.Equal(t, 1000, m.Completed)
	assert.Equal(t, 100.0, m.Percentage)
}

func TestLoadChecklistShortArray(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, kv.Write(ChecklistKey, []byte(`[true,false,true]`)))

	s := NewBridge(kv, nil).OpenStore(false)
	assert.Equal(t, 2, s.Metrics().Completed)
	assert.True(t, s.Checklist().Checked(2))
	assert.False(t, s.Checklist().Checked(999))
}

func TestReadFailureFailsOpen(t *testing.T) {
	b := NewBridge(failingKV{}, zaptest.NewLogger(t))
	assert.Empty(t, b.LoadChecklist())
	assert.False(t, b.LoadDarkMode())

	s := b.OpenStore(true)
	assert.True(t, s.DarkMode(), "fallback theme applies when nothing is stored")

	// Write failures are swallowed.
	assert.NotPanics(t, func() {
		s.Toggle(1)
		s.ToggleTheme()
	})
}

func TestDarkModeEncoding(t *testing.T) {
	kv := NewMemory()
	b := NewBridge(kv, nil)

	require.NoError(t, b.SaveDarkMode(true))
	raw, err := kv.Read(DarkModeKey)
	require.NoError(t, err)
	assert.Equal(t, "true", string(raw))
	assert.True(t, b.LoadDarkMode())

	require.NoError(t, b.SaveDarkMode(false))
	raw, err = kv.Read(DarkModeKey)
	require.NoError(t, err)
	assert.Equal(t, "false", string(raw))
	assert.False(t, b.LoadDarkMode())

	require.NoError(t, kv.Write(DarkModeKey, []byte("TRUE")))
	assert.False(t, b.LoadDarkMode(), "only the exact literal counts")
}

func TestStoredThemeBeatsFallback(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, kv.Write(DarkModeKey, []byte("false")))

	s := NewBridge(kv, nil).OpenStore(true)
	assert.False(t, s.DarkMode())
}

func TestObserverWritesOnEveryChange(t *testing.T) {
	kv := NewMemory()
	b := NewBridge(kv, zaptest.NewLogger(t))
	s := b.OpenStore(false)

	s.Toggle(0)
	s.Toggle(5)
	assert.Equal(t, 2, checklist.Compute(b.LoadChecklist()).Completed)

	s.Toggle(5)
	assert.Equal(t, 1, checklist.Compute(b.LoadChecklist()).Completed)

	s.CompleteAll()
	assert.Equal(t, 1000, checklist.Compute(b.LoadChecklist()).Completed)

	s.Reset()
	assert.Zero(t, checklist.Compute(b.LoadChecklist()).Completed)

	assert.False(t, kv.Has(DarkModeKey), "theme key untouched by checklist ops")
	s.ToggleTheme()
	assert.True(t, b.LoadDarkMode())
}

func TestReloadRoundTrip(t *testing.T) {
	kv := NewMemory()
	first := NewBridge(kv, nil).OpenStore(false)
	for _, i := range []int{3, 14, 159, 999} {
		first.Toggle(i)
	}
	first.ToggleTheme()

	second := NewBridge(kv, nil).OpenStore(false)
	assert.Equal(t, first.Checklist().Items(), second.Checklist().Items())
	assert.True(t, second.DarkMode())
}

func TestDiskKVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	kv, err := OpenDisk(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, kv.BasePath())

	assert.False(t, kv.Has(ChecklistKey))
	_, err = kv.Read(ChecklistKey)
	assert.Error(t, err)

	b := NewBridge(kv, nil)
	s := b.OpenStore(false)
	s.Toggle(7)
	s.SetTheme(true)

	reopened, err := OpenDisk(dir)
	require.NoError(t, err)
	again := NewBridge(reopened, nil).OpenStore(false)
	assert.True(t, again.Checklist().Checked(7))
	assert.True(t, again.DarkMode())
}

func TestOpenDiskRejectsEmptyPath(t *testing.T) {
	_, err := OpenDisk("")
	assert.Error(t, err)
}
