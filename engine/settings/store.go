package settings

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

// Store persists Settings to per-OS application data. A Store that failed to
// open its backing storage still works: Load returns defaults and Save becomes
// a no-op, so the client never refuses to start over a settings problem.
type Store interface {
	// Load reads the saved settings, falling back to DefaultSettings when no
	// data exists, the data cannot be parsed, or storage is unavailable.
	//
	// Returns:
	//   - Settings: the loaded or default settings
	Load() Settings

	// Save writes the settings to storage.
	//
	// Parameters:
	//   - s: the settings to persist
	//
	// Returns:
	//   - error: error if serialization or the storage write fails
	Save(s Settings) error
}

type store struct {
	manager *gdata.Manager
	itemKey string
}

var _ Store = &store{}

// NewStore creates a Store backed by gdata application data.
//
// Parameters:
//   - options: functional options to configure the store
//
// Returns:
//   - Store: the configured store
func NewStore(options ...StoreOption) Store {
	cfg := &storeConfig{
		appName: "korangar",
		itemKey: "settings",
	}
	for _, option := range options {
		option(cfg)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: cfg.appName,
	})
	if err != nil {
		log.Printf("[Settings] could not open storage, settings will not persist: %v", err)
		manager = nil
	}

	return &store{
		manager: manager,
		itemKey: cfg.itemKey,
	}
}

func (st *store) Load() Settings {
	if st.manager == nil {
		return DefaultSettings()
	}

	data, err := st.manager.LoadItem(st.itemKey)
	if err != nil {
		log.Printf("[Settings] could not load saved settings: %v", err)
		return DefaultSettings()
	}
	if len(data) == 0 {
		return DefaultSettings()
	}

	s, err := decodeSettings(data)
	if err != nil {
		log.Printf("[Settings] could not parse saved settings: %v", err)
		return DefaultSettings()
	}
	return s
}

func (st *store) Save(s Settings) error {
	if st.manager == nil {
		return nil
	}

	data, err := encodeSettings(s)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	if err := st.manager.SaveItem(st.itemKey, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// encodeSettings serializes settings to the on-disk JSON form.
func encodeSettings(s Settings) ([]byte, error) {
	return json.Marshal(s)
}

// decodeSettings parses the on-disk JSON form. Fields absent from the data
// keep their zero values; callers decide whether that merits defaults.
func decodeSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

type storeConfig struct {
	appName string
	itemKey string
}

// StoreOption is a functional option for configuring a Store.
type StoreOption func(*storeConfig)

// WithAppName sets the application name used for the per-OS data directory.
//
// Parameters:
//   - appName: the application name
//
// Returns:
//   - StoreOption: option function to apply
func WithAppName(appName string) StoreOption {
	return func(c *storeConfig) {
		c.appName = appName
	}
}

// WithItemKey sets the storage key the settings are saved under.
//
// Parameters:
//   - itemKey: the item key
//
// Returns:
//   - StoreOption: option function to apply
func WithItemKey(itemKey string) StoreOption {
	return func(c *storeConfig) {
		c.itemKey = itemKey
	}
}
