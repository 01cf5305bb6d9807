package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/tidwall/gjson"

	"github.com/pcforge/pcforge/internal/utils"
	"github.com/pcforge/pcforge/pkg/catalog"
)

// SnapshotKey is the fixed key the storefront state is persisted under.
const SnapshotKey = "pc-store-storage"

// Persister is the storage port for whole-snapshot blobs. Load returns
// ok=false when no blob exists for the key.
type Persister interface {
	Load(key string) (data []byte, ok bool, err error)
	Save(key string, data []byte) error
}

// snapshot is the serialized subset of store state. Field names match the
// original persisted format.
type snapshot struct {
	IsDarkMode bool            `json:"isDarkMode"`
	Cart       []CartItem      `json:"cart"`
	User       *User           `json:"user"`
	Filters    catalog.Filters `json:"filters"`
}

func (s *Store) encodeSnapshot() ([]byte, error) {
	return json.Marshal(snapshot{
		IsDarkMode: s.darkMode,
		Cart:       s.cart,
		User:       s.user,
		Filters:    s.filters,
	})
}

// Load builds a store from the persisted snapshot, falling back to
// defaults when the blob is missing or malformed. Recovery is field-wise:
// a bad section falls back on its own without discarding the rest. Load
// itself never fails; a read error is logged and treated as a first run.
func Load(p Persister) *Store {
	s := New(p)
	if p == nil {
		return s
	}
	data, ok, err := p.Load(SnapshotKey)
	if err != nil {
		utils.Log.Warnf("loading snapshot: %v", err)
		return s
	}
	if !ok || !gjson.ValidBytes(data) {
		return s
	}

	s.darkMode = gjson.GetBytes(data, "isDarkMode").Bool()

	if res := gjson.GetBytes(data, "user"); res.IsObject() {
		var u User
		if err := json.Unmarshal([]byte(res.Raw), &u); err == nil {
			s.user = &u
		}
	}

	if res := gjson.GetBytes(data, "filters"); res.IsObject() {
		var f catalog.Filters
		if err := json.Unmarshal([]byte(res.Raw), &f); err == nil {
			s.filters = f
		}
	}

	if res := gjson.GetBytes(data, "cart"); res.IsArray() {
		for _, line := range res.Array() {
			var item CartItem
			if err := json.Unmarshal([]byte(line.Raw), &item); err != nil {
				continue
			}
			// A line with no id or a non-positive quantity is not a
			// valid cart state; drop it.
			if item.ID == "" || item.Quantity < 1 {
				continue
			}
			s.cart = append(s.cart, item)
		}
	}

	return s
}

// FilePersister stores snapshots as JSON files under a directory, one file
// per key, guarded by a file lock since separate CLI invocations share the
// same snapshot.
type FilePersister struct {
	Dir string
}

// NewFilePersister creates the directory if needed.
func NewFilePersister(dir string) (*FilePersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}
	return &FilePersister{Dir: dir}, nil
}

func (fp *FilePersister) path(key string) string {
	return filepath.Join(fp.Dir, key+".json")
}

// Load reads the blob for the key. A missing file is not an error.
func (fp *FilePersister) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(fp.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Save replaces the blob for the key. The whole file is rewritten under a
// lock; there is no incremental patching.
func (fp *FilePersister) Save(key string, data []byte) error {
	path := fp.path(key)
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", path, err)
	}
	defer lock.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
