// Package store persists ideas, collaborations and websites in an embedded buntdb database.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tidwall/buntdb"
)

// MemoryPath opens a database that lives only as long as the process.
const MemoryPath = ":memory:"

const (
	IdeaTable    = "ideas"
	CollabTable  = "collabs"
	WebsiteTable = "websites"
)

// ErrNotFound is returned when no record has the requested key.
var ErrNotFound = errors.New("record not found")

// ErrSlugTaken is returned when a website slug belongs to another site.
var ErrSlugTaken = errors.New("slug already in use")

// Store wraps the database handle.
type Store struct {
	path  string
	db    *buntdb.DB
	now   func() time.Time
	newID func() string
}

// Open opens or creates the database at path, creating its directory when needed.
func Open(path string) (s *Store, err error) {
	if path != MemoryPath {
		err = os.MkdirAll(filepath.Dir(path), 0750)
		if err != nil {
			err = errors.Wrapf(err, "failed to create store directory for %s", path)
			return s, err
		}
	}

	var db *buntdb.DB
	db, err = buntdb.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open store: %s", path)
		return s, err
	}

	s = &Store{
		path:  path,
		db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}

	err = s.init()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, err
}

func (s *Store) init() (err error) {
	indexes := []struct {
		name    string
		pattern string
		field   string
	}{
		{name: "ideas_created", pattern: IdeaTable + ":*", field: "created_at"},
		{name: "collabs_created", pattern: CollabTable + ":*", field: "created_at"},
		{name: "websites_created", pattern: WebsiteTable + ":*", field: "created_at"},
		{name: "websites_slug", pattern: WebsiteTable + ":*", field: "slug"},
	}

	for _, idx := range indexes {
		err = s.db.ReplaceIndex(idx.name, idx.pattern, buntdb.IndexJSON(idx.field))
		if err != nil {
			err = errors.Wrapf(err, "failed to create index %s", idx.name)
			return err
		}
	}

	return err
}

// Path is the database location.
func (s *Store) Path() (path string) {
	path = s.path
	return path
}

// Close flushes and closes the database.
func (s *Store) Close() (err error) {
	err = s.db.Close()
	if err != nil {
		err = errors.Wrap(err, "failed to close store")
	}
	return err
}

// Shrink compacts the append-only file.
func (s *Store) Shrink() (err error) {
	if s.path == MemoryPath {
		return err
	}

	err = s.db.Shrink()
	if err != nil {
		err = errors.Wrap(err, "failed to shrink store")
	}
	return err
}

func key(table, id string) (k string) {
	k = table + ":" + id
	return k
}

// put stores v under table:id.
func (s *Store) put(table, id string, v interface{}) (err error) {
	var data []byte
	data, err = json.Marshal(v)
	if err != nil {
		err = errors.Wrapf(err, "failed to encode %s record", table)
		return err
	}

	err = s.db.Update(func(tx *buntdb.Tx) error {
		_, _, setErr := tx.Set(key(table, id), string(data), nil)
		return setErr
	})
	if err != nil {
		err = errors.Wrapf(err, "failed to write %s %s", table, id)
	}

	return err
}

// get decodes table:id into out.
func (s *Store) get(table, id string, out interface{}) (err error) {
	var val string
	err = s.db.View(func(tx *buntdb.Tx) (txErr error) {
		val, txErr = tx.Get(key(table, id))
		return txErr
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		err = errors.Wrapf(ErrNotFound, "%s %s", table, id)
		return err
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to read %s %s", table, id)
		return err
	}

	err = json.Unmarshal([]byte(val), out)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode %s %s", table, id)
	}

	return err
}

// exists reports whether table:id is present.
func (s *Store) exists(table, id string) (found bool, err error) {
	err = s.db.View(func(tx *buntdb.Tx) error {
		_, getErr := tx.Get(key(table, id))
		if errors.Is(getErr, buntdb.ErrNotFound) {
			return nil
		}
		found = getErr == nil
		return getErr
	})
	if err != nil {
		err = errors.Wrapf(err, "failed to read %s %s", table, id)
	}
	return found, err
}

// remove deletes table:id.
func (s *Store) remove(table, id string) (err error) {
	err = s.db.Update(func(tx *buntdb.Tx) error {
		_, delErr := tx.Delete(key(table, id))
		return delErr
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		err = errors.Wrapf(ErrNotFound, "%s %s", table, id)
		return err
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to delete %s %s", table, id)
	}
	return err
}

// scan walks index in ascending order, handing each value to fn.
func (s *Store) scan(index string, fn func(val string) error) (err error) {
	err = s.db.View(func(tx *buntdb.Tx) (txErr error) {
		iterErr := tx.Ascend(index, func(_, val string) bool {
			txErr = fn(val)
			return txErr == nil
		})
		if txErr == nil {
			txErr = iterErr
		}
		return txErr
	})
	if err != nil {
		err = errors.Wrapf(err, "failed to scan %s", index)
	}
	return err
}
