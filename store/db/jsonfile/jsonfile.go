// Package jsonfile stores reminders in a single human-readable JSON file that
// maps timestamp keys to records. Every write replaces the whole file.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pkg/errors"

	rerrors "github.com/hrygo/laddoo/internal/errors"
	"github.com/hrygo/laddoo/internal/profile"
	"github.com/hrygo/laddoo/store"
)

// record is the on-disk shape of a reminder.
type record struct {
	Content    string `json:"content"`
	Recurrence string `json:"recurrence"`
}

// UnmarshalJSON accepts the current shape, the older {"content", "repeat"}
// shape, and bare strings holding only the content.
func (r *record) UnmarshalJSON(data []byte) error {
	var content string
	if err := json.Unmarshal(data, &content); err == nil {
		r.Content, r.Recurrence = content, "once"
		return nil
	}

	var raw struct {
		Content    string `json:"content"`
		Recurrence string `json:"recurrence"`
		Repeat     string `json:"repeat"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Content = raw.Content
	r.Recurrence = raw.Recurrence
	if r.Recurrence == "" {
		r.Recurrence = raw.Repeat
	}
	if r.Recurrence == "" {
		r.Recurrence = "once"
	}
	return nil
}

// DB is a JSON file implementation of store.Driver.
// Each load, mutate and save cycle holds mu, so writers within one process
// never lose each other's records.
type DB struct {
	mu   sync.Mutex
	path string
}

// NewDB opens the JSON file named by profile.DSN. The file is created on the
// first write.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile.DSN == "" {
		return nil, errors.New("dsn required")
	}
	return &DB{path: profile.DSN}, nil
}

func (d *DB) Close() error {
	return nil
}

// load reads the whole file. An absent file is an empty collection.
func (d *DB) load() (map[string]record, error) {
	data, err := os.ReadFile(d.path)
	if os.IsNotExist(err) {
		return map[string]record{}, nil
	}
	if err != nil {
		return nil, rerrors.Storage(err, "failed to read reminders").WithContext("path", d.path)
	}

	records := map[string]record{}
	if len(data) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, rerrors.Storage(err, "failed to decode reminders").WithContext("path", d.path)
	}
	return records, nil
}

// save atomically replaces the file: the data is written to a temporary file
// in the same directory which is then renamed over the target.
func (d *DB) save(records map[string]record) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return rerrors.Storage(err, "failed to encode reminders")
	}

	dir := filepath.Dir(d.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return rerrors.Storage(err, "failed to create temporary file").WithContext("dir", dir)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return rerrors.Storage(err, "failed to write reminders")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return rerrors.Storage(err, "failed to sync reminders")
	}
	if err := tmp.Close(); err != nil {
		return rerrors.Storage(err, "failed to close temporary file")
	}
	if err := os.Rename(tmpName, d.path); err != nil {
		return rerrors.Storage(err, "failed to replace reminders file").WithContext("path", d.path)
	}
	return nil
}

func (d *DB) GetReminder(_ context.Context, key string) (*store.Reminder, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.load()
	if err != nil {
		return nil, err
	}
	r, ok := records[key]
	if !ok {
		return nil, nil
	}
	return &store.Reminder{Key: key, Content: r.Content, Recurrence: r.Recurrence}, nil
}

func (d *DB) CreateReminder(_ context.Context, create *store.Reminder) (*store.Reminder, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.load()
	if err != nil {
		return nil, err
	}
	if _, ok := records[create.Key]; ok {
		return nil, rerrors.DuplicateKey(create.Key)
	}
	records[create.Key] = record{Content: create.Content, Recurrence: create.Recurrence}
	if err := d.save(records); err != nil {
		return nil, err
	}
	return create, nil
}

func (d *DB) UpsertReminder(_ context.Context, upsert *store.Reminder) (*store.Reminder, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.load()
	if err != nil {
		return nil, err
	}
	records[upsert.Key] = record{Content: upsert.Content, Recurrence: upsert.Recurrence}
	if err := d.save(records); err != nil {
		return nil, err
	}
	return upsert, nil
}

func (d *DB) DeleteReminder(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.load()
	if err != nil {
		return err
	}
	if _, ok := records[key]; !ok {
		return nil
	}
	delete(records, key)
	return d.save(records)
}

func (d *DB) ListReminders(_ context.Context) ([]*store.Reminder, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.load()
	if err != nil {
		return nil, err
	}

	list := make([]*store.Reminder, 0, len(records))
	for key, r := range records {
		list = append(list, &store.Reminder{Key: key, Content: r.Content, Recurrence: r.Recurrence})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })
	return list, nil
}
