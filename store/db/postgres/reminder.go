package postgres

import (
	"context"
	"database/sql"

	rerrors "github.com/hrygo/laddoo/internal/errors"
	"github.com/hrygo/laddoo/store"
)

func (d *DB) GetReminder(ctx context.Context, key string) (*store.Reminder, error) {
	reminder := &store.Reminder{}
	err := d.db.QueryRowContext(ctx,
		`SELECT ts, content, recurrence FROM reminder WHERE ts = `+placeholder(1), key,
	).Scan(&reminder.Key, &reminder.Content, &reminder.Recurrence)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, rerrors.Storage(err, "failed to get reminder").WithContext("key", key)
	}
	return reminder, nil
}

func (d *DB) CreateReminder(ctx context.Context, create *store.Reminder) (*store.Reminder, error) {
	stmt := `INSERT INTO reminder (ts, content, recurrence)
		VALUES (` + placeholders(3) + `)
		ON CONFLICT(ts) DO NOTHING`
	result, err := d.db.ExecContext(ctx, stmt, create.Key, create.Content, create.Recurrence)
	if err != nil {
		return nil, rerrors.Storage(err, "failed to create reminder").WithContext("key", create.Key)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, rerrors.Storage(err, "failed to create reminder").WithContext("key", create.Key)
	}
	if affected == 0 {
		return nil, rerrors.DuplicateKey(create.Key)
	}
	return create, nil
}

func (d *DB) UpsertReminder(ctx context.Context, upsert *store.Reminder) (*store.Reminder, error) {
	stmt := `INSERT INTO reminder (ts, content, recurrence)
		VALUES (` + placeholders(3) + `)
		ON CONFLICT(ts) DO UPDATE SET
			content = excluded.content,
			recurrence = excluded.recurrence`
	if _, err := d.db.ExecContext(ctx, stmt, upsert.Key, upsert.Content, upsert.Recurrence); err != nil {
		return nil, rerrors.Storage(err, "failed to upsert reminder").WithContext("key", upsert.Key)
	}
	return upsert, nil
}

func (d *DB) DeleteReminder(ctx context.Context, key string) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM reminder WHERE ts = `+placeholder(1), key); err != nil {
		return rerrors.Storage(err, "failed to delete reminder").WithContext("key", key)
	}
	return nil
}

func (d *DB) ListReminders(ctx context.Context) ([]*store.Reminder, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT ts, content, recurrence FROM reminder ORDER BY ts ASC`)
	if err != nil {
		return nil, rerrors.Storage(err, "failed to query reminders")
	}
	defer rows.Close()

	list := make([]*store.Reminder, 0)
	for rows.Next() {
		var reminder store.Reminder
		if err := rows.Scan(&reminder.Key, &reminder.Content, &reminder.Recurrence); err != nil {
			return nil, rerrors.Storage(err, "failed to scan reminder")
		}
		list = append(list, &reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, rerrors.Storage(err, "failed to iterate reminders")
	}
	return list, nil
}
