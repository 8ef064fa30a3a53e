package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
	"github.com/deepmindru-afk/superuzyr/internal/domain/entity"
)

var _ output.TaskStorage = (*Store)(nil)

type Store struct {
	db *sql.DB
}

type taskRecord struct {
	ID           string
	Name         string
	Website      string
	LLM          string
	Instructions string
	ParamsJSON   string
	Status       string
	CreatedAt    string
}

// Open opens (creating if needed) the database at dbPath. ":memory:" is accepted.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	website TEXT NOT NULL,
	llm TEXT NOT NULL,
	instructions TEXT NOT NULL,
	params_json TEXT NOT NULL DEFAULT '[]',
	status TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at);
`)
	return err
}

func (s *Store) Put(ctx context.Context, task entity.Task) error {
	record, err := toRecord(task)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO tasks (id, name, website, llm, instructions, params_json, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	name = excluded.name,
	website = excluded.website,
	llm = excluded.llm,
	instructions = excluded.instructions,
	params_json = excluded.params_json,
	status = excluded.status
`, record.ID, record.Name, record.Website, record.LLM, record.Instructions, record.ParamsJSON, record.Status, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("put task %s: %w", task.ID, err)
	}
	return nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) Get(ctx context.Context, id string) (entity.Task, error) {
	return getTask(ctx, s.db, id)
}

func getTask(ctx context.Context, q queryRower, id string) (entity.Task, error) {
	row := q.QueryRowContext(ctx, `
SELECT id, name, website, llm, instructions, params_json, status, created_at
FROM tasks
WHERE id = ?
`, id)

	var record taskRecord
	if err := row.Scan(&record.ID, &record.Name, &record.Website, &record.LLM, &record.Instructions, &record.ParamsJSON, &record.Status, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Task{}, fmt.Errorf("%w: %s", output.ErrNotStored, id)
		}
		return entity.Task{}, err
	}
	return record.toTask()
}

// Update reads and rewrites the row inside one transaction. The UPDATE only
// touches an existing row, so a concurrent delete is never undone.
func (s *Store) Update(ctx context.Context, id string, fn func(entity.Task) entity.Task) (entity.Task, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.Task{}, err
	}
	defer tx.Rollback()

	existing, err := getTask(ctx, tx, id)
	if err != nil {
		return entity.Task{}, err
	}
	updated := fn(existing)
	updated.ID = id

	record, err := toRecord(updated)
	if err != nil {
		return entity.Task{}, err
	}
	res, err := tx.ExecContext(ctx, `
UPDATE tasks SET
	name = ?,
	website = ?,
	llm = ?,
	instructions = ?,
	params_json = ?,
	status = ?
WHERE id = ?
`, record.Name, record.Website, record.LLM, record.Instructions, record.ParamsJSON, record.Status, id)
	if err != nil {
		return entity.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entity.Task{}, err
	}
	if n == 0 {
		return entity.Task{}, fmt.Errorf("%w: %s", output.ErrNotStored, id)
	}
	if err := tx.Commit(); err != nil {
		return entity.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}
	return updated, nil
}

func (s *Store) All(ctx context.Context) ([]entity.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, name, website, llm, instructions, params_json, status, created_at
FROM tasks
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []entity.Task{}
	for rows.Next() {
		var record taskRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.Website, &record.LLM, &record.Instructions, &record.ParamsJSON, &record.Status, &record.CreatedAt); err != nil {
			return nil, err
		}
		task, err := record.toTask()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", output.ErrNotStored, id)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func toRecord(task entity.Task) (taskRecord, error) {
	params := task.Params
	if params == nil {
		params = []entity.TaskParam{}
	}
	data, err := json.Marshal(params)
	if err != nil {
		return taskRecord{}, fmt.Errorf("failed to encode task params: %w", err)
	}
	return taskRecord{
		ID:           task.ID,
		Name:         task.Name,
		Website:      task.Website,
		LLM:          string(task.LLM),
		Instructions: task.Instructions,
		ParamsJSON:   string(data),
		Status:       string(task.Status),
		CreatedAt:    task.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func (r taskRecord) toTask() (entity.Task, error) {
	var params []entity.TaskParam
	if r.ParamsJSON != "" {
		if err := json.Unmarshal([]byte(r.ParamsJSON), &params); err != nil {
			return entity.Task{}, fmt.Errorf("failed to decode params of %s: %w", r.ID, err)
		}
	}
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return entity.Task{}, fmt.Errorf("failed to parse created_at of %s: %w", r.ID, err)
	}
	return entity.Task{
		ID:           r.ID,
		Name:         r.Name,
		Website:      r.Website,
		LLM:          entity.LLMChoice(r.LLM),
		Instructions: r.Instructions,
		Params:       params,
		Status:       entity.TaskStatus(r.Status),
		CreatedAt:    createdAt,
	}, nil
}
