package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultListLimit = 50

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	insertEvalStmt *sql.Stmt
	getEvalStmt    *sql.Stmt
}

// NewSQLiteStore opens or creates a SQLite store at the given path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("store: empty sqlite path")
	}
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("store: create sqlite dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping sqlite: %w", err)
	}

	if err := initSQLiteSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	st := &SQLiteStore{db: db}
	if err := st.prepareStatements(); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

func initSQLiteSchema(db *sql.DB) error {
	stmts := []string{
		`PRAGMA journal_mode = WAL`,
		`CREATE TABLE IF NOT EXISTS evals (
			id TEXT PRIMARY KEY,
			dataset TEXT NOT NULL,
			provider TEXT NOT NULL,
			split_ratio REAL NOT NULL,
			train_size INTEGER NOT NULL,
			validation_size INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			total INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			started_at INTEGER NOT NULL,
			finished_at INTEGER NOT NULL,
			predictions BLOB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_evals_dataset ON evals(dataset)`,
		`CREATE INDEX IF NOT EXISTS idx_evals_started_at ON evals(started_at)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("store: init schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) prepareStatements() error {
	if s == nil || s.db == nil {
		return errors.New("store: nil sqlite store")
	}

	ctx := context.Background()

	insert, err := s.db.PrepareContext(ctx, `
		INSERT INTO evals (
			id, dataset, provider, split_ratio, train_size, validation_size,
			correct, total, accuracy, started_at, finished_at, predictions
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("store: prepare insert eval: %w", err)
	}
	s.insertEvalStmt = insert

	get, err := s.db.PrepareContext(ctx, `
		SELECT id, dataset, provider, split_ratio, train_size, validation_size,
			correct, total, accuracy, started_at, finished_at, predictions
		FROM evals WHERE id = ?
	`)
	if err != nil {
		return fmt.Errorf("store: prepare get eval: %w", err)
	}
	s.getEvalStmt = get

	return nil
}

// Close releases database resources.
func (s *SQLiteStore) Close() error {
	if s == nil {
		return nil
	}
	for _, stmt := range []*sql.Stmt{s.insertEvalStmt, s.getEvalStmt} {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveEval persists an evaluation record.
func (s *SQLiteStore) SaveEval(ctx context.Context, rec *EvalRecord) error {
	if s == nil {
		return errors.New("store: nil sqlite store")
	}
	if ctx == nil {
		return errors.New("store: nil context")
	}
	if rec == nil {
		return errors.New("store: nil eval record")
	}

	id := strings.TrimSpace(rec.ID)
	if id == "" {
		return errors.New("store: empty eval id")
	}
	if rec.StartedAt.IsZero() || rec.FinishedAt.IsZero() {
		return errors.New("store: missing eval timestamps")
	}

	predJSON, err := json.Marshal(rec.Predictions)
	if err != nil {
		return fmt.Errorf("store: marshal predictions: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin eval tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt := tx.StmtContext(ctx, s.insertEvalStmt)
	defer stmt.Close()

	_, err = stmt.ExecContext(
		ctx,
		id,
		rec.Dataset,
		rec.Provider,
		rec.SplitRatio,
		rec.TrainSize,
		rec.ValidationSize,
		rec.Correct,
		rec.Total,
		rec.Accuracy,
		rec.StartedAt.UTC().UnixMilli(),
		rec.FinishedAt.UTC().UnixMilli(),
		predJSON,
	)
	if err != nil {
		return fmt.Errorf("store: insert eval: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit eval: %w", err)
	}
	return nil
}

// GetEval loads an evaluation by id.
func (s *SQLiteStore) GetEval(ctx context.Context, id string) (*EvalRecord, error) {
	if s == nil {
		return nil, errors.New("store: nil sqlite store")
	}
	if ctx == nil {
		return nil, errors.New("store: nil context")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("store: empty eval id")
	}

	row := s.getEvalStmt.QueryRowContext(ctx, id)
	rec, err := scanEvalRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("store: get eval: %w", err)
	}
	return rec, nil
}

// ListEvals returns evaluations matching the filter, newest first.
func (s *SQLiteStore) ListEvals(ctx context.Context, filter EvalFilter) ([]*EvalRecord, error) {
	if s == nil {
		return nil, errors.New("store: nil sqlite store")
	}
	if ctx == nil {
		return nil, errors.New("store: nil context")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var sb strings.Builder
	sb.WriteString(`SELECT id, dataset, provider, split_ratio, train_size, validation_size,
		correct, total, accuracy, started_at, finished_at, predictions
		FROM evals WHERE 1=1`)

	var args []any
	if v := strings.TrimSpace(filter.Dataset); v != "" {
		sb.WriteString(` AND dataset = ?`)
		args = append(args, v)
	}
	if v := strings.TrimSpace(filter.Provider); v != "" {
		sb.WriteString(` AND provider = ?`)
		args = append(args, v)
	}
	if !filter.Since.IsZero() {
		sb.WriteString(` AND started_at >= ?`)
		args = append(args, filter.Since.UTC().UnixMilli())
	}
	if !filter.Until.IsZero() {
		sb.WriteString(` AND started_at <= ?`)
		args = append(args, filter.Until.UTC().UnixMilli())
	}
	sb.WriteString(` ORDER BY started_at DESC LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("store: list evals: %w", err)
	}
	defer rows.Close()

	var out []*EvalRecord
	for rows.Next() {
		rec, err := scanEvalRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("store: scan eval: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list evals: %w", err)
	}
	return out, nil
}

func scanEvalRow(scan func(dest ...any) error) (*EvalRecord, error) {
	var (
		id             string
		ds             string
		provider       string
		splitRatio     float64
		trainSize      int
		validationSize int
		correct        int
		total          int
		accuracy       float64
		startedAtMS    int64
		finishedAtMS   int64
		predJSON       []byte
	)
	if err := scan(
		&id,
		&ds,
		&provider,
		&splitRatio,
		&trainSize,
		&validationSize,
		&correct,
		&total,
		&accuracy,
		&startedAtMS,
		&finishedAtMS,
		&predJSON,
	); err != nil {
		return nil, err
	}

	predictions, err := decodePredictions(predJSON)
	if err != nil {
		return nil, fmt.Errorf("decode predictions: %w", err)
	}

	return &EvalRecord{
		ID:             id,
		Dataset:        ds,
		Provider:       provider,
		SplitRatio:     splitRatio,
		TrainSize:      trainSize,
		ValidationSize: validationSize,
		Correct:        correct,
		Total:          total,
		Accuracy:       accuracy,
		StartedAt:      time.UnixMilli(startedAtMS).UTC(),
		FinishedAt:     time.UnixMilli(finishedAtMS).UTC(),
		Predictions:    predictions,
	}, nil
}

func decodePredictions(predJSON []byte) ([]PredictionRecord, error) {
	if len(predJSON) == 0 {
		return nil, nil
	}
	var out []PredictionRecord
	if err := json.Unmarshal(predJSON, &out); err != nil {
		return nil, err
	}
	return out, nil
}
