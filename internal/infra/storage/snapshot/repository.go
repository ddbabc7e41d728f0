package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MoodLink/ArenaAxis-sub000/internal/domain"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/psqlbuilder"
)

const tableName = "slot_grid_snapshots"

const createTableSQL = `CREATE TABLE IF NOT EXISTS slot_grid_snapshots (
	store_id   TEXT        NOT NULL,
	sport      TEXT        NOT NULL DEFAULT '',
	grid_date  DATE        NOT NULL,
	payload    JSONB       NOT NULL,
	fetched_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (store_id, sport, grid_date)
)`

// Repository хранит последние удачно разрешенные сетки слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория снимков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу снимков, если ее нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("%w: EnsureSchema: %v", ErrExecQuery, err)
	}
	return nil
}

// Save сохраняет сетку, заменяя предыдущий снимок того же ключа
func (r *Repository) Save(ctx context.Context, grid *domain.SlotGrid) error {
	query, args, err := buildUpsert(grid)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Get возвращает последний снимок сетки. Снимок помечается как устаревший.
func (r *Repository) Get(ctx context.Context, key domain.GridKey) (*domain.SlotGrid, error) {
	query, args, err := buildSelect(key)
	if err != nil {
		return nil, err
	}

	var (
		raw       []byte
		fetchedAt time.Time
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&raw, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan snapshot: %v", ErrScanRow, err)
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrEncode, err)
	}

	return &domain.SlotGrid{
		Key:       key,
		Fields:    p.toDomain(),
		FetchedAt: fetchedAt,
		Stale:     true,
	}, nil
}

// DeleteOlderThan удаляет снимки сеток с датой раньше before
func (r *Repository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Lt{"grid_date": before.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - get rows affected: %v", ErrExecQuery, err)
	}
	return rowsAffected, nil
}

func buildUpsert(grid *domain.SlotGrid) (string, []interface{}, error) {
	raw, err := json.Marshal(toPayload(grid))
	if err != nil {
		return "", nil, fmt.Errorf("%w: Save: %v", ErrEncode, err)
	}

	// jsonb передается строкой: []byte lib/pq отправил бы как bytea
	query, args, err := psqlbuilder.Insert(tableName).
		Columns("store_id", "sport", "grid_date", "payload", "fetched_at").
		Values(grid.Key.StoreID, grid.Key.Sport, grid.Key.Date, string(raw), grid.FetchedAt).
		Suffix("ON CONFLICT (store_id, sport, grid_date) DO UPDATE SET payload = EXCLUDED.payload, fetched_at = EXCLUDED.fetched_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}

func buildSelect(key domain.GridKey) (string, []interface{}, error) {
	query, args, err := psqlbuilder.Select("payload", "fetched_at").
		From(tableName).
		Where(squirrel.Eq{
			"store_id":  key.StoreID,
			"sport":     key.Sport,
			"grid_date": key.Date,
		}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}
