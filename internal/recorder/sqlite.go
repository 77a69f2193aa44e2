package recorder

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"BacktestDesk/internal/model"
)

// SQLiteRecorder persists snapshots to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log *zap.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *zap.Logger) (*SQLiteRecorder, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id             TEXT PRIMARY KEY,
			created_at     INTEGER NOT NULL,
			symbol         TEXT NOT NULL,
			interval       TEXT NOT NULL,
			bar_count      INTEGER,
			current_price  REAL,
			prev_close     REAL,
			change         REAL,
			change_percent REAL,
			window_high    REAL,
			window_low     REAL,
			avg_volume     REAL,
			position       REAL,
			rsi_zone       TEXT,
			sma_trend      TEXT,
			ema_trend      TEXT,
			band           TEXT,
			momentum       TEXT,
			warning        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON snapshots(created_at)`,

		`CREATE TABLE IF NOT EXISTS snapshot_bars (
			snapshot_id TEXT NOT NULL,
			seq         INTEGER NOT NULL,
			time        TEXT NOT NULL,
			open        REAL,
			high        REAL,
			low         REAL,
			close       REAL,
			volume      INTEGER,
			PRIMARY KEY (snapshot_id, seq)
		)`,

		`CREATE TABLE IF NOT EXISTS indicator_points (
			snapshot_id  TEXT NOT NULL,
			indicator_id TEXT NOT NULL,
			type         TEXT NOT NULL,
			period       INTEGER,
			line         TEXT NOT NULL,
			seq          INTEGER NOT NULL,
			value        REAL,
			PRIMARY KEY (snapshot_id, indicator_id, line, seq)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordSnapshot writes the snapshot, its bars and every indicator value in
// a single transaction.
func (r *SQLiteRecorder) RecordSnapshot(snap *model.Snapshot) error {
	if snap == nil {
		return errors.New("nil snapshot")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	rd := snap.Readout
	if rd == nil {
		rd = &model.Readout{}
	}
	st := snap.Stats
	if _, err := tx.Exec(`INSERT INTO snapshots
		(id, created_at, symbol, interval, bar_count,
		 current_price, prev_close, change, change_percent,
		 window_high, window_low, avg_volume, position,
		 rsi_zone, sma_trend, ema_trend, band, momentum, warning)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		snap.ID, snap.CreatedAt.Unix(), snap.Symbol, string(snap.Interval), len(snap.Bars),
		st.CurrentPrice, st.PrevClose, st.Change, st.ChangePercent,
		st.WindowHigh, st.WindowLow, st.AvgVolume, st.Position,
		string(rd.RSIZone), string(rd.SMATrend), string(rd.EMATrend),
		string(rd.Band), string(rd.Momentum), rd.WarningMsg,
	); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	barStmt, err := tx.Prepare(`INSERT INTO snapshot_bars
		(snapshot_id, seq, time, open, high, low, close, volume)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare bars: %w", err)
	}
	defer barStmt.Close()
	for i, b := range snap.Bars {
		if _, err := barStmt.Exec(snap.ID, i, b.Time, b.Open, b.High, b.Low, b.Close, b.Volume); err != nil {
			return fmt.Errorf("insert bar %d: %w", i, err)
		}
	}

	pointStmt, err := tx.Prepare(`INSERT INTO indicator_points
		(snapshot_id, indicator_id, type, period, line, seq, value)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare points: %w", err)
	}
	defer pointStmt.Close()
	for _, res := range snap.Results {
		for _, l := range res.Lines {
			for i, v := range l.Values {
				if _, err := pointStmt.Exec(snap.ID, res.ID, string(res.Type), res.Period, l.Name, i, v); err != nil {
					return fmt.Errorf("insert %s/%s point %d: %w", res.ID, l.Name, i, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	r.log.Debug("snapshot recorded",
		zap.String("snapshot_id", snap.ID),
		zap.Int("bars", len(snap.Bars)),
		zap.Int("indicators", len(snap.Results)))
	return nil
}

// CountSnapshots returns the number of recorded snapshots.
func (r *SQLiteRecorder) CountSnapshots() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&n)
	return n, err
}

// LatestSnapshotID returns the ID of the most recently created snapshot,
// or "" when none exist.
func (r *SQLiteRecorder) LatestSnapshotID() (string, error) {
	var id string
	err := r.db.QueryRow(`SELECT id FROM snapshots ORDER BY created_at DESC, rowid DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return id, err
}

// IndicatorLine loads the stored values of one indicator line in bar order.
func (r *SQLiteRecorder) IndicatorLine(snapshotID, indicatorID, line string) ([]float64, error) {
	rows, err := r.db.Query(`SELECT value FROM indicator_points
		WHERE snapshot_id = ? AND indicator_id = ? AND line = ?
		ORDER BY seq`, snapshotID, indicatorID, line)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
