package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"KillZone/internal/model"
)

// SQLiteRecorder persists sweep runs to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	log *zap.Logger
	mu  sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, logger *zap.Logger) (*SQLiteRecorder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets readers inspect earlier runs while a sweep is being written.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: logger}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("sqlite recorder opened", zap.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS models (
			run_id       TEXT PRIMARY KEY,
			timestamp    INTEGER NOT NULL,
			variant      TEXT NOT NULL,
			u            REAL,
			b            REAL,
			small_delta  REAL,
			delta        REAL,
			k            REAL,
			beta         REAL,
			a_s          REAL,
			a_c          REAL,
			a_bar_s      REAL,
			a_bar_c      REAL,
			f_yy_s       REAL,
			f_yn_s       REAL,
			f_yy_c       REAL,
			f_yn_c       REAL,
			f_acq_s      REAL,
			f_acq_c      REAL
		)`,

		`CREATE TABLE IF NOT EXISTS payoffs (
			run_id           TEXT NOT NULL,
			config           TEXT NOT NULL,
			pi_incumbent     REAL,
			pi_entrant       REAL,
			consumer_surplus REAL,
			welfare          REAL,
			PRIMARY KEY (run_id, config)
		)`,

		`CREATE TABLE IF NOT EXISTS sweep_points (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      TEXT NOT NULL,
			assets      REAL,
			cost        REAL,
			region      TEXT,
			entrant     TEXT,
			incumbent   TEXT,
			development TEXT,
			acquisition TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_points_run ON sweep_points(run_id)`,

		`CREATE TABLE IF NOT EXISTS sweep_summaries (
			run_id                    TEXT PRIMARY KEY,
			timestamp                 INTEGER NOT NULL,
			points                    INTEGER,
			kill_zone                 INTEGER,
			region_indifferent_copy   INTEGER,
			region_substitute_copy    INTEGER,
			region_kill_zone          INTEGER,
			region_substitute_refrain INTEGER,
			duration_ms               INTEGER
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun stores the model snapshot, its payoffs, every point and the
// summary in one transaction.
func (r *SQLiteRecorder) RecordRun(snap *ModelSnapshot, points []PointEvent, sum *SweepSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	if err := insertModel(tx, snap, now); err != nil {
		return err
	}
	if err := insertPoints(tx, snap.RunID, points); err != nil {
		return err
	}
	if err := insertSummary(tx, sum, now); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.log.Debug("sweep run recorded", zap.String("run_id", snap.RunID), zap.Int("points", len(points)))
	return nil
}

func insertModel(tx *sql.Tx, snap *ModelSnapshot, now int64) error {
	p, a, c := snap.Parameters, snap.Assets, snap.Costs
	var acqS, acqC sql.NullFloat64
	if c.HasAcquisition {
		acqS = sql.NullFloat64{Float64: c.AcquisitionSubstitute, Valid: true}
		acqC = sql.NullFloat64{Float64: c.AcquisitionComplement, Valid: true}
	}

	if _, err := tx.Exec(`INSERT INTO models
		(run_id, timestamp, variant, u, b, small_delta, delta, k, beta,
		 a_s, a_c, a_bar_s, a_bar_c,
		 f_yy_s, f_yn_s, f_yy_c, f_yn_c, f_acq_s, f_acq_c)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		snap.RunID, now, string(snap.Variant),
		p.U, p.B, p.SmallDelta, p.Delta, p.K, p.Beta,
		a.Substitute, a.Complement, a.SubstituteCopied, a.ComplementCopied,
		c.YYSubstitute, c.YNSubstitute, c.YYComplement, c.YNComplement, acqS, acqC,
	); err != nil {
		return fmt.Errorf("insert model: %w", err)
	}

	for _, cfg := range model.Configs() {
		pay, _ := snap.Payoffs.Get(cfg)
		if _, err := tx.Exec(`INSERT INTO payoffs
			(run_id, config, pi_incumbent, pi_entrant, consumer_surplus, welfare)
			VALUES (?,?,?,?,?,?)`,
			snap.RunID, string(cfg), pay.Incumbent, pay.Entrant, pay.ConsumerSurplus, pay.Welfare,
		); err != nil {
			return fmt.Errorf("insert payoff %s: %w", cfg, err)
		}
	}
	return nil
}

func insertPoints(tx *sql.Tx, runID string, points []PointEvent) error {
	stmt, err := tx.Prepare(`INSERT INTO sweep_points
		(run_id, assets, cost, region, entrant, incumbent, development, acquisition)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, pt := range points {
		ch := pt.Choice
		if _, err := stmt.Exec(runID, pt.Assets, pt.Cost,
			string(ch.Region), string(ch.Entrant), string(ch.Incumbent),
			string(ch.Development), string(ch.Acquisition),
		); err != nil {
			return fmt.Errorf("insert point: %w", err)
		}
	}
	return nil
}

func insertSummary(tx *sql.Tx, sum *SweepSummary, now int64) error {
	rc := sum.RegionCounts
	if _, err := tx.Exec(`INSERT INTO sweep_summaries
		(run_id, timestamp, points, kill_zone,
		 region_indifferent_copy, region_substitute_copy, region_kill_zone, region_substitute_refrain,
		 duration_ms)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		sum.RunID, now, sum.Points, sum.KillZone,
		rc[model.RegionIndifferentCopy], rc[model.RegionSubstituteCopy],
		rc[model.RegionKillZone], rc[model.RegionSubstituteRefrain],
		sum.Duration.Milliseconds(),
	); err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
