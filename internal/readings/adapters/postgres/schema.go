package postgres

import "context"

const createReadingsTableSQL = `
CREATE TABLE IF NOT EXISTS readings (
    id          BIGSERIAL PRIMARY KEY,
    light       DOUBLE PRECISION NOT NULL,
    sound       DOUBLE PRECISION NOT NULL,
    captured_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_readings_captured_at
    ON readings (captured_at DESC, id DESC);
`

// EnsureSchema creates the readings table and its time index when missing.
func (r *ReadingRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createReadingsTableSQL)
	return err
}
