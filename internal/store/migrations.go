package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Activities as fetched from the processed feed. position
		// preserves feed order.
		`CREATE TABLE IF NOT EXISTS activities (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			datetime TEXT NOT NULL,
			duration INTEGER NOT NULL,
			distance REAL NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_activities_position ON activities(position)`,

		// Stream samples (heartrate + velocity_smooth). The two streams
		// can have different lengths, so either column may be NULL.
		`CREATE TABLE IF NOT EXISTS samples (
			activity_id TEXT NOT NULL,
			idx INTEGER NOT NULL,
			heartrate INTEGER,
			velocity_smooth REAL,
			PRIMARY KEY (activity_id, idx),
			FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
