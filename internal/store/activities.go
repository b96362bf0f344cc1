package store

import (
	"database/sql"
	"fmt"

	"github.com/jcdavis/running-wrapped/internal/feed"
)

// ReplaceActivities swaps the cached feed for a new one in a single
// transaction. The previous contents survive if anything fails.
func (db *DB) ReplaceActivities(activities []feed.Activity) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM samples`); err != nil {
		return fmt.Errorf("clearing samples: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM activities`); err != nil {
		return fmt.Errorf("clearing activities: %w", err)
	}

	actStmt, err := tx.Prepare(`
		INSERT INTO activities (id, position, datetime, duration, distance)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer actStmt.Close()

	sampleStmt, err := tx.Prepare(`
		INSERT INTO samples (activity_id, idx, heartrate, velocity_smooth)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer sampleStmt.Close()

	for pos, a := range activities {
		if _, err := actStmt.Exec(a.ID, pos, a.DateTime, a.Duration, a.Distance); err != nil {
			return fmt.Errorf("inserting activity %s: %w", a.ID, err)
		}

		n := len(a.Heartrate)
		if len(a.VelocitySmooth) > n {
			n = len(a.VelocitySmooth)
		}
		for i := 0; i < n; i++ {
			var hr, vel any
			if i < len(a.Heartrate) {
				hr = a.Heartrate[i]
			}
			if i < len(a.VelocitySmooth) {
				vel = a.VelocitySmooth[i]
			}
			if _, err := sampleStmt.Exec(a.ID, i, hr, vel); err != nil {
				return fmt.Errorf("inserting samples for %s: %w", a.ID, err)
			}
		}
	}

	return tx.Commit()
}

// LoadActivities returns the cached feed in its original order.
func (db *DB) LoadActivities() ([]feed.Activity, error) {
	rows, err := db.Query(`
		SELECT id, datetime, duration, distance
		FROM activities
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []feed.Activity
	index := make(map[string]int)
	for rows.Next() {
		var a feed.Activity
		if err := rows.Scan(&a.ID, &a.DateTime, &a.Duration, &a.Distance); err != nil {
			return nil, err
		}
		index[a.ID] = len(activities)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sampleRows, err := db.Query(`
		SELECT activity_id, heartrate, velocity_smooth
		FROM samples
		ORDER BY activity_id, idx
	`)
	if err != nil {
		return nil, err
	}
	defer sampleRows.Close()

	for sampleRows.Next() {
		var activityID string
		var hr sql.NullInt64
		var vel sql.NullFloat64
		if err := sampleRows.Scan(&activityID, &hr, &vel); err != nil {
			return nil, err
		}
		i, ok := index[activityID]
		if !ok {
			continue
		}
		if hr.Valid {
			activities[i].Heartrate = append(activities[i].Heartrate, int(hr.Int64))
		}
		if vel.Valid {
			activities[i].VelocitySmooth = append(activities[i].VelocitySmooth, vel.Float64)
		}
	}
	if err := sampleRows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

// CountActivities returns the number of cached activities.
func (db *DB) CountActivities() (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&n)
	return n, err
}
