package system

import "gorm.io/gorm"

// Migrate applies the idempotent schema. Money columns are BIGINT minor
// units, date columns are INTEGER day-offsets; the FOREIGN KEY clauses make
// the engine reject dangling references instead of the application.
func Migrate(db *gorm.DB) error {
	id := "id INTEGER PRIMARY KEY " + autoIncrement(db)
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS publishers (
			` + id + `,
			name VARCHAR(255) NOT NULL,
			price BIGINT NOT NULL,
			popularity SMALLINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS games (
			` + id + `,
			name VARCHAR(255) NOT NULL,
			genre VARCHAR(255) NOT NULL,
			release_date INTEGER NOT NULL,
			prime_cost BIGINT NOT NULL,
			publisher_id INTEGER NOT NULL,
			cost BIGINT NOT NULL,
			is_subscribable BOOLEAN NOT NULL,
			FOREIGN KEY (publisher_id) REFERENCES publishers(id)
		)`,
		`CREATE TABLE IF NOT EXISTS staff (
			` + id + `,
			name VARCHAR(255) NOT NULL,
			birth INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			` + id + `,
			game_id INTEGER NOT NULL,
			staff_id INTEGER NOT NULL,
			position VARCHAR(255) NOT NULL,
			first_work_day INTEGER NOT NULL,
			last_work_day INTEGER,
			salary BIGINT NOT NULL,
			FOREIGN KEY (game_id) REFERENCES games(id),
			FOREIGN KEY (staff_id) REFERENCES staff(id)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			` + id + `,
			nickname VARCHAR(255) NOT NULL,
			registration_date INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS donations (
			` + id + `,
			user_id INTEGER NOT NULL,
			game_id INTEGER NOT NULL,
			amount BIGINT NOT NULL,
			donation_time TIMESTAMP NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id),
			FOREIGN KEY (game_id) REFERENCES games(id)
		)`,
		`CREATE TABLE IF NOT EXISTS investors (
			` + id + `,
			name VARCHAR(255) NOT NULL,
			is_company BOOLEAN NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS investments (
			` + id + `,
			game_id INTEGER NOT NULL,
			investor_id INTEGER NOT NULL,
			share SMALLINT NOT NULL,
			invested BIGINT NOT NULL,
			FOREIGN KEY (game_id) REFERENCES games(id),
			FOREIGN KEY (investor_id) REFERENCES investors(id)
		)`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}

// autoIncrement returns the dialect keyword for an auto-assigned integer
// primary key. SQLite auto-assigns on INTEGER PRIMARY KEY already.
func autoIncrement(db *gorm.DB) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "AUTO_INCREMENT"
	case "postgres":
		return "GENERATED BY DEFAULT AS IDENTITY"
	default:
		return ""
	}
}
