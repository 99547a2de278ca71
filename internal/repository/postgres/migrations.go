package postgres

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Statements are idempotent so Migrate
// can run on every startup. The scheduling invariants live here as named
// uniqueness constraints; repositories map their violations back to domain
// errors by constraint name.
const schema = `
CREATE TABLE IF NOT EXISTS hotels (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	address TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS conference_halls (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	hotel_id BIGINT NOT NULL REFERENCES hotels(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS participants (
	id BIGSERIAL PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT CONSTRAINT participants_email_key UNIQUE,
	role TEXT NOT NULL,
	country TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS topics (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL CONSTRAINT topics_name_key UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS topic_presenters (
	topic_id BIGINT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
	participant_id BIGINT NOT NULL REFERENCES participants(id),
	PRIMARY KEY (topic_id, participant_id)
);

CREATE TABLE IF NOT EXISTS presentations (
	id BIGSERIAL PRIMARY KEY,
	topic_id BIGINT NOT NULL REFERENCES topics(id) CONSTRAINT presentations_topic_id_key UNIQUE,
	hall_id BIGINT REFERENCES conference_halls(id),
	start_time TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- A hall hosts at most one presentation per start instant. Rows with a NULL
-- hall or start time never conflict, so unscheduled presentations are exempt.
CREATE UNIQUE INDEX IF NOT EXISTS presentations_hall_slot_key
	ON presentations(hall_id, start_time);

-- Composite slot uniqueness for a topic; implied by presentations_topic_id_key
-- but kept as an explicit storage-level constraint.
CREATE UNIQUE INDEX IF NOT EXISTS presentations_topic_slot_key
	ON presentations(topic_id, start_time);

CREATE TABLE IF NOT EXISTS presentation_participants (
	presentation_id BIGINT NOT NULL REFERENCES presentations(id) ON DELETE CASCADE,
	participant_id BIGINT NOT NULL REFERENCES participants(id),
	PRIMARY KEY (presentation_id, participant_id)
);

CREATE INDEX IF NOT EXISTS idx_presentation_participants_participant
	ON presentation_participants(participant_id);

CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	email TEXT NOT NULL CONSTRAINT users_email_key UNIQUE,
	name TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	salt TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate applies the schema to the database.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
