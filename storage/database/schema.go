package database

// schema is idempotent and safe to run at every startup.
const schema = `
CREATE TABLE IF NOT EXISTS "user" (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	username      TEXT NOT NULL DEFAULT '',
	email         TEXT NOT NULL DEFAULT '',
	institution   TEXT NOT NULL DEFAULT '',
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	roles         TEXT NOT NULL DEFAULT '',
	password_hash BYTEA NOT NULL,
	created_at    TIMESTAMP NOT NULL,
	updated_at    TIMESTAMP NOT NULL,
	last_login    TIMESTAMP NOT NULL DEFAULT 'epoch'
);
CREATE UNIQUE INDEX IF NOT EXISTS user_username_idx ON "user" (username) WHERE username <> '';
CREATE UNIQUE INDEX IF NOT EXISTS user_email_idx ON "user" (email) WHERE email <> '';

CREATE TABLE IF NOT EXISTS course (
	id          UUID PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	filiere     TEXT NOT NULL DEFAULT '',
	niveau      TEXT NOT NULL DEFAULT '',
	institution TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMP NOT NULL,
	updated_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS course_filiere_niveau_idx ON course (filiere, niveau);

CREATE TABLE IF NOT EXISTS schedule_slot (
	id           UUID PRIMARY KEY,
	course_title TEXT NOT NULL,
	filiere      TEXT NOT NULL DEFAULT '',
	niveau       TEXT NOT NULL DEFAULT '',
	day_of_week  TEXT NOT NULL,
	start_time   TEXT NOT NULL,
	end_time     TEXT NOT NULL,
	room         TEXT NOT NULL DEFAULT '',
	instructor   TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMP NOT NULL,
	updated_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS evaluation (
	id              UUID PRIMARY KEY,
	title           TEXT NOT NULL,
	type            TEXT NOT NULL,
	course_title    TEXT NOT NULL DEFAULT '',
	evaluation_date TIMESTAMP NOT NULL,
	start_time      TEXT NOT NULL DEFAULT '',
	end_time        TEXT NOT NULL DEFAULT '',
	location        TEXT NOT NULL DEFAULT '',
	filiere         TEXT NOT NULL DEFAULT '',
	niveau          TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMP NOT NULL,
	updated_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS evaluation_date_idx ON evaluation (evaluation_date);

CREATE TABLE IF NOT EXISTS news_article (
	id           UUID PRIMARY KEY,
	title        TEXT NOT NULL,
	body         TEXT NOT NULL,
	institution  TEXT NOT NULL DEFAULT '',
	author_id    UUID NOT NULL,
	published_at TIMESTAMP NOT NULL,
	created_at   TIMESTAMP NOT NULL,
	updated_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS news_article_published_idx ON news_article (published_at DESC);

CREATE TABLE IF NOT EXISTS discussion_thread (
	id         UUID PRIMARY KEY,
	topic      TEXT NOT NULL,
	filiere    TEXT NOT NULL DEFAULT '',
	niveau     TEXT NOT NULL DEFAULT '',
	author_id  UUID NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS discussion_message (
	id         UUID PRIMARY KEY,
	thread_id  UUID NOT NULL REFERENCES discussion_thread (id) ON DELETE CASCADE,
	author_id  UUID NOT NULL,
	body       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS discussion_message_thread_idx ON discussion_message (thread_id);
`
