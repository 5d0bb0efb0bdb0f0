package sqlitestore

import "database/sql"

// schema holds one party session. Tables are rewritten as a whole on every save.
// people must be created before the tables referencing it.
const schema = `
CREATE TABLE IF NOT EXISTS people (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    age INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS party (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    celebrant_id TEXT NOT NULL,
    date TEXT NOT NULL,
    location TEXT NOT NULL,
    budget REAL NOT NULL,
    revision INTEGER NOT NULL,
    FOREIGN KEY (celebrant_id) REFERENCES people(id)
);

CREATE TABLE IF NOT EXISTS guests (
    position INTEGER PRIMARY KEY,
    person_id TEXT NOT NULL UNIQUE,
    FOREIGN KEY (person_id) REFERENCES people(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS gifts (
    recipient_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    giver_id TEXT NOT NULL,
    price REAL NOT NULL,
    PRIMARY KEY (recipient_id, position),
    FOREIGN KEY (recipient_id) REFERENCES people(id) ON DELETE CASCADE,
    FOREIGN KEY (giver_id) REFERENCES people(id)
);

CREATE TABLE IF NOT EXISTS tasks (
    position INTEGER PRIMARY KEY,
    description TEXT NOT NULL,
    deadline TEXT NOT NULL,
    responsible_id TEXT NOT NULL,
    status TEXT NOT NULL,
    FOREIGN KEY (responsible_id) REFERENCES people(id)
);

CREATE INDEX IF NOT EXISTS idx_gifts_giver_id ON gifts(giver_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
