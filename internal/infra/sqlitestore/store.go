// Package sqlitestore provides a SQLite-backed implementation of PartyRepository.
package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// Ensure Store implements domain.PartyRepository.
var _ domain.PartyRepository = (*Store)(nil)

// Store implements domain.PartyRepository using SQLite.
type Store struct {
	db *sql.DB
}

// New opens the database at dbPath, creating parent directories and running migrations.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// PRAGMA foreign_keys is per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Exists reports whether a party has been saved.
func (s *Store) Exists() (bool, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM party").Scan(&n); err != nil {
		return false, fmt.Errorf("count party rows: %w", err)
	}
	return n > 0, nil
}

// Revision returns how many times the party was saved.
func (s *Store) Revision() (int, error) {
	var rev int
	err := s.db.QueryRow("SELECT revision FROM party WHERE id = 1").Scan(&rev)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query revision: %w", err)
	}
	return rev, nil
}

// Save replaces the stored party in a single transaction.
func (s *Store) Save(p *domain.Party) error {
	snap := domain.TakeSnapshot(p)

	rev, err := s.Revision()
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"tasks", "gifts", "guests", "party", "people"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, person := range snap.People {
		if _, err := tx.Exec(
			"INSERT INTO people (id, position, name, age) VALUES (?, ?, ?, ?)",
			person.ID, i, person.Name, person.Age,
		); err != nil {
			return fmt.Errorf("insert person: %w", err)
		}
	}

	for _, person := range snap.People {
		for i, gift := range person.Gifts {
			if _, err := tx.Exec(
				"INSERT INTO gifts (recipient_id, position, name, giver_id, price) VALUES (?, ?, ?, ?, ?)",
				person.ID, i, gift.Name, gift.GiverID, gift.Price,
			); err != nil {
				return fmt.Errorf("insert gift: %w", err)
			}
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO party (id, celebrant_id, date, location, budget, revision) VALUES (1, ?, ?, ?, ?, ?)",
		snap.CelebrantID, snap.Date, snap.Location, snap.Budget, rev+1,
	); err != nil {
		return fmt.Errorf("insert party: %w", err)
	}

	for i, id := range snap.GuestIDs {
		if _, err := tx.Exec("INSERT INTO guests (position, person_id) VALUES (?, ?)", i, id); err != nil {
			return fmt.Errorf("insert guest: %w", err)
		}
	}

	for i, task := range snap.Tasks {
		if _, err := tx.Exec(
			"INSERT INTO tasks (position, description, deadline, responsible_id, status) VALUES (?, ?, ?, ?, ?)",
			i, task.Description, task.Deadline, task.ResponsibleID, string(task.Status),
		); err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Load reads the stored party.
func (s *Store) Load() (*domain.Party, error) {
	snap := &domain.Snapshot{}

	err := s.db.QueryRow(
		"SELECT celebrant_id, date, location, budget FROM party WHERE id = 1",
	).Scan(&snap.CelebrantID, &snap.Date, &snap.Location, &snap.Budget)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoParty
	}
	if err != nil {
		return nil, fmt.Errorf("query party: %w", err)
	}

	if err := s.loadPeople(snap); err != nil {
		return nil, err
	}
	if err := s.loadGuests(snap); err != nil {
		return nil, err
	}
	if err := s.loadTasks(snap); err != nil {
		return nil, err
	}

	return snap.Restore()
}

func (s *Store) loadPeople(snap *domain.Snapshot) error {
	rows, err := s.db.Query("SELECT id, name, age FROM people ORDER BY position")
	if err != nil {
		return fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int)
	for rows.Next() {
		var rec domain.PersonRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Age); err != nil {
			return fmt.Errorf("scan person: %w", err)
		}
		index[rec.ID] = len(snap.People)
		snap.People = append(snap.People, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate people: %w", err)
	}
	_ = rows.Close()

	return s.loadGifts(snap, index)
}

func (s *Store) loadGifts(snap *domain.Snapshot, index map[string]int) error {
	rows, err := s.db.Query("SELECT recipient_id, name, giver_id, price FROM gifts ORDER BY recipient_id, position")
	if err != nil {
		return fmt.Errorf("query gifts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var recipientID string
		var gift domain.GiftRecord
		if err := rows.Scan(&recipientID, &gift.Name, &gift.GiverID, &gift.Price); err != nil {
			return fmt.Errorf("scan gift: %w", err)
		}
		i, ok := index[recipientID]
		if !ok {
			return fmt.Errorf("gift recipient %q: %w", recipientID, domain.ErrCorruptSession)
		}
		snap.People[i].Gifts = append(snap.People[i].Gifts, gift)
	}
	return rows.Err()
}

func (s *Store) loadGuests(snap *domain.Snapshot) error {
	rows, err := s.db.Query("SELECT person_id FROM guests ORDER BY position")
	if err != nil {
		return fmt.Errorf("query guests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan guest: %w", err)
		}
		snap.GuestIDs = append(snap.GuestIDs, id)
	}
	return rows.Err()
}

func (s *Store) loadTasks(snap *domain.Snapshot) error {
	rows, err := s.db.Query("SELECT description, deadline, responsible_id, status FROM tasks ORDER BY position")
	if err != nil {
		return fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec domain.TaskRecord
		var status string
		if err := rows.Scan(&rec.Description, &rec.Deadline, &rec.ResponsibleID, &status); err != nil {
			return fmt.Errorf("scan task: %w", err)
		}
		rec.Status = domain.Status(status)
		snap.Tasks = append(snap.Tasks, rec)
	}
	return rows.Err()
}
