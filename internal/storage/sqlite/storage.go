package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kofikwar/gridiron/internal/domain"
	"github.com/kofikwar/gridiron/internal/storage"
)

var _ storage.GameStorage = (*Storage)(nil)

type Storage struct {
	db *sql.DB
}

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?cache=shared")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		return nil, err
	}
	return db, nil
}

func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Save(gs *domain.GameState) error {
	data, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("encode game state: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO save (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write save slot: %w", err)
	}
	return nil
}

func (s *Storage) Load() (*domain.GameState, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM save WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("read save slot: %w", err)
	}
	var gs domain.GameState
	if err := json.Unmarshal([]byte(data), &gs); err != nil {
		return nil, fmt.Errorf("decode game state: %w", err)
	}
	return &gs, nil
}

func (s *Storage) Delete() error {
	_, err := s.db.Exec(`DELETE FROM save WHERE id = 1`)
	return err
}

func (s *Storage) Unlock(flag string) error {
	_, err := s.db.Exec(`
		INSERT INTO unlocks (flag, unlocked_at) VALUES (?, ?)
		ON CONFLICT (flag) DO NOTHING`,
		flag, time.Now().UTC())
	return err
}

func (s *Storage) IsUnlocked(flag string) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM unlocks WHERE flag = ?`, flag).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
