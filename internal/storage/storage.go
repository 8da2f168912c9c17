package storage

import (
	"errors"

	"github.com/kofikwar/gridiron/internal/domain"
)

// ErrNoSave is returned by Load when the slot is empty.
var ErrNoSave = errors.New("no saved game")

// GameStorage persists the whole game state as a single slot plus a small
// set of unlock flags that survive deleting the save.
type GameStorage interface {
	Save(*domain.GameState) error
	Load() (*domain.GameState, error)
	Delete() error

	Unlock(flag string) error
	IsUnlocked(flag string) (bool, error)
}
