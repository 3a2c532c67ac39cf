// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package applications

import (
	"errors"
	"strings"
	"time"
)

const (
	MEMORY  = "memory"
	LEVELDB = "leveldb"
)

// SupportedBackends returns true if the backend is listed as true
func SupportedBackends(name string) bool {
	supportedBackends := map[string]bool{
		MEMORY:  true,
		LEVELDB: true,
	}
	return supportedBackends[strings.ToLower(name)]
}

var (
	ErrNotFound = errors.New("Application not found")
	ErrConflict = errors.New("Conflict")
	ErrInvalid  = errors.New("Invalid event source")
)

// Storage is an interface of an application registry backend.
// A request touching multiple event sources is applied atomically:
// it succeeds or fails as a whole, and a failing source leaves the
// stored lists untouched.
type Storage interface {
	Add(app Application) (*Application, error)
	Get(name string) (*Application, error)
	GetMany() ([]Application, error)
	Subscribe(name string, sources []EventSource) (*Application, error)
	Unsubscribe(name string, sources []EventSource) (*Application, error)
	Delete(name string) error
	getLastModifiedTime() (time.Time, error)
}
