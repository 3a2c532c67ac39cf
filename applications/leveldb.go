// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package applications

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// LevelDB storage
type LevelDBStorage struct {
	db           *leveldb.DB
	event        eventHandler
	mutex        sync.Mutex
	wg           sync.WaitGroup
	lastModified time.Time
}

func NewLevelDBStorage(dsn string, opts *opt.Options, listeners ...EventListener) (Storage, func() error, error) {
	url, err := url.Parse(dsn)
	if err != nil {
		return nil, nil, err
	}

	// Open the database
	db, err := leveldb.OpenFile(url.Path, opts)
	if err != nil {
		return nil, nil, err
	}

	s := &LevelDBStorage{
		db:           db,
		event:        listeners,
		lastModified: time.Now(),
	}

	return s, s.close, nil
}

func (s *LevelDBStorage) close() error {
	// Wait for pending operations
	s.wg.Wait()
	return s.db.Close()
}

func (s *LevelDBStorage) Add(app Application) (*Application, error) {
	err := validateCreation(app)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	app.initLists()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	has, err := s.db.Has([]byte(app.Name), nil)
	if err != nil {
		return nil, err
	}
	if has {
		return nil, fmt.Errorf("%w: Application name not unique: %s", ErrConflict, app.Name)
	}

	// Convert to json bytes
	appBytes, err := json.Marshal(&app)
	if err != nil {
		return nil, err
	}

	// Add the new application to the database
	err = s.db.Put([]byte(app.Name), appBytes, nil)
	if err != nil {
		return nil, err
	}

	// Send a create event
	err = s.event.created(app)
	if err != nil {
		return nil, err
	}

	s.lastModified = time.Now()
	return &app, nil
}

func (s *LevelDBStorage) Get(name string) (*Application, error) {
	// Query from the database
	appBytes, err := s.db.Get([]byte(name), nil)
	if err == leveldb.ErrNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	} else if err != nil {
		return nil, err
	}

	var app Application
	err = json.Unmarshal(appBytes, &app)
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (s *LevelDBStorage) GetMany() ([]Application, error) {
	var apps []Application

	// Iterate over a latest snapshot of the database.
	// LevelDB keys are sorted, i.e. applications come out sorted by name.
	s.wg.Add(1)
	iter := s.db.NewIterator(nil, nil)
	for iter.Next() {
		var app Application
		err := json.Unmarshal(iter.Value(), &app)
		if err != nil {
			iter.Release()
			s.wg.Done()
			return nil, fmt.Errorf("Error parsing stored application: %v", err)
		}
		apps = append(apps, app)
	}
	iter.Release()
	s.wg.Done()
	err := iter.Error()
	if err != nil {
		return nil, err
	}

	if apps == nil {
		apps = []Application{}
	}
	return apps, nil
}

func (s *LevelDBStorage) Subscribe(name string, sources []EventSource) (*Application, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	app, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	for _, source := range sources {
		app.subscribe(source)
	}

	err = s.store(app)
	if err != nil {
		return nil, err
	}

	for _, source := range sources {
		// Send a subscribe event
		err = s.event.subscribed(*app, source)
		if err != nil {
			return nil, err
		}
	}

	s.lastModified = time.Now()
	return app, nil
}

func (s *LevelDBStorage) Unsubscribe(name string, sources []EventSource) (*Application, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	app, err := s.Get(name)
	if err != nil {
		return nil, err
	}

	// Get returns a decoded copy: a failing source, including the same source
	// listed twice, returns before anything is stored
	for _, source := range sources {
		err = app.unsubscribe(source)
		if err != nil {
			return nil, err
		}
	}

	err = s.store(app)
	if err != nil {
		return nil, err
	}

	for _, source := range sources {
		// Send an unsubscribe event
		err = s.event.unsubscribed(*app, source)
		if err != nil {
			return nil, err
		}
	}

	s.lastModified = time.Now()
	return app, nil
}

func (s *LevelDBStorage) Delete(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	app, err := s.Get(name) // for notification
	if err != nil {
		return err
	}

	err = s.db.Delete([]byte(name), nil)
	if err != nil {
		return err
	}

	// Send a delete event
	err = s.event.deleted(*app)
	if err != nil {
		return err
	}

	s.lastModified = time.Now()
	return nil
}

func (s *LevelDBStorage) getLastModifiedTime() (time.Time, error) {
	return s.lastModified, nil
}

// store writes the modified application back to the database
func (s *LevelDBStorage) store(app *Application) error {
	appBytes, err := json.Marshal(app)
	if err != nil {
		return err
	}
	return s.db.Put([]byte(app.Name), appBytes, nil)
}
