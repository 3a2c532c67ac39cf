// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package applications

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// In-memory storage
type MemoryStorage struct {
	data         map[string]*Application
	mutex        sync.RWMutex
	event        eventHandler
	lastModified time.Time
}

func NewMemoryStorage(listeners ...EventListener) Storage {
	ms := &MemoryStorage{
		data:         make(map[string]*Application),
		lastModified: time.Now(),
		event:        listeners,
	}

	return ms
}

func (ms *MemoryStorage) Add(app Application) (*Application, error) {
	err := validateCreation(app)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	app.initLists()

	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	if _, exists := ms.data[app.Name]; exists {
		return nil, fmt.Errorf("%w: Application name not unique: %s", ErrConflict, app.Name)
	}

	// Add the new application to the map
	ms.data[app.Name] = &app

	// Send a create event
	err = ms.event.created(app)
	if err != nil {
		return nil, err
	}

	ms.lastModified = time.Now()
	return copyOf(&app), nil
}

func (ms *MemoryStorage) Get(name string) (*Application, error) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()

	app, ok := ms.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return copyOf(app), nil
}

func (ms *MemoryStorage) GetMany() ([]Application, error) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()

	// Extract keys out of the map and sort them
	allKeys := make([]string, 0, len(ms.data))
	for k := range ms.data {
		allKeys = append(allKeys, k)
	}
	sort.Strings(allKeys)

	apps := make([]Application, 0, len(allKeys))
	for _, k := range allKeys {
		apps = append(apps, *copyOf(ms.data[k]))
	}

	return apps, nil
}

func (ms *MemoryStorage) Subscribe(name string, sources []EventSource) (*Application, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	app, ok := ms.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	for _, source := range sources {
		app.subscribe(source)

		// Send a subscribe event
		err := ms.event.subscribed(*app, source)
		if err != nil {
			return nil, err
		}
	}

	ms.lastModified = time.Now()
	return copyOf(app), nil
}

func (ms *MemoryStorage) Unsubscribe(name string, sources []EventSource) (*Application, error) {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	app, ok := ms.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	// Apply the whole request on a copy and commit it only when every source
	// was removed. A failing source, including the same source listed twice,
	// must leave the stored lists untouched.
	modified := copyOf(app)
	for _, source := range sources {
		err := modified.unsubscribe(source)
		if err != nil {
			return nil, err
		}
	}
	ms.data[name] = modified

	for _, source := range sources {
		// Send an unsubscribe event
		err := ms.event.unsubscribed(*modified, source)
		if err != nil {
			return nil, err
		}
	}

	ms.lastModified = time.Now()
	return copyOf(modified), nil
}

func (ms *MemoryStorage) Delete(name string) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	app, ok := ms.data[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	// Send a delete event
	err := ms.event.deleted(*app)
	if err != nil {
		return err
	}

	delete(ms.data, name)

	ms.lastModified = time.Now()
	return nil
}

func (ms *MemoryStorage) getLastModifiedTime() (time.Time, error) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	return ms.lastModified, nil
}

// copyOf returns a copy of the application with its own subscription lists
func copyOf(app *Application) *Application {
	c := *app
	c.BridgeIDs = append([]string{}, app.BridgeIDs...)
	c.ChannelIDs = append([]string{}, app.ChannelIDs...)
	c.DeviceNames = append([]string{}, app.DeviceNames...)
	c.EndpointIDs = append([]string{}, app.EndpointIDs...)
	return &c
}
