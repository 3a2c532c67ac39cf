// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package applications

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func setupMemStorage(listeners ...EventListener) Storage {
	return NewMemoryStorage(listeners...)
}

func TestMemstorageAdd(t *testing.T) {
	storage := setupMemStorage()

	added, err := storage.Add(Application{Name: "app1"})
	if err != nil {
		t.Errorf("Received unexpected error on add: %v", err.Error())
	}
	if added.Name != "app1" {
		t.Errorf("Added application is %s instead of app1", added.Name)
	}
	// subscription lists must be initialized
	if added.BridgeIDs == nil || added.ChannelIDs == nil || added.DeviceNames == nil || added.EndpointIDs == nil {
		t.Errorf("Subscription lists are not initialized: %v", added)
	}

	// duplicate name
	_, err = storage.Add(Application{Name: "app1"})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("Error is not a conflict: %v", err)
	}

	// missing name
	_, err = storage.Add(Application{})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Error is not an invalid error: %v", err)
	}

	// pre-filled subscription lists are read-only
	_, err = storage.Add(Application{Name: "app2", ChannelIDs: []string{"c1"}})
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Error is not an invalid error: %v", err)
	}
}

func TestMemstorageGet(t *testing.T) {
	storage := setupMemStorage()

	_, err := storage.Add(Application{Name: "app1"})
	if err != nil {
		t.Fatalf(err.Error())
	}

	app, err := storage.Get("app1")
	if err != nil {
		t.Fatalf(err.Error())
	}
	if app.Name != "app1" {
		t.Errorf("Retrieved application is %s instead of app1", app.Name)
	}

	_, err = storage.Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Error is not a not-found error: %v", err)
	}
}

func TestMemstorageGetMany(t *testing.T) {
	storage := setupMemStorage()

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		_, err := storage.Add(Application{Name: name})
		if err != nil {
			t.Fatalf(err.Error())
		}
	}

	apps, err := storage.GetMany()
	if err != nil {
		t.Fatalf(err.Error())
	}
	if len(apps) != 3 {
		t.Fatalf("Mismatched number of stored(3) and returned(%d) applications", len(apps))
	}
	for i, name := range []string{"alpha", "bravo", "charlie"} {
		if apps[i].Name != name {
			t.Errorf("Application %d is %s instead of %s", i, apps[i].Name, name)
		}
	}
}

func TestMemstorageSubscribe(t *testing.T) {
	storage := setupMemStorage()

	_, err := storage.Add(Application{Name: "app1"})
	if err != nil {
		t.Fatalf(err.Error())
	}

	app, err := storage.Subscribe("app1", []EventSource{
		{SourceChannel, "c1"},
		{SourceEndpoint, "PJSIP/6001"},
	})
	if err != nil {
		t.Fatalf(err.Error())
	}
	if len(app.ChannelIDs) != 1 || app.ChannelIDs[0] != "c1" {
		t.Errorf("channel_ids is %v instead of [c1]", app.ChannelIDs)
	}
	if len(app.EndpointIDs) != 1 || app.EndpointIDs[0] != "PJSIP/6001" {
		t.Errorf("endpoint_ids is %v instead of [PJSIP/6001]", app.EndpointIDs)
	}

	// subscribing twice must not duplicate the entry
	app, err = storage.Subscribe("app1", []EventSource{{SourceChannel, "c1"}})
	if err != nil {
		t.Fatalf(err.Error())
	}
	if len(app.ChannelIDs) != 1 {
		t.Errorf("channel_ids is %v after a repeated subscribe", app.ChannelIDs)
	}

	_, err = storage.Subscribe("missing", []EventSource{{SourceChannel, "c1"}})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Error is not a not-found error: %v", err)
	}
}

func TestMemstorageUnsubscribe(t *testing.T) {
	storage := setupMemStorage()

	_, err := storage.Add(Application{Name: "app1"})
	if err != nil {
		t.Fatalf(err.Error())
	}
	_, err = storage.Subscribe("app1", []EventSource{
		{SourceChannel, "c1"},
		{SourceChannel, "c2"},
	})
	if err != nil {
		t.Fatalf(err.Error())
	}

	// a request with any unknown source must leave the lists untouched
	_, err = storage.Unsubscribe("app1", []EventSource{
		{SourceChannel, "c1"},
		{SourceChannel, "unknown"},
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Error is not a conflict: %v", err)
	}
	app, _ := storage.Get("app1")
	if len(app.ChannelIDs) != 2 {
		t.Fatalf("channel_ids is %v after a failed unsubscribe", app.ChannelIDs)
	}

	// the same source listed twice must fail as a whole
	_, err = storage.Unsubscribe("app1", []EventSource{
		{SourceChannel, "c1"},
		{SourceChannel, "c1"},
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("Error is not a conflict: %v", err)
	}
	app, _ = storage.Get("app1")
	if len(app.ChannelIDs) != 2 {
		t.Fatalf("channel_ids is %v after a failed unsubscribe", app.ChannelIDs)
	}

	app, err = storage.Unsubscribe("app1", []EventSource{{SourceChannel, "c1"}})
	if err != nil {
		t.Fatalf(err.Error())
	}
	if len(app.ChannelIDs) != 1 || app.ChannelIDs[0] != "c2" {
		t.Errorf("channel_ids is %v instead of [c2]", app.ChannelIDs)
	}
}

func TestMemstorageDelete(t *testing.T) {
	storage := setupMemStorage()

	_, err := storage.Add(Application{Name: "app1"})
	if err != nil {
		t.Fatalf(err.Error())
	}

	err = storage.Delete("app1")
	if err != nil {
		t.Fatalf(err.Error())
	}

	err = storage.Delete("app1")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Error is not a not-found error: %v", err)
	}
}

func TestMemstorageConcurrentSubscribe(t *testing.T) {
	storage := setupMemStorage()

	_, err := storage.Add(Application{Name: "app1"})
	if err != nil {
		t.Fatalf(err.Error())
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := storage.Subscribe("app1", []EventSource{{SourceChannel, fmt.Sprintf("c%d", i)}})
			if err != nil {
				t.Errorf(err.Error())
			}
		}(i)
	}
	wg.Wait()

	app, err := storage.Get("app1")
	if err != nil {
		t.Fatalf(err.Error())
	}
	if len(app.ChannelIDs) != 10 {
		t.Errorf("channel_ids holds %d entries instead of 10", len(app.ChannelIDs))
	}
}

// recordingListener counts registry events
type recordingListener struct {
	created, deleted, subscribed, unsubscribed int
}

func (l *recordingListener) CreateHandler(new Application) error { l.created++; return nil }
func (l *recordingListener) DeleteHandler(old Application) error { l.deleted++; return nil }
func (l *recordingListener) SubscribeHandler(app Application, source EventSource) error {
	l.subscribed++
	return nil
}
func (l *recordingListener) UnsubscribeHandler(app Application, source EventSource) error {
	l.unsubscribed++
	return nil
}

func TestMemstorageEvents(t *testing.T) {
	var listener recordingListener
	storage := setupMemStorage(&listener)

	_, err := storage.Add(Application{Name: "app1"})
	if err != nil {
		t.Fatalf(err.Error())
	}
	_, err = storage.Subscribe("app1", []EventSource{{SourceChannel, "c1"}, {SourceBridge, "b1"}})
	if err != nil {
		t.Fatalf(err.Error())
	}
	_, err = storage.Unsubscribe("app1", []EventSource{{SourceBridge, "b1"}})
	if err != nil {
		t.Fatalf(err.Error())
	}
	err = storage.Delete("app1")
	if err != nil {
		t.Fatalf(err.Error())
	}

	if listener.created != 1 || listener.subscribed != 2 || listener.unsubscribed != 1 || listener.deleted != 1 {
		t.Errorf("Mismatched event counts: %+v", listener)
	}
}
