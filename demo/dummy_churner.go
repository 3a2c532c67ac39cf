package demo

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/pborman/uuid"
	"github.com/pbxkit/ari-apps/applications"
)

var dummyApps = []string{"voicemail", "conference", "queue-monitor"}

// StartDummyChurner registers demo applications and keeps churning their
// channel subscriptions, so the API has something to show
func StartDummyChurner(storage applications.Storage) error {
	client := applications.NewLocalClient(storage)

	for _, name := range dummyApps {
		err := createApp(client, name)
		if err != nil {
			return fmt.Errorf("error creating application: %s", err)
		}
	}

	churnSubscriptions := func() {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		ticker := time.NewTicker(time.Second * 5)
		for range ticker.C {
			name := dummyApps[r.Intn(len(dummyApps))]
			subscribeChannel(client, name)
			unsubscribeChannel(client, name, r)
		}
	}

	go churnSubscriptions()

	return nil
}

func createApp(client *applications.LocalClient, name string) error {
	_, err := client.Add(applications.Application{Name: name})
	if err != nil {
		if errors.Is(err, applications.ErrConflict) {
			log.Printf("Reusing existing application %s", name)
			return nil
		}
		log.Printf("Error creating application %s: %s", name, err)
		return err
	}
	log.Printf("Creating application %s", name)
	return nil
}

// subscribeChannel subscribes the application to a fresh dummy channel
func subscribeChannel(client *applications.LocalClient, name string) {
	source := fmt.Sprintf("%s:%s", applications.SourceChannel, uuid.NewRandom())
	_, err := client.Subscribe(name, source)
	if err != nil {
		log.Printf("Error subscribing %s to %s: %s", name, source, err)
	}
}

// unsubscribeChannel drops a random previously subscribed channel, keeping
// the subscription lists from growing without bound
func unsubscribeChannel(client *applications.LocalClient, name string, r *rand.Rand) {
	app, err := client.Get(name)
	if err != nil {
		log.Printf("Error retrieving application %s: %s", name, err)
		return
	}
	if len(app.ChannelIDs) < 5 {
		return
	}
	id := app.ChannelIDs[r.Intn(len(app.ChannelIDs))]
	_, err = client.Unsubscribe(name, applications.SourceChannel+":"+id)
	if err != nil {
		log.Printf("Error unsubscribing %s from channel %s: %s", name, id, err)
	}
}
