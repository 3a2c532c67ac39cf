// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

// Package applications implements the Applications resource of the Asterisk REST Interface
package applications

import "fmt"

// Application describes a Stasis application together with the
// channel/bridge/endpoint/device resources it is subscribed to
type Application struct {
	// Name is the unique name of the application
	Name string `json:"name"`
	// BridgeIDs are the ids of the bridges subscribed to
	BridgeIDs []string `json:"bridge_ids"`
	// ChannelIDs are the ids of the channels subscribed to
	ChannelIDs []string `json:"channel_ids"`
	// DeviceNames are the names of the devices subscribed to
	DeviceNames []string `json:"device_names"`
	// EndpointIDs are the tech/resource pairs of the endpoints subscribed to
	EndpointIDs []string `json:"endpoint_ids"`
}

// initLists replaces nil subscription lists so that they serialize as empty
// JSON arrays
func (app *Application) initLists() {
	if app.BridgeIDs == nil {
		app.BridgeIDs = []string{}
	}
	if app.ChannelIDs == nil {
		app.ChannelIDs = []string{}
	}
	if app.DeviceNames == nil {
		app.DeviceNames = []string{}
	}
	if app.EndpointIDs == nil {
		app.EndpointIDs = []string{}
	}
}

// list returns the subscription list holding resources of the given kind
func (app *Application) list(kind string) *[]string {
	switch kind {
	case SourceBridge:
		return &app.BridgeIDs
	case SourceChannel:
		return &app.ChannelIDs
	case SourceDevice:
		return &app.DeviceNames
	case SourceEndpoint:
		return &app.EndpointIDs
	}
	return nil
}

// subscribe adds the event source to the matching subscription list.
// Subscribing to an already subscribed source is a no-op, as in Asterisk.
func (app *Application) subscribe(source EventSource) {
	list := app.list(source.Kind)
	for _, resource := range *list {
		if resource == source.Resource {
			return
		}
	}
	*list = append(*list, source.Resource)
}

// unsubscribe removes the event source from the matching subscription list
func (app *Application) unsubscribe(source EventSource) error {
	list := app.list(source.Kind)
	for i, resource := range *list {
		if resource == source.Resource {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: Application %s is not subscribed to %s", ErrConflict, app.Name, source)
}
