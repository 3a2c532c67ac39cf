// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package applications

import (
	"fmt"
	"strings"
)

// Event source kinds
const (
	SourceChannel  = "channel"
	SourceBridge   = "bridge"
	SourceEndpoint = "endpoint"
	SourceDevice   = "deviceState"
)

// EventSource identifies a subscription target: a channel, a bridge,
// a tech/resource endpoint pair, or a device
type EventSource struct {
	Kind     string
	Resource string
}

func (source EventSource) String() string {
	return source.Kind + ":" + source.Resource
}

// ParseEventSource parses an event source URI of the form {kind}:{resource}
func ParseEventSource(s string) (EventSource, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return EventSource{}, fmt.Errorf("%w: malformed event source: %s", ErrInvalid, s)
	}

	source := EventSource{Kind: parts[0], Resource: parts[1]}
	switch source.Kind {
	case SourceChannel, SourceBridge, SourceDevice:
	case SourceEndpoint:
		// endpoints are identified by a tech/resource pair
		slashed := strings.SplitN(source.Resource, "/", 2)
		if len(slashed) != 2 || slashed[0] == "" || slashed[1] == "" {
			return EventSource{}, fmt.Errorf("%w: endpoint event source must be endpoint:tech/resource: %s", ErrInvalid, s)
		}
	default:
		return EventSource{}, fmt.Errorf("%w: unknown event source scheme: %s", ErrInvalid, source.Kind)
	}

	return source, nil
}

// ParseEventSources parses a list of event source URIs
func ParseEventSources(values []string) ([]EventSource, error) {
	sources := make([]EventSource, 0, len(values))
	for _, value := range values {
		source, err := ParseEventSource(value)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}
