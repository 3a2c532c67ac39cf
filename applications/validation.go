// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package applications

import (
	"regexp"
	"strings"
)

// Application writability:
// name: mandatory, fixed
// bridge_ids, channel_ids, device_names, endpoint_ids: read-only,
// modified through the subscription sub-resource only

var validName = regexp.MustCompile(`^[a-zA-Z0-9]+[a-zA-Z0-9-_.]*$`)

func validateCreation(app Application) error {
	var e validationError

	// validate name
	if app.Name == "" {
		e.mandatory = append(e.mandatory, "name")
	} else if !validName.MatchString(app.Name) {
		e.invalid = append(e.invalid, "name")
	}

	// subscription lists are read-only
	if len(app.BridgeIDs)+len(app.ChannelIDs)+len(app.DeviceNames)+len(app.EndpointIDs) != 0 {
		e.readOnly = append(e.readOnly, "subscription lists")
	}

	if e.Err() {
		return e
	}
	return nil
}

// Custom error formatting
type validationError struct {
	readOnly  []string
	mandatory []string
	invalid   []string
}

func (e validationError) Error() string {
	var _errors []string
	if len(e.readOnly) > 0 {
		_errors = append(_errors, "Ambitious assignment to or modification of read-only attribute(s): "+strings.Join(e.readOnly, ", "))
	}
	if len(e.mandatory) > 0 {
		_errors = append(_errors, "Missing mandatory value(s) of: "+strings.Join(e.mandatory, ", "))
	}
	if len(e.invalid) > 0 {
		_errors = append(_errors, "Invalid value(s) for: "+strings.Join(e.invalid, ", "))
	}
	return strings.Join(_errors, ". ")
}

func (e validationError) Err() bool {
	return len(e.readOnly)+len(e.mandatory)+len(e.invalid) > 0
}
