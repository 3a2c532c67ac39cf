// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package applications

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/pbxkit/ari-apps/common"
)

// RemoteClient is a client of the Applications resource of a remote ARI endpoint.
// It holds only immutable configuration and is safe for concurrent use.
type RemoteClient struct {
	serverEndpoint *url.URL
	credentials    *common.Credentials
}

// NewRemoteClient returns a client for the ARI endpoint rooted at serverEndpoint
// (no trailing slash), authenticating with the given credentials
func NewRemoteClient(serverEndpoint string, credentials *common.Credentials) (*RemoteClient, error) {
	// Check if serverEndpoint is a correct URL
	endpointUrl, err := url.Parse(serverEndpoint)
	if err != nil {
		return nil, err
	}

	return &RemoteClient{
		serverEndpoint: endpointUrl,
		credentials:    credentials,
	}, nil
}

// GetMany returns all applications registered on the server
func (c *RemoteClient) GetMany() ([]Application, error) {
	res, err := common.HTTPRequest("GET",
		c.serverEndpoint.String()+common.ApplicationsAPILoc,
		nil,
		nil,
		c.credentials,
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("Unable to read body of response: %v", err.Error())
	}

	if res.StatusCode != http.StatusOK {
		return nil, errorFromResponse(res, body)
	}

	var apps []Application
	err = json.Unmarshal(body, &apps)
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// Get retrieves the application with the given name
func (c *RemoteClient) Get(name string) (*Application, error) {
	res, err := common.HTTPRequest("GET",
		fmt.Sprintf("%v%s/%s", c.serverEndpoint, common.ApplicationsAPILoc, url.PathEscape(name)),
		nil,
		nil,
		c.credentials,
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("Unable to read body of response: %v", err.Error())
	}

	if res.StatusCode != http.StatusOK {
		return nil, errorFromResponse(res, body)
	}

	var app Application
	err = json.Unmarshal(body, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Subscribe subscribes the application to the given event source(s)
// and returns the updated application
func (c *RemoteClient) Subscribe(name string, source ...string) (*Application, error) {
	return c.subscription("POST", name, source)
}

// Unsubscribe unsubscribes the application from the given event source(s)
// and returns the updated application
func (c *RemoteClient) Unsubscribe(name string, source ...string) (*Application, error) {
	return c.subscription("DELETE", name, source)
}

// subscription issues a subscription request. Subscribe and Unsubscribe build
// identical URLs and differ in the HTTP method only.
func (c *RemoteClient) subscription(method, name string, source []string) (*Application, error) {
	res, err := common.HTTPRequest(method,
		fmt.Sprintf("%v%s/%s/%s?%s=%s",
			c.serverEndpoint,
			common.ApplicationsAPILoc,
			url.PathEscape(name),
			common.SubscriptionPath,
			common.ParamEventSource,
			strings.Join(source, common.IDSeparator),
		),
		nil,
		nil,
		c.credentials,
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("Unable to read body of response: %v", err.Error())
	}

	if res.StatusCode != http.StatusOK {
		return nil, errorFromResponse(res, body)
	}

	var app Application
	err = json.Unmarshal(body, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// errorFromResponse turns a non-2xx response into an error carrying the HTTP
// status. Statuses outside the documented taxonomy are passed through verbatim.
func errorFromResponse(res *http.Response, body []byte) error {
	msg := strings.TrimSpace(string(body))
	switch res.StatusCode {
	case http.StatusBadRequest:
		return &common.BadRequestError{S: msg}
	case http.StatusNotFound:
		return &common.NotFoundError{S: msg}
	case http.StatusConflict:
		return &common.ConflictError{S: msg}
	case http.StatusUnprocessableEntity:
		return &common.UnprocessableEntityError{S: msg}
	case http.StatusInternalServerError:
		return &common.InternalError{S: msg}
	}
	return fmt.Errorf("%v: %v", res.Status, msg)
}
