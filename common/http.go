// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package common

import (
	"io"
	"net/http"
)

// Credentials holds the HTTP Basic Auth credentials of an ARI user
type Credentials struct {
	Username string
	Password string
}

// HTTPRequest issues a request with the given method, url, headers, and body.
// Credentials, when given, are applied as HTTP Basic Auth. All responses are
// expected to be JSON.
func HTTPRequest(method string, url string, headers map[string][]string, body io.Reader, creds *Credentials) (*http.Response, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	if creds != nil {
		req.SetBasicAuth(creds.Username, creds.Password)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	return res, nil
}
