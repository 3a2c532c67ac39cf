// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/url"

	"github.com/pbxkit/ari-apps/applications"
)

type Config struct {
	// Service ID
	ServiceID string `json:"serviceID"`
	// Simulator API addr
	HTTP HTTPConf `json:"http"`
	// Application registry config
	Storage StorageConf `json:"storage"`
	// Basic auth config
	Auth AuthConf `json:"auth"`
}

// HTTP config
type HTTPConf struct {
	PublicEndpoint string `json:"publicEndpoint"`
	BindAddr       string `json:"bindAddr"`
	BindPort       uint16 `json:"bindPort"`
}

// Storage config
type StorageConf struct {
	Type string `json:"type"`
	DSN  string `json:"dsn"`
}

// Basic auth config. ARI clients authenticate with HTTP Basic Auth,
// like against the users in an Asterisk ari.conf.
type AuthConf struct {
	Enabled  bool   `json:"enabled"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// loads service configuration from a file at the given path
func loadConfig(confPath *string) (*Config, error) {
	file, err := ioutil.ReadFile(*confPath)
	if err != nil {
		return nil, err
	}

	var conf Config
	err = json.Unmarshal(file, &conf)
	if err != nil {
		return nil, err
	}

	// VALIDATE HTTP
	if conf.HTTP.BindAddr == "" || conf.HTTP.BindPort == 0 {
		return nil, fmt.Errorf("HTTP bindAddr and bindPort have to be defined")
	}
	if conf.HTTP.PublicEndpoint != "" {
		_, err = url.Parse(conf.HTTP.PublicEndpoint)
		if err != nil {
			return nil, fmt.Errorf("HTTP publicEndpoint should be a valid URL")
		}
	}

	// VALIDATE STORAGE CONFIG
	if !applications.SupportedBackends(conf.Storage.Type) {
		return nil, fmt.Errorf("Storage backend type is not supported: %s", conf.Storage.Type)
	}
	_, err = url.Parse(conf.Storage.DSN)
	if err != nil {
		return nil, err
	}

	// VALIDATE AUTH CONFIG
	if conf.Auth.Enabled && conf.Auth.Username == "" {
		return nil, errors.New("Basic auth is enabled but username is not specified")
	}

	return &conf, nil
}
