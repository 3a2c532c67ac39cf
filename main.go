// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package main

import (
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"

	"github.com/pbxkit/ari-apps/applications"
	"github.com/pbxkit/ari-apps/common"
	"github.com/pbxkit/ari-apps/demo"
	uuid "github.com/satori/go.uuid"
)

var (
	Version     string // set with build flags
	BuildNumber string // set with build flags
)

func main() {
	var (
		confPath = flag.String("conf", "conf/ari-apps.json", "ARI Applications Simulator configuration file path")
		profile  = flag.Bool("profile", false, "Enable the HTTP server for runtime profiling")
		version  = flag.Bool("version", false, "Show the service version")
		demomode = flag.Bool("demo", false, "Run the simulator in demo mode. This seeds dummy applications and keeps churning their subscriptions.")
	)
	flag.Parse()
	if *version {
		fmt.Println(Version)
		return
	}
	logger.Printf("Starting ARI Applications Simulator")

	if Version != "" {
		logger.Printf("Version: %s", Version)
	}
	if BuildNumber != "" {
		logger.Printf("Build Number: %s", BuildNumber)
	}

	common.SetVersion(Version)

	if *profile {
		logger.Println("Starting runtime profiling server")
		go func() { logger.Println(http.ListenAndServe("0.0.0.0:6060", nil)) }()
	}

	// Load Config File
	conf, err := loadConfig(confPath)
	if err != nil {
		logger.Fatalf("Config File: %s\n", err)
	}
	if conf.ServiceID == "" {
		conf.ServiceID = uuid.NewV4().String()
		logger.Printf("Service ID not set. Generated new UUID: %s", conf.ServiceID)
	}

	// Setup the application registry
	var (
		storage      applications.Storage
		closeStorage func() error
	)
	switch conf.Storage.Type {
	case applications.MEMORY:
		storage = applications.NewMemoryStorage(&loggingListener{})
	case applications.LEVELDB:
		storage, closeStorage, err = applications.NewLevelDBStorage(conf.Storage.DSN, nil, &loggingListener{})
		if err != nil {
			logger.Fatalf("Failed to start LevelDB: %s\n", err)
		}
	}

	// Setup the API
	api := applications.NewAPI(storage)

	if *demomode {
		logger.Println("===========================")
		logger.Printf("RUNNING IN DEMO MODE")
		logger.Println("===========================")

		err = demo.StartDummyChurner(storage)
		if err != nil {
			logger.Fatalf("Failed to start the dummy churner: %s", err)
		}
	}

	// Start the server
	go startHTTPServer(conf, api)

	// Ctrl+C / Kill handling
	handler := make(chan os.Signal, 1)
	signal.Notify(handler, os.Interrupt, os.Kill)

	<-handler
	logger.Println("Shutting down...")

	// Close the storage
	if closeStorage != nil {
		err := closeStorage()
		if err != nil {
			logger.Println(err.Error())
		}
	}

	logger.Println("Stopped.")
}

func startHTTPServer(conf *Config, api *applications.API) {
	router := newRouter()
	// api root
	router.handle(http.MethodGet, "/", indexHandler)
	// applications api
	router.handle(http.MethodGet, common.ApplicationsAPILoc, api.Index)
	router.handle(http.MethodPost, common.ApplicationsAPILoc, api.Create)
	router.handle(http.MethodGet, common.ApplicationsAPILoc+"/{name}", api.Retrieve)
	router.handle(http.MethodDelete, common.ApplicationsAPILoc+"/{name}", api.Delete)
	router.handle(http.MethodPost, common.ApplicationsAPILoc+"/{name}/"+common.SubscriptionPath, api.Subscribe)
	router.handle(http.MethodDelete, common.ApplicationsAPILoc+"/{name}/"+common.SubscriptionPath, api.Unsubscribe)

	// Append auth handler if enabled
	if conf.Auth.Enabled {
		router.appendChain(basicAuthHandler(conf.Auth.Username, conf.Auth.Password))
	}

	// start http server
	serverUrl := fmt.Sprintf("%s:%d", conf.HTTP.BindAddr, conf.HTTP.BindPort)
	logger.Printf("Serving HTTP requests on %s", serverUrl)
	err := http.ListenAndServe(serverUrl, router.chained())
	if err != nil {
		logger.Fatalln(err)
	}
}

// loggingListener logs changes in the application registry
type loggingListener struct{}

func (l *loggingListener) CreateHandler(new applications.Application) error {
	logger.Printf("Created application %s", new.Name)
	return nil
}

func (l *loggingListener) DeleteHandler(old applications.Application) error {
	logger.Printf("Deleted application %s", old.Name)
	return nil
}

func (l *loggingListener) SubscribeHandler(app applications.Application, source applications.EventSource) error {
	logger.Printf("Application %s subscribed to %s", app.Name, source)
	return nil
}

func (l *loggingListener) UnsubscribeHandler(app applications.Application, source applications.EventSource) error {
	logger.Printf("Application %s unsubscribed from %s", app.Name, source)
	return nil
}
