// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/farshidtz/elog"
	"github.com/pbxkit/ari-apps/applications"
	"github.com/pbxkit/ari-apps/common"
)

const usage = `Commands:
  list                                  list all applications
  get <name>                            get a single application
  subscribe <name> <eventSource>...     subscribe the application to event source(s)
  unsubscribe <name> <eventSource>...   unsubscribe the application from event source(s)
`

var logger *elog.Logger

func init() {
	logger = elog.New("[ari-apps] ", nil)
}

func main() {
	var (
		endpoint = flag.String("endpoint", "http://localhost:8088/ari", "Base URL of the ARI endpoint")
		username = flag.String("user", "", "ARI username (falls back to ARI_USERNAME)")
		password = flag.String("password", "", "ARI password (falls back to ARI_PASSWORD)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command> [args]\n\n%s\nFlags:\n", os.Args[0], usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *username == "" {
		*username = os.Getenv("ARI_USERNAME")
	}
	if *password == "" {
		*password = os.Getenv("ARI_PASSWORD")
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	client, err := applications.NewRemoteClient(*endpoint,
		&common.Credentials{Username: *username, Password: *password})
	if err != nil {
		logger.Fatalf("Invalid endpoint: %s", err)
	}

	switch args[0] {
	case "list":
		apps, err := client.GetMany()
		if err != nil {
			logger.Fatalf("Error listing applications: %s", err)
		}
		printJSON(apps)
	case "get":
		if len(args) != 2 {
			logger.Fatalf("Usage: get <name>")
		}
		app, err := client.Get(args[1])
		if err != nil {
			logger.Fatalf("Error retrieving application: %s", err)
		}
		printJSON(app)
	case "subscribe":
		if len(args) < 3 {
			logger.Fatalf("Usage: subscribe <name> <eventSource>...")
		}
		app, err := client.Subscribe(args[1], args[2:]...)
		if err != nil {
			logger.Fatalf("Error subscribing: %s", err)
		}
		printJSON(app)
	case "unsubscribe":
		if len(args) < 3 {
			logger.Fatalf("Usage: unsubscribe <name> <eventSource>...")
		}
		app, err := client.Unsubscribe(args[1], args[2:]...)
		if err != nil {
			logger.Fatalf("Error unsubscribing: %s", err)
		}
		printJSON(app)
	default:
		flag.Usage()
		logger.Fatalf("Unknown command: %s", args[0])
	}
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
