// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package common

import "os"

const (
	// IDSeparator is used for separation of event sources in the query parameter
	IDSeparator = ","

	// Location of APIs
	ApplicationsAPILoc = "/applications"
	// SubscriptionPath is the sub-resource of an application holding its subscriptions
	SubscriptionPath = "subscription"

	// Query parameters
	ParamEventSource = "eventSource"
)

var (
	// APIVersion defines the API version
	APIVersion string

	// Default MIME type for all responses
	DefaultMIMEType string
)

func SetVersion(version string) {
	APIVersion = version
	DefaultMIMEType = "application/json"
	if version != "" {
		DefaultMIMEType += ";version=" + version
	}
}

// EvalEnv returns the boolean value of the env variable with the given key
func EvalEnv(key string) bool {
	return os.Getenv(key) == "1" || os.Getenv(key) == "true" || os.Getenv(key) == "TRUE"
}
