// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package main

import (
	"fmt"
	"net/http"

	"github.com/pbxkit/ari-apps/common"
)

func indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "ARI Applications Simulator %s - Welcome!\n", common.APIVersion)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", common.DefaultMIMEType)
	fmt.Fprintf(w, "{\"status\":\"OK\"}")
}
