// Copyright 2016 Fraunhofer Institute for Applied Information Technology FIT

package applications

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pbxkit/ari-apps/common"
)

// RESTful HTTP API
type API struct {
	storage Storage
}

// Returns the configured Applications API
func NewAPI(storage Storage) *API {
	return &API{
		storage,
	}
}

// Handlers ///////////////////////////////////////////////////////////////////////

// Index is a handler for listing all applications
func (api *API) Index(w http.ResponseWriter, r *http.Request) {
	lastModified, err := api.storage.getLastModifiedTime()
	if err != nil {
		log.Printf("Error retrieving last modified date: %s", err)
		lastModified = time.Now()
	}

	if r.Header.Get("If-Modified-Since") != "" {
		modifiedSince, err := time.Parse(time.RFC1123, r.Header.Get("If-Modified-Since"))
		if err != nil {
			common.ErrorResponse(http.StatusBadRequest, "Error parsing If-Modified-Since header: "+err.Error(), w)
			return
		}
		lastModified, _ = time.Parse(time.RFC1123, lastModified.UTC().Format(time.RFC1123))
		if modifiedSince.Equal(lastModified) || modifiedSince.After(lastModified) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	apps, err := api.storage.GetMany()
	if err != nil {
		common.ErrorResponse(http.StatusInternalServerError, "Error listing applications: "+err.Error(), w)
		return
	}

	b, _ := json.Marshal(&apps)
	w.Header().Set("Content-Type", common.DefaultMIMEType)
	w.Header().Add("Last-Modified", lastModified.UTC().Format(time.RFC1123))
	w.Write(b)
}

// Create is a handler for registering a new application.
// This is a simulator extension: real applications register via Stasis.
func (api *API) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		common.ErrorResponse(http.StatusBadRequest, err.Error(), w)
		return
	}

	var app Application
	err = json.Unmarshal(body, &app)
	if err != nil {
		common.ErrorResponse(http.StatusBadRequest, "Error processing input: "+err.Error(), w)
		return
	}

	addedApp, err := api.storage.Add(app)
	if err != nil {
		switch {
		case errors.Is(err, ErrConflict):
			common.ErrorResponse(http.StatusConflict, err.Error(), w)
		case errors.Is(err, ErrInvalid):
			common.ErrorResponse(http.StatusBadRequest, err.Error(), w)
		default:
			common.ErrorResponse(http.StatusInternalServerError, "Error storing application: "+err.Error(), w)
		}
		return
	}

	w.Header().Set("Location", common.ApplicationsAPILoc+"/"+addedApp.Name)
	w.WriteHeader(http.StatusCreated)
}

// Retrieve is a handler for retrieving an application
// Expected parameters: name
func (api *API) Retrieve(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	name := params["name"]

	app, err := api.storage.Get(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			common.ErrorResponse(http.StatusNotFound, err.Error(), w)
		} else {
			common.ErrorResponse(http.StatusInternalServerError, "Error retrieving application: "+err.Error(), w)
		}
		return
	}

	b, _ := json.Marshal(app)
	w.Header().Set("Content-Type", common.DefaultMIMEType)
	w.Write(b)
}

// Delete is a handler for deleting an application.
// This is a simulator extension: real applications deregister via Stasis.
// Expected parameters: name
func (api *API) Delete(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	name := params["name"]

	err := api.storage.Delete(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			common.ErrorResponse(http.StatusNotFound, err.Error(), w)
		} else {
			common.ErrorResponse(http.StatusInternalServerError, "Error deleting application: "+err.Error(), w)
		}
		return
	}
}

// Subscribe is a handler for subscribing an application to event sources
// Expected parameters: name, eventSource
func (api *API) Subscribe(w http.ResponseWriter, r *http.Request) {
	api.subscription(w, r, Storage.Subscribe)
}

// Unsubscribe is a handler for unsubscribing an application from event sources
// Expected parameters: name, eventSource
func (api *API) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	api.subscription(w, r, Storage.Unsubscribe)
}

func (api *API) subscription(w http.ResponseWriter, r *http.Request,
	op func(Storage, string, []EventSource) (*Application, error)) {
	params := mux.Vars(r)
	name := params["name"]

	r.ParseForm()
	value := r.Form.Get(common.ParamEventSource)
	if value == "" {
		common.ErrorResponse(http.StatusBadRequest, "Missing query parameter: "+common.ParamEventSource, w)
		return
	}

	sources, err := ParseEventSources(strings.Split(value, common.IDSeparator))
	if err != nil {
		common.ErrorResponse(http.StatusUnprocessableEntity, err.Error(), w)
		return
	}

	app, err := op(api.storage, name, sources)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			common.ErrorResponse(http.StatusNotFound, err.Error(), w)
		case errors.Is(err, ErrConflict):
			common.ErrorResponse(http.StatusConflict, err.Error(), w)
		default:
			common.ErrorResponse(http.StatusInternalServerError, "Error updating subscriptions: "+err.Error(), w)
		}
		return
	}

	b, _ := json.Marshal(app)
	w.Header().Set("Content-Type", common.DefaultMIMEType)
	w.Write(b)
}
