// Package endpoint defines the typed REST surface of the Xano workspace.
// Every function builds an Endpoint, runs it through a gateway.Caller and
// returns the decoded result envelope; none of them return Go errors.
package endpoint

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/duynhne/shakplay/internal/core/gateway"
)

// Raw is used for endpoints whose payload the client passes through untouched.
type Raw = json.RawMessage

// API groups every resource of the workspace.
type API struct {
	Auth      *Auth
	Matches   *Matches
	Clubs     *Clubs
	Community *Community
	AI        *AI
	Shop      *Shop
	Stats     *Stats
}

// New binds every resource to c.
func New(c gateway.Caller) *API {
	return &API{
		Auth:      &Auth{c: c},
		Matches:   &Matches{c: c},
		Clubs:     &Clubs{c: c},
		Community: &Community{c: c},
		AI:        &AI{c: c},
		Shop:      &Shop{c: c},
		Stats:     &Stats{c: c},
	}
}

func get(path string, q url.Values) gateway.Endpoint {
	return gateway.Endpoint{Method: http.MethodGet, Path: path, Query: q}
}

func post(path string, body any) gateway.Endpoint {
	return gateway.Endpoint{Method: http.MethodPost, Path: path, Body: body}
}

func put(path string, body any) gateway.Endpoint {
	return gateway.Endpoint{Method: http.MethodPut, Path: path, Body: body}
}

func patch(path string, body any) gateway.Endpoint {
	return gateway.Endpoint{Method: http.MethodPatch, Path: path, Body: body}
}

func del(path string) gateway.Endpoint {
	return gateway.Endpoint{Method: http.MethodDelete, Path: path}
}

// query accumulates parameters, skipping zero values.
type query url.Values

func newQuery() query { return query(url.Values{}) }

func (q query) str(key, v string) query {
	if v != "" {
		url.Values(q).Add(key, v)
	}
	return q
}

// set adds key even when v is empty.
func (q query) set(key, v string) query {
	url.Values(q).Set(key, v)
	return q
}

func (q query) num(key string, v int) query {
	url.Values(q).Add(key, strconv.Itoa(v))
	return q
}

func (q query) id(key string, v int64) query {
	if v != 0 {
		url.Values(q).Add(key, strconv.FormatInt(v, 10))
	}
	return q
}

func (q query) float(key string, v float64) query {
	if v != 0 {
		url.Values(q).Add(key, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return q
}

// coord adds a coordinate when present; zero is a valid coordinate.
func (q query) coord(key string, v *float64) query {
	if v != nil {
		url.Values(q).Add(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
	return q
}

func (q query) flag(key string, v *bool) query {
	if v != nil {
		url.Values(q).Add(key, strconv.FormatBool(*v))
	}
	return q
}

func (q query) values() url.Values { return url.Values(q) }

func paging(page, limit int) url.Values {
	return newQuery().num("page", page).num("limit", limit).values()
}

func window(limit, offset int) url.Values {
	return newQuery().num("limit", limit).num("offset", offset).values()
}
