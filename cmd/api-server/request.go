package main

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shelterops/shelter-api/internal/model"
)

const _customTimeLayout = "2006-01-02 15:04:05 MST"

func idFromRequest(r *http.Request, param string) (model.ID, error) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	return model.ID(id), err
}

func userIDFromRequest(r *http.Request) (model.ID, error) {
	return idFromRequest(r, "userId")
}

func animalIDFromRequest(r *http.Request) (model.ID, error) {
	return idFromRequest(r, "animalId")
}

func walkIDFromRequest(r *http.Request) (model.ID, error) {
	return idFromRequest(r, "walkId")
}

func requestIDFromRequest(r *http.Request) (model.ID, error) {
	return idFromRequest(r, "requestId")
}

func timeQueryParams(r *http.Request, key string, layout ...string) (time.Time, bool, error) {
	layout = append(layout, _customTimeLayout)
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return time.Time{}, false, nil
	}
	val = strings.TrimPrefix(val, "'")
	val = strings.TrimPrefix(val, "\"")
	val = strings.TrimSuffix(val, "'")
	val = strings.TrimSuffix(val, "\"")
	t, err := time.Parse(layout[0], val)
	return t, true, err
}

func defaultIntQueryParams(r *http.Request, key string, def int) int {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return i
}

func defaultBoolQueryParams(r *http.Request, key string, def bool) bool {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return b
}

func optionalStringQueryParams(r *http.Request, key string) *string {
	ref := new(string)
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return nil
	}
	*ref = val
	return ref
}
