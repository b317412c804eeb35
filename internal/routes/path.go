package routes

import (
	"net/url"
	"sort"
	"strings"
)

// CreatePath fills the :name placeholders of route from params, prefixes
// the language segment when lng is set and appends query when non-empty.
func CreatePath(route string, params map[string]string, lng string, query url.Values) string {
	path := route

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	// longest first so that :id never eats the head of :idx
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	for _, k := range keys {
		path = strings.ReplaceAll(path, ":"+k, url.PathEscape(params[k]))
	}

	if lng != "" {
		if path == Root {
			path = "/" + lng
		} else {
			path = "/" + lng + path
		}
	}

	if len(query) > 0 {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		path += sep + query.Encode()
	}
	return path
}

// Resolve fills placeholders of a backend path.
func Resolve(route string, params map[string]string) string {
	return CreatePath(route, params, "", nil)
}
