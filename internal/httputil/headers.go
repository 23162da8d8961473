package httputil

import "net/http"

// JSONHeaders returns the default headers for JSON API requests.
func JSONHeaders() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("Accept-Encoding", "gzip, br")
	h.Set("Connection", "keep-alive")
	return h
}
