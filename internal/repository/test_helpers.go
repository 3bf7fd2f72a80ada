package repository

import "net/http"

// RoundTripperFunc lets tests stub http.Client responses without a server.
type RoundTripperFunc func(*http.Request) *http.Response

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}
