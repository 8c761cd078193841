// Package handlers exposes the broadcast pipeline over HTTP.
//
// The Broadcast handler accepts a JSON request on POST / and answers with the
// standard response envelope. Pipeline errors are mapped to HTTP errors here;
// everything else falls through to the application's error handler.
package handlers
