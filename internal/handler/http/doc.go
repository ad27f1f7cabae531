// Package http implements the REST transport of the stego channel server.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, response compression and session token resolution happen
// in this package before requests reach the service layer.
package http
