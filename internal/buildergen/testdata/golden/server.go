package server

import "time"

// Server is an HTTP server.
//
//derive:Builder
type Server struct {
	host    string
	port    uint16
	Timeout time.Duration
}
