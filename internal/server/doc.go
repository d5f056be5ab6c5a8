// Package server runs the notes server transports: the REST API over HTTP
// and the gRPC health service. [Server.Run] blocks until its context is
// cancelled or a transport fails, then stops every transport.
package server
