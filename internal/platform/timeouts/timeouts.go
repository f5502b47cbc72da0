// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing a gRPC peer.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single admin CLI request.
const GRPCRequest = 5 * time.Second

// Shutdown limits how long a server waits for in-flight work during graceful
// shutdown.
const Shutdown = 5 * time.Second
