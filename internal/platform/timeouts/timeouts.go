// Package timeouts defines shared timeout constants for the site process.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP and gRPC servers wait for in-flight
// requests during graceful shutdown.
const Shutdown = 5 * time.Second

// Relay is the default cap for one outbound email-relay call.
const Relay = 15 * time.Second

// HealthProbe caps a single gRPC health check round trip.
const HealthProbe = time.Second
