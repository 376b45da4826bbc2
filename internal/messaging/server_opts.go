package messaging

import (
	"time"

	"github.com/nats-io/nats-server/v2/server"
)

// ServerOpt configures the embedded event server.
type ServerOpt func(*NatsServer)

// WithStartTimeout bounds how long Start waits for the server to accept
// connections. Non-positive durations keep the default.
func WithStartTimeout(d time.Duration) ServerOpt {
	return func(n *NatsServer) {
		if d > 0 {
			n.startupTimeout = d
		}
	}
}

// WithHost sets the interface events are served on.
func WithHost(host string) ServerOpt {
	return func(n *NatsServer) {
		n.host = host
	}
}

// WithPort sets the client port. Pass RandomPort to let the server pick one.
func WithPort(port int) ServerOpt {
	return func(n *NatsServer) {
		n.port = port
	}
}

// RandomPort asks the server to listen on any free port.
const RandomPort = server.RANDOM_PORT
