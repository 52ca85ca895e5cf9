package parameter

import "time"

// Remote touch pad
const (
	// RemoteListen is the default listen address of the touch pad server
	RemoteListen = ":8089"

	// RemoteMaxMessageSize bounds a single websocket message
	RemoteMaxMessageSize = 1024

	// RemotePointerStride separates pointer identity ranges of concurrent connections
	RemotePointerStride = 16

	// RemoteWriteTimeout bounds acknowledgment writes
	RemoteWriteTimeout = 2 * time.Second

	// RemoteShutdownTimeout bounds graceful server shutdown
	RemoteShutdownTimeout = 3 * time.Second
)
