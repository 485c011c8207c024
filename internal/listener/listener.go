package listener

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// BindError reports that no listening socket could be opened on Port.
type BindError struct {
	Port int
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind port %d: %v", e.Port, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

var errInvalidPort = errors.New("port out of range 1-65535")

// Listen binds TCP on all interfaces. Every failure is a *BindError.
func Listen(port int) (net.Listener, error) {
	if port < 1 || port > 65535 {
		return nil, &BindError{Port: port, Err: errInvalidPort}
	}
	ln, err := net.Listen("tcp", ":"+strconv.Itoa(port))
	if err != nil {
		return nil, &BindError{Port: port, Err: err}
	}
	return ln, nil
}

// URL is what gets printed once the socket is bound.
func URL(port int) string {
	return "http://localhost:" + strconv.Itoa(port)
}
