package programmer

import (
	"errors"
	"fmt"

	"github.com/AndersBNielsen/firestarter-app/internal/protocol"
)

// ErrNoProgrammerFound means no candidate port completed a handshake.
var ErrNoProgrammerFound = errors.New("no programmer found")

// ProtocolError is a command the device answered with ERROR or WARN, or an
// unexpected event kind mid-transfer.
type ProtocolError struct {
	Op      string
	Kind    protocol.Kind
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s failed: %s: %s", e.Op, e.Kind, e.Message)
}

// TimeoutError is a wait-loop inactivity window expiry during an operation.
type TimeoutError struct {
	Op string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out waiting for the programmer", e.Op)
}

// respError converts a terminal non-OK response into the matching error.
func respError(op string, resp protocol.Response) error {
	if resp.Kind == protocol.KindTimeout {
		return &TimeoutError{Op: op}
	}
	return &ProtocolError{Op: op, Kind: resp.Kind, Message: resp.Message}
}
