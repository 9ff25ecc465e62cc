package xl3

import "errors"

var (
	// ErrPortNotFound is returned by setup when no port matches the
	// Launch Control XL 3 naming convention.
	ErrPortNotFound = errors.New("launchctl: no launch control xl 3 port found")

	// ErrTransportOpenFailed is returned by setup when a matching port
	// exists but cannot be opened.
	ErrTransportOpenFailed = errors.New("launchctl: failed to open port")

	// ErrNotConnected is reported when output is attempted without an
	// open port. It is logged, never returned from LED or display calls.
	ErrNotConnected = errors.New("launchctl: not connected")

	// ErrInvalidIndex is reported for a logical control number outside
	// its class range or a control index outside [5, 52].
	ErrInvalidIndex = errors.New("launchctl: invalid control index")
)
