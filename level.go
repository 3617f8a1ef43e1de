package statusled

// Level identifies one status indication. The declaration order is the
// priority order: a lower ordinal always wins arbitration when several
// signals are true at once.
type Level uint8

const (
	// LevelError indicates a host-reported error. Blinks fast.
	LevelError Level = iota
	// LevelWarning indicates a host-reported warning. Blinks slow.
	LevelWarning
	// LevelOTA indicates a firmware update in progress.
	LevelOTA
	// LevelBoot indicates the device is still booting.
	LevelBoot
	// LevelWifiDisconnected indicates no network link.
	LevelWifiDisconnected
	// LevelAPIDisconnected indicates network is up but the control API is not.
	LevelAPIDisconnected
	// LevelOK indicates nothing is wrong.
	LevelOK

	// LevelOff is an arbitration outcome, not a signal: OK with the OK
	// indication disabled.
	LevelOff
	// LevelUser is an arbitration outcome, not a signal: the LED is under
	// user control.
	LevelUser
)

// String returns the level name used in logs, events and metric labels.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelOTA:
		return "ota"
	case LevelBoot:
		return "boot"
	case LevelWifiDisconnected:
		return "wifi_disconnected"
	case LevelAPIDisconnected:
		return "api_disconnected"
	case LevelOK:
		return "ok"
	case LevelOff:
		return "off"
	case LevelUser:
		return "user"
	default:
		return "unknown"
	}
}

// Blinks reports whether the level renders as a blink pattern rather than a
// solid color.
func (l Level) Blinks() bool {
	return l == LevelError || l == LevelWarning
}

// PriorityMode selects who wins arbitration between status indications and
// an active user command.
type PriorityMode string

const (
	// PriorityStatus lets status indications override user commands; user
	// commands show only while nothing is wrong.
	PriorityStatus PriorityMode = "status"
	// PriorityUser lets an active user command suppress all status
	// indications.
	PriorityUser PriorityMode = "user"
)
