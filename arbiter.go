package statusled

import "github.com/Bluscream/rgb-status-led/signals"

// Outcome is the arbitration result for one tick: the winning level, plus
// the user command when the level is LevelUser.
type Outcome struct {
	Level   Level
	Command UserCommand
}

// resolve picks exactly one outcome from the current signals, the priority
// mode and the user override state. Evaluation order is fixed; first match
// wins:
//
//  1. User priority mode with an active command suppresses all status.
//  2. Status signals in severity order: error, warning, ota, boot, wifi
//     down, api down. A higher severity can never be masked by a lower
//     one. With wifi down, api state is implied down and not shown
//     separately. OTA outranks boot.
//  3. Nothing wrong: an active command shows even in status priority mode,
//     since status has nothing to say.
//  4. Otherwise OK, or Off when the OK indication is disabled.
func resolve(cfg Config, sig signals.Snapshot, cmd UserCommand, active bool) Outcome {
	if cfg.PriorityMode == PriorityUser && active {
		return Outcome{Level: LevelUser, Command: cmd}
	}

	switch {
	case sig.HasError:
		return Outcome{Level: LevelError}
	case sig.HasWarning:
		return Outcome{Level: LevelWarning}
	case sig.OTAActive:
		return Outcome{Level: LevelOTA}
	case sig.BootActive:
		return Outcome{Level: LevelBoot}
	case !sig.WifiConnected:
		return Outcome{Level: LevelWifiDisconnected}
	case !sig.APIConnected:
		return Outcome{Level: LevelAPIDisconnected}
	}

	if active {
		return Outcome{Level: LevelUser, Command: cmd}
	}
	if !cfg.OKStateEnabled {
		return Outcome{Level: LevelOff}
	}
	return Outcome{Level: LevelOK}
}
