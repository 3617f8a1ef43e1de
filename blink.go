package statusled

import "time"

// phase is the blink timer: a 50% duty cycle square wave over elapsed time
// since the controller epoch. Returns true during the "on" half of each
// period. Pure function of its arguments, so two calls with the same inputs
// always agree.
//
// A non-positive period cannot blink; it reads as solid on rather than an
// error, since a dark LED would hide the status it is supposed to show.
func phase(elapsed, period time.Duration) bool {
	if period <= 0 {
		return true
	}
	// Negative elapsed (host clock before the epoch) lands in the negative
	// remainder range and reads as on.
	return elapsed%period < period/2
}
