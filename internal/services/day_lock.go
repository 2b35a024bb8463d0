package services

// RetroMarkWindowDays is how far back a completion may still be
// recorded. A day exactly this many days before today is markable;
// anything older is locked.
const RetroMarkWindowDays = 3

// IsDayLocked reports whether day rejects new completion marking.
// Future days are always locked; past days lock once more than
// RetroMarkWindowDays calendar days separate them from today.
// Callers must enforce this before touching the completion ledger.
func IsDayLocked(day string, today string) bool {
	diff := DiffDays(day, today)
	if diff < 0 {
		return true
	}
	return diff > RetroMarkWindowDays
}
