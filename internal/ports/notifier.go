package ports

// Notifier signals an interval transition to the user.
// Both methods return immediately; failures are never reported to the caller.
type Notifier interface {
	EmitFlash()
	EmitTone()
}
