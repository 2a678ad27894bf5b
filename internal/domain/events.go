package domain

// Event types follow the pattern: <entity>.<action>
const (
	// EventTypePackOpened is published after a successful open
	EventTypePackOpened = "pack.opened"

	// EventTypePackOpenRejected is published when an open is refused because of the cooldown
	EventTypePackOpenRejected = "pack.open_rejected"
)
