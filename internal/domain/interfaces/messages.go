package interfaces

// MessageLog accepts human-readable operation traces for display.
type MessageLog interface {
	Add(message string)
}

// MessageFeed is a MessageLog the UI can read back and reset.
type MessageFeed interface {
	MessageLog
	Messages() []string
	Clear()
}
