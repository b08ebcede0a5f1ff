package tui

// CloseViewMsg is sent when the viewer wants to close.
type CloseViewMsg struct{}

// viewerCopiedMsg clears the "Copied!" flash after a delay.
type viewerCopiedMsg struct{}
