package editor

import "github.com/iw2rmb/scalindent/indent"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	ShowStatus   bool
	Style        Style

	// Key bindings; zero value means DefaultKeyMap.
	KeyMap KeyMap

	// Indent holds the engine options; nil means indent.DefaultOptions.
	Indent *indent.Options

	// Forwarded to buffer.Options.
	HistoryLimit int

	ReadOnly bool
}
