package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconDownload  = "⬇️"
	IconResolving = "⏳"
	IconFailed    = "❌"
	IconLocked    = "🔒"
	IconAttach    = "📎"
	IconSettings  = "⚙"
	IconLogout    = "⏏"
	IconBack      = "←"
)

// Layout sizing
const (
	WindowWidth  = 900
	WindowHeight = 640

	CurriculumIndexWidth float32 = 40
)

// Delays
const (
	// ViewTransitionDelay stages the active flag so a transition effect is
	// observable rather than instantaneous.
	ViewTransitionDelay = 10 * time.Millisecond
)
