package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Grid layout
const (
	GridColumns = 2

	// TileGutter is subtracted from half the viewport width for each tile
	TileGutter float32 = 10

	TileMinSide     float32 = 80
	DefaultViewport float32 = 400
)

// Window sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 760

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 260
)

// Touch target sizes
const (
	PullHandleHeight float32 = 44
)
