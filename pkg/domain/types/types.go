package types

// Version is the application version, overridable via ldflags
var Version = "0.1.0"

const (
	// ServiceName is used in health responses and log attributes
	ServiceName = "contribuzz"

	// MaxContributors is the rendering cap for a single wall
	MaxContributors = 100

	// MaxImageBytes is the upper bound for an encoded wall image data URL.
	// 4.5 MiB keeps the payload under typical serverless body limits.
	MaxImageBytes = int(4.5 * 1024 * 1024)

	// WallDir is the directory inside the walls repository (or bucket)
	// where generated images are stored
	WallDir = "public/walls"
)
