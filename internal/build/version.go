package build

// Overridden at link time.
var (
	ShortVersion string = "0.0.0"
	GitRef       string = "unknown"
	LongVersion  string = ShortVersion + " (" + GitRef + ")"
)
