package build

import "fmt"

// Overridden at link time with -ldflags "-X github.com/bornholm/tasks/internal/build.ShortVersion=..."
var (
	ShortVersion   = "0.0.0"
	ProjectVersion = "dev"
	GitRef         = "unknown"
	BuildDate      = "unknown"
)

var LongVersion = fmt.Sprintf("%s (%s - %s) - %s", ShortVersion, ProjectVersion, GitRef, BuildDate)
