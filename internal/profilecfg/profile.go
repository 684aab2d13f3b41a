package profilecfg

import "github.com/pkg/profile"

type noop struct{}

func (noop) Stop() {}

// Start begins profiling as configured by cfg. The caller must Stop the
// returned profile.
func Start(cfg ProfileConfig) interface{ Stop() } {
	var mode func(*profile.Profile)
	switch cfg.Mode {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "allocs":
		mode = profile.MemProfileAllocs
	default:
		return noop{}
	}
	return profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet)
}
