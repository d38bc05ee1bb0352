// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads maps the --threads value to a worker count: 0 means all
// CPUs, anything else is used as-is.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// SideOutputs says which optional outputs a run should write.
type SideOutputs struct {
	Unstitched  bool // both unstitched files are written
	DovetailLog bool
}

// ResolveSideOutputs decides which optional outputs are active and returns
// warnings for the ones that are ignored.
// Rules:
//   - Unstitched reads need both --unstitched1 and --unstitched2.
//   - --dovetail-log needs --dovetail.
func ResolveSideOutputs(un1, un2, doveLog string, dovetail bool) (SideOutputs, []string) {
	var so SideOutputs
	var warns []string
	switch {
	case un1 != "" && un2 != "":
		so.Unstitched = true
	case un1 != "" || un2 != "":
		warns = append(warns, "--unstitched1 and --unstitched2 must be given together; unstitched reads will not be written")
	}
	if doveLog != "" {
		if dovetail {
			so.DovetailLog = true
		} else {
			warns = append(warns, "--dovetail-log requires --dovetail; ignoring")
		}
	}
	return so, warns
}
