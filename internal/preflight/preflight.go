package preflight

import (
	"errors"
	"fmt"
	"strings"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Target describes one dataset directory and the bytes a run will copy into it.
type Target struct {
	Name       string
	Dir        string
	CopyBytes  int64
	CheckSpace bool
	// ReadOnly relaxes the access check to read and search permission.
	ReadOnly bool
}

// RunAll executes access checks for every target and, when requested, the
// free-space check. Targets on the same filesystem share one space check
// against the sum of their copy bytes. Space checks are skipped for
// directories that failed access.
func RunAll(targets ...Target) []Result {
	results := make([]Result, 0, len(targets)*2)
	spaceTargets := make([]Target, 0, len(targets))
	for _, target := range targets {
		var access Result
		if target.ReadOnly {
			access = CheckDirectoryReadable(target.Name, target.Dir)
		} else {
			access = CheckDirectoryAccess(target.Name, target.Dir)
		}
		results = append(results, access)
		if access.Passed && target.CheckSpace {
			spaceTargets = append(spaceTargets, target)
		}
	}
	return append(results, checkSpaceByFilesystem(spaceTargets)...)
}

type filesystemGroup struct {
	names []string
	dir   string
	bytes int64
}

// checkSpaceByFilesystem sums CopyBytes per device id, in first-seen order,
// and runs one CheckFreeSpace per device.
func checkSpaceByFilesystem(targets []Target) []Result {
	var results []Result
	var groups []*filesystemGroup
	byDevice := make(map[uint64]*filesystemGroup, len(targets))
	for _, target := range targets {
		dev, err := DeviceID(target.Dir)
		if err != nil {
			results = append(results, Result{
				Name:   target.Name + " free space",
				Detail: fmt.Sprintf("%s (error: stat: %v)", target.Dir, err),
			})
			continue
		}
		group, ok := byDevice[dev]
		if !ok {
			group = &filesystemGroup{dir: target.Dir}
			byDevice[dev] = group
			groups = append(groups, group)
		}
		group.names = append(group.names, target.Name)
		group.bytes += target.CopyBytes
	}
	for _, group := range groups {
		name := strings.Join(group.names, " + ") + " free space"
		results = append(results, CheckFreeSpace(name, group.dir, group.bytes))
	}
	return results
}

// FirstFailure joins the details of failed results into one error, or returns
// nil when everything passed.
func FirstFailure(results []Result) error {
	var failures []string
	for _, r := range results {
		if !r.Passed {
			failures = append(failures, r.Name+": "+r.Detail)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return errors.New(strings.Join(failures, "; "))
}
