package domain

// FetchAction is the initialization step required before syncing a build directory.
type FetchAction string

const (
	// FetchInit initializes a directory that has never been initialized.
	FetchInit FetchAction = "init"
	// FetchReinit re-initializes an existing checkout in place with another branch.
	FetchReinit FetchAction = "reinit"
	// FetchSkipInit keeps an existing checkout that already tracks the requested branch.
	FetchSkipInit FetchAction = "skip"
)

// NeedsInit reports whether repo init has to run.
func (a FetchAction) NeedsInit() bool {
	return a != FetchSkipInit
}

// PlanFetch decides how to prepare the build directory before a sync.
// tracked is the branch the checkout follows; an empty value means it could not be determined
// and the directory is re-initialized in place.
func PlanFetch(initialized bool, tracked, requested string) FetchAction {
	switch {
	case !initialized:
		return FetchInit
	case tracked != "" && tracked == requested:
		return FetchSkipInit
	default:
		return FetchReinit
	}
}
