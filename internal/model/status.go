package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but the transfer has not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the transfer is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the file was written successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}

// UIStatus is the load lifecycle of the gallery screen.
type UIStatus string

const (
	// UIStatusLoading is the initial state, before the first fetch completes
	UIStatusLoading UIStatus = "Loading"

	// UIStatusReady means the grid is shown and no fetch is running
	UIStatusReady UIStatus = "Ready"

	// UIStatusRefreshing means a user-initiated fetch runs over a visible grid
	UIStatusRefreshing UIStatus = "Refreshing"
)

// String returns the string representation of UIStatus
func (s UIStatus) String() string {
	return string(s)
}

// IsBusy reports whether a fetch is in flight.
func (s UIStatus) IsBusy() bool {
	return s == UIStatusLoading || s == UIStatusRefreshing
}

// ShowsGrid reports whether the grid is on screen. Only the initial load hides it.
func (s UIStatus) ShowsGrid() bool {
	return s != UIStatusLoading
}
