package model

// ProjectStore is the whole persisted document: every known project
// plus the name of the currently selected one.
type ProjectStore struct {
	Projects      map[string]*Project `json:"projects"`
	ActiveProject *string             `json:"active_project"`
}

// NewProjectStore returns an empty store with no active project.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{Projects: map[string]*Project{}}
}

// Project holds the timer state and logged entries for one project.
type Project struct {
	// StartEpoch is the Unix timestamp (seconds) the running timer was
	// started at, or nil when the timer is stopped.
	StartEpoch  *int64       `json:"start_epoch"`
	LoggedTimes []LoggedTime `json:"logged_times"`
}

// Running reports whether the project's timer is currently running.
func (p *Project) Running() bool {
	return p.StartEpoch != nil
}

// TotalSeconds sums the durations of all logged entries.
func (p *Project) TotalSeconds() int64 {
	var total int64
	for _, lt := range p.LoggedTimes {
		total += lt.DurationSeconds
	}
	return total
}

// LoggedTime is one completed, described interval of tracked time.
type LoggedTime struct {
	StartEpoch      int64  `json:"start_epoch"`
	DurationSeconds int64  `json:"duration_seconds"`
	Description     string `json:"description"`
}
