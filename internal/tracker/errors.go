package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrNoActiveProject indicates no project is currently selected.
	ErrNoActiveProject = errors.New("you do not currently have a project selected")

	// ErrUnknownActiveProject indicates the selected project no longer exists.
	ErrUnknownActiveProject = errors.New("the active project does not exist anymore")

	// ErrAlreadyStarted indicates the timer is already running.
	ErrAlreadyStarted = errors.New("you are already tracking your time")

	// ErrNotStarted indicates the timer is not running.
	ErrNotStarted = errors.New("you have not started tracking your time")

	// ErrNoTimeLogged indicates the active project has no logged entries.
	ErrNoTimeLogged = errors.New("you have not logged any time for this project")

	// ErrNoDescription indicates a stop was attempted with an empty description.
	ErrNoDescription = errors.New("cannot log an entry with no description")

	// ErrSystemTime indicates the wall clock read earlier than a recorded start.
	ErrSystemTime = errors.New("the system clock went backwards")
)

// UnknownProjectError reports a project name that does not exist.
type UnknownProjectError struct {
	Name string
}

func (e *UnknownProjectError) Error() string {
	return fmt.Sprintf("there is no project named %s", e.Name)
}

// ProjectExistsError reports an attempt to create a project whose name
// is already in use.
type ProjectExistsError struct {
	Name string
}

func (e *ProjectExistsError) Error() string {
	return fmt.Sprintf("project %s already exists", e.Name)
}

// ParseDurationError reports a malformed duration argument.
type ParseDurationError struct {
	Input string
	Err   error
}

func (e *ParseDurationError) Error() string {
	return fmt.Sprintf("could not parse duration %q: %v", e.Input, e.Err)
}

func (e *ParseDurationError) Unwrap() error {
	return e.Err
}
