// Package tracker implements the command semantics on the in-memory
// ProjectStore. Each operation validates its preconditions, then either
// reads or mutates the store and returns a typed result, or returns one
// error from the taxonomy in errors.go without mutating anything. The
// caller captures "now" once per invocation and passes it in.
package tracker

import (
	"sort"
	"strings"
	"time"

	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/timecalc"
)

// ProjectTotal is one row of the project listing.
type ProjectTotal struct {
	Name         string
	TotalSeconds int64
	Active       bool
}

// List returns every project with its summed logged time, sorted by name.
func List(s *model.ProjectStore) []ProjectTotal {
	names := make([]string, 0, len(s.Projects))
	for name := range s.Projects {
		names = append(names, name)
	}
	sort.Strings(names)

	totals := make([]ProjectTotal, 0, len(names))
	for _, name := range names {
		totals = append(totals, ProjectTotal{
			Name:         name,
			TotalSeconds: s.Projects[name].TotalSeconds(),
			Active:       s.ActiveProject != nil && *s.ActiveProject == name,
		})
	}
	return totals
}

// activeProject resolves the currently selected project.
func activeProject(s *model.ProjectStore) (string, *model.Project, error) {
	if s.ActiveProject == nil {
		return "", nil, ErrNoActiveProject
	}
	name := *s.ActiveProject
	p, ok := s.Projects[name]
	if !ok {
		// The selection can dangle if the project was deleted.
		return "", nil, ErrUnknownActiveProject
	}
	return name, p, nil
}

// elapsedSince returns now minus start in whole seconds, failing if the
// clock reads earlier than the recorded start.
func elapsedSince(start int64, now time.Time) (int64, error) {
	elapsed := now.Unix() - start
	if elapsed < 0 {
		return 0, ErrSystemTime
	}
	return elapsed, nil
}

// Start begins tracking time on the active project and returns its name.
func Start(s *model.ProjectStore, now time.Time) (string, error) {
	name, p, err := activeProject(s)
	if err != nil {
		return "", err
	}
	if p.Running() {
		return "", ErrAlreadyStarted
	}
	epoch := now.Unix()
	p.StartEpoch = &epoch
	return name, nil
}

// StopResult reports a successfully logged interval.
type StopResult struct {
	Project         string
	DurationSeconds int64
}

// Stop finishes the running timer on the active project and appends a
// logged entry with the trimmed description.
func Stop(s *model.ProjectStore, now time.Time, description string) (*StopResult, error) {
	name, p, err := activeProject(s)
	if err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrNoDescription
	}
	if !p.Running() {
		return nil, ErrNotStarted
	}
	elapsed, err := elapsedSince(*p.StartEpoch, now)
	if err != nil {
		return nil, err
	}

	p.LoggedTimes = append(p.LoggedTimes, model.LoggedTime{
		StartEpoch:      *p.StartEpoch,
		DurationSeconds: elapsed,
		Description:     description,
	})
	p.StartEpoch = nil
	return &StopResult{Project: name, DurationSeconds: elapsed}, nil
}

// EditResult reports the old and new duration of the edited entry.
type EditResult struct {
	OldSeconds int64
	NewSeconds int64
}

// EditLast replaces the duration of the last logged entry on the active
// project. The entry's start time and description are unchanged, and a
// parse failure leaves the entry untouched.
func EditLast(s *model.ProjectStore, durationText string) (*EditResult, error) {
	_, p, err := activeProject(s)
	if err != nil {
		return nil, err
	}
	if len(p.LoggedTimes) == 0 {
		return nil, ErrNoTimeLogged
	}
	seconds, perr := timecalc.ParseDuration(durationText)
	if perr != nil {
		return nil, &ParseDurationError{Input: durationText, Err: perr}
	}

	last := &p.LoggedTimes[len(p.LoggedTimes)-1]
	res := &EditResult{OldSeconds: last.DurationSeconds, NewSeconds: seconds}
	last.DurationSeconds = seconds
	return res, nil
}

// UndoResult reports what Undo did: either the running timer was
// cancelled (Cancelled, with the elapsed-so-far span) or the last
// logged entry was removed (with its duration and description).
type UndoResult struct {
	Cancelled       bool
	DurationSeconds int64
	Description     string
}

// Undo cancels the running timer if one is running; otherwise it
// removes the last logged entry. Exactly one of the two happens.
func Undo(s *model.ProjectStore, now time.Time) (*UndoResult, error) {
	_, p, err := activeProject(s)
	if err != nil {
		return nil, err
	}

	if p.Running() {
		elapsed, err := elapsedSince(*p.StartEpoch, now)
		if err != nil {
			return nil, err
		}
		p.StartEpoch = nil
		return &UndoResult{Cancelled: true, DurationSeconds: elapsed}, nil
	}

	if len(p.LoggedTimes) == 0 {
		return nil, ErrNoTimeLogged
	}
	last := p.LoggedTimes[len(p.LoggedTimes)-1]
	p.LoggedTimes = p.LoggedTimes[:len(p.LoggedTimes)-1]
	return &UndoResult{DurationSeconds: last.DurationSeconds, Description: last.Description}, nil
}

// ProjectLog is the active project's full log for display.
type ProjectLog struct {
	Project      string
	TotalSeconds int64
	Entries      []model.LoggedTime
}

// Log returns the active project's logged entries in insertion order.
func Log(s *model.ProjectStore) (*ProjectLog, error) {
	name, p, err := activeProject(s)
	if err != nil {
		return nil, err
	}
	return &ProjectLog{
		Project:      name,
		TotalSeconds: p.TotalSeconds(),
		Entries:      p.LoggedTimes,
	}, nil
}

// Create adds a new empty project and selects it.
func Create(s *model.ProjectStore, name string) error {
	if _, exists := s.Projects[name]; exists {
		return &ProjectExistsError{Name: name}
	}
	if s.Projects == nil {
		s.Projects = map[string]*model.Project{}
	}
	s.Projects[name] = &model.Project{LoggedTimes: []model.LoggedTime{}}
	active := name
	s.ActiveProject = &active
	return nil
}

// Remove deletes a project. If it was the active project, the selection
// is cleared. The project's timer state and entries are discarded
// without confirmation.
func Remove(s *model.ProjectStore, name string) error {
	if _, ok := s.Projects[name]; !ok {
		return &UnknownProjectError{Name: name}
	}
	delete(s.Projects, name)
	if s.ActiveProject != nil && *s.ActiveProject == name {
		s.ActiveProject = nil
	}
	return nil
}

// Select makes the named project the active one. Selecting the already
// active project is a no-op.
func Select(s *model.ProjectStore, name string) error {
	if _, ok := s.Projects[name]; !ok {
		return &UnknownProjectError{Name: name}
	}
	active := name
	s.ActiveProject = &active
	return nil
}

// Status describes the active project's current timer state.
type Status struct {
	Project        string
	Running        bool
	ElapsedSeconds int64
	TotalSeconds   int64
	EntryCount     int
}

// CurrentStatus reports whether the active project's timer is running,
// the elapsed time so far, and the project's logged totals.
func CurrentStatus(s *model.ProjectStore, now time.Time) (*Status, error) {
	name, p, err := activeProject(s)
	if err != nil {
		return nil, err
	}
	st := &Status{
		Project:      name,
		TotalSeconds: p.TotalSeconds(),
		EntryCount:   len(p.LoggedTimes),
	}
	if p.Running() {
		elapsed, err := elapsedSince(*p.StartEpoch, now)
		if err != nil {
			return nil, err
		}
		st.Running = true
		st.ElapsedSeconds = elapsed
	}
	return st, nil
}
