package tracker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/timelogger/internal/model"
	"github.com/Tiliavir/timelogger/internal/tracker"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newStoreWith(t *testing.T, names ...string) *model.ProjectStore {
	t.Helper()
	s := model.NewProjectStore()
	for _, name := range names {
		require.NoError(t, tracker.Create(s, name))
	}
	return s
}

func TestCreateSelectsProject(t *testing.T) {
	s := model.NewProjectStore()

	require.NoError(t, tracker.Create(s, "acme"))
	require.NotNil(t, s.ActiveProject)
	assert.Equal(t, "acme", *s.ActiveProject)
	assert.Len(t, s.Projects, 1)

	// Creating always selects, even when another project was active.
	require.NoError(t, tracker.Create(s, "side"))
	assert.Equal(t, "side", *s.ActiveProject)
}

func TestCreateDuplicate(t *testing.T) {
	s := newStoreWith(t, "acme")

	err := tracker.Create(s, "acme")
	var exists *tracker.ProjectExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "acme", exists.Name)
	assert.Len(t, s.Projects, 1)
}

func TestSelectAfterCreateIsNoOp(t *testing.T) {
	s := newStoreWith(t, "acme")

	require.NoError(t, tracker.Select(s, "acme"))
	assert.Equal(t, "acme", *s.ActiveProject)
}

func TestSelectUnknown(t *testing.T) {
	s := newStoreWith(t, "acme")

	err := tracker.Select(s, "ghost")
	var unknown *tracker.UnknownProjectError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ghost", unknown.Name)
	assert.Equal(t, "acme", *s.ActiveProject)
}

func TestRemoveClearsActiveSelection(t *testing.T) {
	s := newStoreWith(t, "acme")

	require.NoError(t, tracker.Remove(s, "acme"))
	assert.Nil(t, s.ActiveProject)
	assert.Empty(t, s.Projects)
}

func TestRemoveInactiveKeepsSelection(t *testing.T) {
	s := newStoreWith(t, "other", "acme")

	require.NoError(t, tracker.Remove(s, "other"))
	require.NotNil(t, s.ActiveProject)
	assert.Equal(t, "acme", *s.ActiveProject)
}

func TestRemoveUnknown(t *testing.T) {
	s := newStoreWith(t, "acme")

	var unknown *tracker.UnknownProjectError
	require.ErrorAs(t, tracker.Remove(s, "ghost"), &unknown)
}

func TestStartStopLogsOneEntry(t *testing.T) {
	s := newStoreWith(t, "acme")

	name, err := tracker.Start(s, t0)
	require.NoError(t, err)
	assert.Equal(t, "acme", name)
	assert.True(t, s.Projects["acme"].Running())

	res, err := tracker.Stop(s, t0.Add(90*time.Minute), "  wrote design doc  ")
	require.NoError(t, err)
	assert.Equal(t, "acme", res.Project)
	assert.Equal(t, int64(5400), res.DurationSeconds)

	p := s.Projects["acme"]
	assert.False(t, p.Running())
	require.Len(t, p.LoggedTimes, 1)
	assert.Equal(t, "wrote design doc", p.LoggedTimes[0].Description)
	assert.Equal(t, t0.Unix(), p.LoggedTimes[0].StartEpoch)
	assert.Equal(t, int64(5400), p.LoggedTimes[0].DurationSeconds)
}

func TestStartPreconditions(t *testing.T) {
	s := model.NewProjectStore()
	_, err := tracker.Start(s, t0)
	assert.ErrorIs(t, err, tracker.ErrNoActiveProject)

	// Dangling selection after external deletion.
	dangling := "gone"
	s.ActiveProject = &dangling
	_, err = tracker.Start(s, t0)
	assert.ErrorIs(t, err, tracker.ErrUnknownActiveProject)
}

func TestStartTwice(t *testing.T) {
	s := newStoreWith(t, "acme")

	_, err := tracker.Start(s, t0)
	require.NoError(t, err)
	started := *s.Projects["acme"].StartEpoch

	_, err = tracker.Start(s, t0.Add(time.Minute))
	assert.ErrorIs(t, err, tracker.ErrAlreadyStarted)
	assert.Equal(t, started, *s.Projects["acme"].StartEpoch)
}

func TestStopWithoutStart(t *testing.T) {
	s := newStoreWith(t, "acme")

	_, err := tracker.Stop(s, t0, "work")
	assert.ErrorIs(t, err, tracker.ErrNotStarted)
}

func TestStopEmptyDescription(t *testing.T) {
	s := newStoreWith(t, "acme")
	_, err := tracker.Start(s, t0)
	require.NoError(t, err)

	_, err = tracker.Stop(s, t0.Add(time.Minute), "   ")
	assert.ErrorIs(t, err, tracker.ErrNoDescription)
	// The timer keeps running; nothing was logged.
	assert.True(t, s.Projects["acme"].Running())
	assert.Empty(t, s.Projects["acme"].LoggedTimes)
}

func TestStopClockWentBackwards(t *testing.T) {
	s := newStoreWith(t, "acme")
	_, err := tracker.Start(s, t0)
	require.NoError(t, err)

	_, err = tracker.Stop(s, t0.Add(-time.Hour), "work")
	assert.ErrorIs(t, err, tracker.ErrSystemTime)
	assert.True(t, s.Projects["acme"].Running())
	assert.Empty(t, s.Projects["acme"].LoggedTimes)
}

func TestEditLast(t *testing.T) {
	s := newStoreWith(t, "acme")
	_, err := tracker.Start(s, t0)
	require.NoError(t, err)
	_, err = tracker.Stop(s, t0.Add(10*time.Minute), "meeting")
	require.NoError(t, err)

	res, err := tracker.EditLast(s, "1h 30m")
	require.NoError(t, err)
	assert.Equal(t, int64(600), res.OldSeconds)
	assert.Equal(t, int64(5400), res.NewSeconds)

	p := s.Projects["acme"]
	assert.Equal(t, int64(5400), p.LoggedTimes[0].DurationSeconds)
	assert.Equal(t, "meeting", p.LoggedTimes[0].Description)
	assert.Equal(t, t0.Unix(), p.LoggedTimes[0].StartEpoch)
}

func TestEditLastMalformed(t *testing.T) {
	s := newStoreWith(t, "acme")
	_, err := tracker.Start(s, t0)
	require.NoError(t, err)
	_, err = tracker.Stop(s, t0.Add(10*time.Minute), "meeting")
	require.NoError(t, err)

	_, err = tracker.EditLast(s, "ninety minutes")
	var parseErr *tracker.ParseDurationError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "ninety minutes", parseErr.Input)
	// The entry is untouched.
	assert.Equal(t, int64(600), s.Projects["acme"].LoggedTimes[0].DurationSeconds)
}

func TestEditLastNoEntries(t *testing.T) {
	s := newStoreWith(t, "acme")

	_, err := tracker.EditLast(s, "definitely not a duration")
	// NoTimeLogged is checked before the duration is parsed.
	assert.ErrorIs(t, err, tracker.ErrNoTimeLogged)
}

func TestUndoCancelsRunningTimer(t *testing.T) {
	s := newStoreWith(t, "acme")
	_, err := tracker.Start(s, t0)
	require.NoError(t, err)
	_, err = tracker.Stop(s, t0.Add(time.Hour), "first")
	require.NoError(t, err)
	_, err = tracker.Start(s, t0.Add(2*time.Hour))
	require.NoError(t, err)

	res, err := tracker.Undo(s, t0.Add(2*time.Hour+20*time.Minute))
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
	assert.Equal(t, int64(1200), res.DurationSeconds)

	// Cancel only clears the timer; the log is untouched.
	p := s.Projects["acme"]
	assert.False(t, p.Running())
	assert.Len(t, p.LoggedTimes, 1)
}

func TestUndoPopsLastEntry(t *testing.T) {
	s := newStoreWith(t, "acme")
	for i, desc := range []string{"first", "second"} {
		start := t0.Add(time.Duration(i) * time.Hour)
		_, err := tracker.Start(s, start)
		require.NoError(t, err)
		_, err = tracker.Stop(s, start.Add(30*time.Minute), desc)
		require.NoError(t, err)
	}

	res, err := tracker.Undo(s, t0.Add(3*time.Hour))
	require.NoError(t, err)
	assert.False(t, res.Cancelled)
	assert.Equal(t, "second", res.Description)
	assert.Equal(t, int64(1800), res.DurationSeconds)
	require.Len(t, s.Projects["acme"].LoggedTimes, 1)
	assert.Equal(t, "first", s.Projects["acme"].LoggedTimes[0].Description)

	// Repeated undo drains the log, then reports NoTimeLogged.
	_, err = tracker.Undo(s, t0.Add(3*time.Hour))
	require.NoError(t, err)
	_, err = tracker.Undo(s, t0.Add(3*time.Hour))
	assert.ErrorIs(t, err, tracker.ErrNoTimeLogged)
}

func TestListTotalsMatchLog(t *testing.T) {
	s := newStoreWith(t, "beta", "acme")
	require.NoError(t, tracker.Select(s, "acme"))

	for i, mins := range []int{30, 45} {
		start := t0.Add(time.Duration(i) * time.Hour)
		_, err := tracker.Start(s, start)
		require.NoError(t, err)
		_, err = tracker.Stop(s, start.Add(time.Duration(mins)*time.Minute), "work")
		require.NoError(t, err)
	}

	totals := tracker.List(s)
	require.Len(t, totals, 2)
	// Sorted by name: acme before beta.
	assert.Equal(t, "acme", totals[0].Name)
	assert.True(t, totals[0].Active)
	assert.Equal(t, "beta", totals[1].Name)
	assert.False(t, totals[1].Active)

	log, err := tracker.Log(s)
	require.NoError(t, err)
	assert.Equal(t, totals[0].TotalSeconds, log.TotalSeconds)
	assert.Equal(t, int64(75*60), log.TotalSeconds)
	assert.Len(t, log.Entries, 2)
}

func TestListEmptyStore(t *testing.T) {
	assert.Empty(t, tracker.List(model.NewProjectStore()))
}

func TestLogPreconditions(t *testing.T) {
	s := model.NewProjectStore()
	_, err := tracker.Log(s)
	assert.ErrorIs(t, err, tracker.ErrNoActiveProject)
}

func TestCurrentStatus(t *testing.T) {
	s := newStoreWith(t, "acme")

	st, err := tracker.CurrentStatus(s, t0)
	require.NoError(t, err)
	assert.False(t, st.Running)
	assert.Zero(t, st.TotalSeconds)

	_, err = tracker.Start(s, t0)
	require.NoError(t, err)
	st, err = tracker.CurrentStatus(s, t0.Add(5*time.Minute))
	require.NoError(t, err)
	assert.True(t, st.Running)
	assert.Equal(t, int64(300), st.ElapsedSeconds)
}

func TestNoImplicitProjectCreation(t *testing.T) {
	s := model.NewProjectStore()

	var unknown *tracker.UnknownProjectError
	require.True(t, errors.As(tracker.Select(s, "acme"), &unknown))
	assert.Empty(t, s.Projects)
}
