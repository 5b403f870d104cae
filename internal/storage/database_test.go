package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunLifecycle(t *testing.T) {
	db := openTestDB(t)
	started := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	require.NoError(t, db.StartRun(Run{
		ID:        "run-1",
		Directory: "/home/me/Desktop",
		Include:   "png",
		StartedAt: started,
	}))

	run, err := db.GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, run.Status)
	assert.Equal(t, "/home/me/Desktop", run.Directory)
	assert.True(t, run.StartedAt.Equal(started))
	assert.True(t, run.FinishedAt.IsZero())

	require.NoError(t, db.AddMove(MoveRecord{RunID: "run-1", SourcePath: "/d/a.png", DestPath: "/d/images/a.png", Filename: "a.png", Category: "images"}))
	require.NoError(t, db.AddMove(MoveRecord{RunID: "run-1", SourcePath: "/d/b.png", DestPath: "/d/images/b.png", Filename: "b.png", Category: "images", Overwrote: true}))
	require.NoError(t, db.FinishRun("run-1", 3, 2, started.Add(time.Second), nil))

	run, err = db.GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, run.Status)
	assert.Equal(t, 3, run.Scanned)
	assert.Equal(t, 2, run.Moved)
	assert.Empty(t, run.Error)
	assert.False(t, run.FinishedAt.IsZero())

	moves, err := db.GetRunMoves("run-1")
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, "a.png", moves[0].Filename)
	assert.False(t, moves[0].Overwrote)
	assert.True(t, moves[1].Overwrote)
}

func TestFinishRunWithError(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	require.NoError(t, db.StartRun(Run{ID: "bad", Directory: "/nope", StartedAt: now}))
	require.NoError(t, db.FinishRun("bad", 0, 0, now, errors.New("stat /nope: no such file or directory")))

	run, err := db.GetRun("bad")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, run.Status)
	assert.Contains(t, run.Error, "/nope")
}

func TestRecentRunsAndPrefixLookup(t *testing.T) {
	db := openTestDB(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, db.StartRun(Run{ID: "aaaa-1", Directory: "/a", StartedAt: base}))
	require.NoError(t, db.StartRun(Run{ID: "aaab-2", Directory: "/b", StartedAt: base.Add(time.Minute)}))
	require.NoError(t, db.StartRun(Run{ID: "cccc-3", Directory: "/c", StartedAt: base.Add(2 * time.Minute)}))

	runs, err := db.GetRecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "cccc-3", runs[0].ID)
	assert.Equal(t, "aaab-2", runs[1].ID)

	assert.Equal(t, "cccc-3", db.GetLatestRun())

	run, err := db.GetRun("cccc")
	require.NoError(t, err)
	assert.Equal(t, "/c", run.Directory)

	_, err = db.GetRun("aaa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	_, err = db.GetRun("zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResetHistory(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.StartRun(Run{ID: "r", Directory: "/x", StartedAt: time.Now()}))
	require.NoError(t, db.AddMove(MoveRecord{RunID: "r", SourcePath: "a", DestPath: "b", Filename: "a", Category: "images"}))

	require.NoError(t, db.ResetHistory())

	runs, err := db.GetRecentRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
	moves, err := db.GetRunMoves("r")
	require.NoError(t, err)
	assert.Empty(t, moves)
	assert.Equal(t, "", db.GetLatestRun())
}

func TestStatistics(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	require.NoError(t, db.StartRun(Run{ID: "real", Directory: "/d", StartedAt: now}))
	require.NoError(t, db.AddMove(MoveRecord{RunID: "real", SourcePath: "/d/a.png", DestPath: "/d/images/a.png", Filename: "a.png", Category: "images"}))
	require.NoError(t, db.AddMove(MoveRecord{RunID: "real", SourcePath: "/d/b.jpg", DestPath: "/d/images/b.jpg", Filename: "b.jpg", Category: "images", Overwrote: true}))
	require.NoError(t, db.AddMove(MoveRecord{RunID: "real", SourcePath: "/d/c.py", DestPath: "/d/python/c.py", Filename: "c.py", Category: "python"}))
	require.NoError(t, db.FinishRun("real", 4, 3, now, nil))

	require.NoError(t, db.StartRun(Run{ID: "preview", Directory: "/d", DryRun: true, StartedAt: now}))
	require.NoError(t, db.AddMove(MoveRecord{RunID: "preview", SourcePath: "/d/x.cpp", DestPath: "/d/c++/x.cpp", Filename: "x.cpp", Category: "c++"}))
	require.NoError(t, db.FinishRun("preview", 1, 1, now, nil))

	require.NoError(t, db.StartRun(Run{ID: "broken", Directory: "/gone", StartedAt: now}))
	require.NoError(t, db.FinishRun("broken", 0, 0, now, errors.New("boom")))

	stats, err := db.GetStatistics()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Runs)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.DryRuns)
	assert.Equal(t, 3, stats.Moved)
	assert.Equal(t, 1, stats.Overwrote)
	assert.Equal(t, map[string]int{"images": 2, "python": 1}, stats.ByCategory)
}

func TestStatisticsEmpty(t *testing.T) {
	stats, err := openTestDB(t).GetStatistics()
	require.NoError(t, err)
	assert.Zero(t, stats.Runs)
	assert.Empty(t, stats.ByCategory)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	db, err := NewDatabase(path)
	require.NoError(t, err)
	require.NoError(t, db.StartRun(Run{ID: "persist", Directory: "/p", StartedAt: time.Now()}))
	require.NoError(t, db.Close())

	db, err = NewDatabase(path)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, "persist", db.GetLatestRun())
}

func TestParseTime(t *testing.T) {
	assert.True(t, parseTime("").IsZero())
	assert.True(t, parseTime("garbage").IsZero())
	assert.Equal(t, 2026, parseTime("2026-10-19 08:00:00").Year())
	assert.Equal(t, 2026, parseTime("2026-10-19T08:00:00Z").Year())
}
