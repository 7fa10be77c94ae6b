package update

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/hooprank/hooprank-data/internal/nba"
)

type fakeSource struct {
	stats []nba.GameStat
	err   error
}

func (f *fakeSource) GameStats(ctx context.Context, season int) ([]nba.GameStat, error) {
	return f.stats, f.err
}

type fakeStore struct {
	upserts [][]nba.SeasonRow
	err     error
}

func (f *fakeStore) UpsertSeasonRows(ctx context.Context, rows []nba.SeasonRow) error {
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, rows)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleStats() []nba.GameStat {
	mk := func(playerID int, min, date string, pts float64) nba.GameStat {
		raw, _ := json.Marshal(min)
		return nba.GameStat{
			Player: &nba.Player{ID: playerID, FirstName: "A", LastName: "B"},
			Team:   &nba.Team{ID: 1, Abbreviation: "TX"},
			Game:   &nba.Game{Date: date},
			Min:    raw,
			Pts:    pts,
		}
	}
	return []nba.GameStat{
		mk(7, "30:00", "2024-01-01", 20),
		mk(7, "35:00", "2024-01-05", 10),
		mk(9, "12:00", "2024-01-02", 6),
	}
}

func TestRunHappyPath(t *testing.T) {
	src := &fakeSource{stats: sampleStats()}
	st := &fakeStore{}

	result, err := Run(context.Background(), src, st, 2024, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.StatLines != 3 || result.Players != 2 || result.RowsUpserted != 2 {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(st.upserts) != 1 || len(st.upserts[0]) != 2 {
		t.Fatalf("expected one upsert call with 2 rows, got %+v", st.upserts)
	}
	if got := st.upserts[0][0].PlayerID; got != 7 {
		t.Fatalf("rows should be sorted by player id, first was %d", got)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	src := &fakeSource{stats: sampleStats()}
	st := &fakeStore{}

	if _, err := Run(context.Background(), src, st, 2024, testLogger()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := Run(context.Background(), src, st, 2024, testLogger()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(st.upserts[0], st.upserts[1]) {
		t.Fatal("two runs over the same input must upsert identical rows")
	}
}

func TestRunFetchFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	st := &fakeStore{}

	_, err := Run(context.Background(), src, st, 2024, testLogger())
	if !errors.Is(err, ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
	if len(st.upserts) != 0 {
		t.Fatal("nothing may be written when the fetch fails")
	}
}

func TestRunStoreFailure(t *testing.T) {
	src := &fakeSource{stats: sampleStats()}
	st := &fakeStore{err: errors.New("connection reset")}

	result, err := Run(context.Background(), src, st, 2024, testLogger())
	if !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
	if result.RowsUpserted != 0 {
		t.Fatalf("no rows should count as upserted on store failure, got %d", result.RowsUpserted)
	}
}

func TestRunNoQualifyingRecords(t *testing.T) {
	// All stat lines missing minutes: no aggregates, no upsert call.
	src := &fakeSource{stats: []nba.GameStat{
		{Player: &nba.Player{ID: 7}, Pts: 10},
	}}
	st := &fakeStore{}

	result, err := Run(context.Background(), src, st, 2024, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RowsUpserted != 0 || len(st.upserts) != 0 {
		t.Fatalf("expected no upserts, got %+v", st.upserts)
	}
}
