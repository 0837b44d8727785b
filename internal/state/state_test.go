package state

import (
	"context"
	"testing"
)

type fakeStore struct {
	saved [][]Draft
	load  []Draft
}

func (f *fakeStore) SaveDrafts(ctx context.Context, drafts []Draft) error {
	f.saved = append(f.saved, append([]Draft(nil), drafts...))
	return nil
}

func (f *fakeStore) LoadDrafts(ctx context.Context) ([]Draft, error) {
	return f.load, nil
}

func TestManagerDraftLifecycle(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	m := NewManager(store)

	if err := m.Begin(ctx, 42, "abena"); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	draft, ok := m.Get(42)
	if !ok {
		t.Fatal("draft not found after Begin")
	}
	if draft.Stage != StageTitle {
		t.Errorf("new draft stage = %q, want %q", draft.Stage, StageTitle)
	}

	draft.Title = "Waye Me Yie"
	draft.Stage = StageArtist
	if err := m.Set(ctx, draft); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, _ := m.Get(42)
	if got.Title != "Waye Me Yie" || got.Stage != StageArtist {
		t.Errorf("updated draft = %+v", got)
	}

	if err := m.Remove(ctx, 42); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := m.Get(42); ok {
		t.Error("draft still present after Remove")
	}

	if len(store.saved) != 3 {
		t.Errorf("store saw %d saves, want one per mutation (3)", len(store.saved))
	}
}

func TestManagerBeginReplacesExisting(t *testing.T) {
	ctx := context.Background()
	m := NewManager(&fakeStore{})

	_ = m.Begin(ctx, 7, "kwame")
	draft, _ := m.Get(7)
	draft.Title = "old"
	draft.Stage = StageLyrics
	_ = m.Set(ctx, draft)

	_ = m.Begin(ctx, 7, "kwame")
	got, _ := m.Get(7)
	if got.Title != "" || got.Stage != StageTitle {
		t.Errorf("Begin did not reset draft: %+v", got)
	}
	if len(m.All()) != 1 {
		t.Errorf("expected a single draft per chat, got %d", len(m.All()))
	}
}

func TestManagerSetWithoutDraft(t *testing.T) {
	m := NewManager(&fakeStore{})
	if err := m.Set(context.Background(), Draft{ChatID: 99}); err == nil {
		t.Error("Set on a chat with no draft should error")
	}
}

func TestManagerInitLoadsFromStore(t *testing.T) {
	store := &fakeStore{load: []Draft{{ChatID: 1, Stage: StageLyrics, Title: "T"}}}
	m := NewManager(store)

	if err := m.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if draft, ok := m.Get(1); !ok || draft.Title != "T" {
		t.Errorf("draft not restored from store: %+v ok=%v", draft, ok)
	}
}
