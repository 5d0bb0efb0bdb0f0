package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), ".partyplan", "party.json"))
}

func newTestParty(t *testing.T) *domain.Party {
	t.Helper()
	p := domain.NewParty(domain.NewPerson("Anna", 30), "2024-06-01", "Warsaw", 100)
	bob := domain.NewPerson("Bob", 25)
	p.AddGuest(bob)
	if _, err := p.AddGift("Book", 20, bob, p.Celebrant); err != nil {
		t.Fatalf("AddGift() error = %v", err)
	}
	if _, err := p.AddTask("Buy cake", "Friday", bob); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	return p
}

func TestStore_Load_NoFile(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load()
	if !errors.Is(err, domain.ErrNoParty) {
		t.Errorf("Load() error = %v, want ErrNoParty", err)
	}

	exists, err := store.Exists()
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true, want false")
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	party := newTestParty(t)

	if err := store.Save(party); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Parent directory is created on demand
	if _, err := os.Stat(store.Path()); err != nil {
		t.Fatalf("store file not created: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.Celebrant.ID != party.Celebrant.ID {
		t.Errorf("Celebrant.ID = %q, want %q", got.Celebrant.ID, party.Celebrant.ID)
	}
	if got.Location != "Warsaw" {
		t.Errorf("Location = %q, want %q", got.Location, "Warsaw")
	}
	if len(got.Guests()) != 1 || got.Guests()[0].Name != "Bob" {
		t.Errorf("Guests() = %v", got.Guests())
	}
	if got.TotalGiftCost() != 20 {
		t.Errorf("TotalGiftCost() = %v, want 20", got.TotalGiftCost())
	}
	if len(got.Tasks()) != 1 || got.Tasks()[0].Responsible != got.Guests()[0] {
		t.Errorf("task responsible not resolved to the restored guest")
	}

	exists, err := store.Exists()
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false, want true")
	}
}

func TestStore_Save_Overwrites(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(newTestParty(t)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	replacement := domain.NewParty(domain.NewPerson("Ola", 7), "", "Home", 50)
	if err := store.Save(replacement); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Celebrant.Name != "Ola" {
		t.Errorf("Celebrant.Name = %q, want %q", got.Celebrant.Name, "Ola")
	}
	if len(got.Guests()) != 0 {
		t.Errorf("Guests() = %v, want empty", got.Guests())
	}

	rev, err := store.Revision()
	if err != nil {
		t.Fatalf("Revision() error = %v", err)
	}
	if rev != 2 {
		t.Errorf("Revision() = %d, want 2", rev)
	}
}

func TestStore_Save_NoTempFileLeft(t *testing.T) {
	store := newTestStore(t)

	if err := store.Save(newTestParty(t)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(store.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file should not exist, stat error = %v", err)
	}
}

func TestStore_Load_Corrupt(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := store.Load()
	if !errors.Is(err, domain.ErrCorruptSession) {
		t.Errorf("Load() error = %v, want ErrCorruptSession", err)
	}
}

func TestStore_Load_DanglingReference(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o750); err != nil {
		t.Fatal(err)
	}
	content := `{"party": {"celebrantID": "missing", "people": []}, "meta": {"revision": 1}}`
	if err := os.WriteFile(store.Path(), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := store.Load()
	if !errors.Is(err, domain.ErrCorruptSession) {
		t.Errorf("Load() error = %v, want ErrCorruptSession", err)
	}
}
