package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
	"github.com/ZuzannaKonieczna/partyplan/internal/testutil"
)

func partyRepo() *testutil.MockPartyRepository {
	repo := testutil.NewMockPartyRepository()
	repo.Party = testutil.NewTestParty()
	return repo
}

func TestModel_Init_NoParty(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewMockPartyRepository())

	assert.Equal(t, ModeStart, m.mode)
	assert.Contains(t, m.View(), "No party yet.")
}

func TestModel_Init_LoadsParty(t *testing.T) {
	m, _ := newTestModel(t, partyRepo())

	assert.Equal(t, ModeNormal, m.mode)
	require.Len(t, m.guests, 2)
	view := m.View()
	assert.Contains(t, view, "Anna (30 years old)")
	assert.Contains(t, view, "1. Bob (25 years old)")
	assert.Contains(t, view, "2. Eve (28 years old)")
}

func TestModel_StartScreen_NewParty(t *testing.T) {
	repo := testutil.NewMockPartyRepository()
	m, _ := newTestModel(t, repo)

	press(m, "n")
	require.Equal(t, ModeForm, m.mode)
	require.Equal(t, formNewParty, m.form.kind)

	typeText(m, "Ola")
	press(m, "enter")
	typeText(m, "7")
	press(m, "enter")
	press(m, "enter")
	press(m, "enter")
	typeText(m, "150")
	cmd := press(m, "enter")
	runCmd(t, m, cmd)

	require.NotNil(t, repo.Party)
	assert.Equal(t, "Ola", repo.Party.Celebrant.Name)
	assert.Equal(t, 7, repo.Party.Celebrant.Age)
	assert.InDelta(t, 150.0, repo.Party.Budget, 1e-9)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "Party for Ola (7 years old) created.", m.notice)
}

func TestModel_AddGuest(t *testing.T) {
	repo := partyRepo()
	m, _ := newTestModel(t, repo)

	press(m, "n")
	require.Equal(t, formGuest, m.form.kind)
	typeText(m, "Ola")
	press(m, "enter")
	typeText(m, "7")
	runCmd(t, m, press(m, "enter"))

	assert.Len(t, repo.Party.Guests(), 3)
	assert.Len(t, m.guests, 3)
	assert.Equal(t, "Guest 'Ola' added.", m.notice)
	assert.Nil(t, m.form)
}

func TestModel_FormValidationError(t *testing.T) {
	repo := partyRepo()
	m, _ := newTestModel(t, repo)

	press(m, "n")
	typeText(m, "Ola")
	press(m, "enter")
	typeText(m, "seven")
	cmd := press(m, "enter")

	assert.Nil(t, cmd)
	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "age")
	assert.Equal(t, ModeForm, m.mode)
	assert.Len(t, repo.Party.Guests(), 2)
}

func TestModel_FormEscape(t *testing.T) {
	m, _ := newTestModel(t, partyRepo())

	press(m, "n")
	typeText(m, "Ola")
	press(m, "esc")

	assert.Equal(t, ModeNormal, m.mode)
	assert.Nil(t, m.form)
}

func TestModel_RemoveGuest(t *testing.T) {
	t.Run("confirm", func(t *testing.T) {
		repo := partyRepo()
		m, _ := newTestModel(t, repo)

		press(m, "down")
		press(m, "d")
		require.Equal(t, ModeConfirm, m.mode)
		assert.Contains(t, m.View(), "Remove Eve from the guest list?")

		runCmd(t, m, press(m, "y"))

		require.Len(t, repo.Party.Guests(), 1)
		assert.Equal(t, "Bob", repo.Party.Guests()[0].Name)
		assert.Equal(t, "Guest 'Eve' removed.", m.notice)
		assert.Equal(t, 0, m.cursor)
	})

	t.Run("cancel", func(t *testing.T) {
		repo := partyRepo()
		m, _ := newTestModel(t, repo)

		press(m, "d")
		cmd := press(m, "n")

		assert.Nil(t, cmd)
		assert.Equal(t, ModeNormal, m.mode)
		assert.Len(t, repo.Party.Guests(), 2)
	})
}

func TestModel_MarkTaskDone(t *testing.T) {
	repo := partyRepo()
	_, err := repo.Party.AddTask("Buy cake", "Friday", repo.Party.Guests()[0])
	require.NoError(t, err)
	m, _ := newTestModel(t, repo)

	press(m, "tab")
	press(m, "tab")
	require.Equal(t, TabTasks, m.tab)
	assert.Contains(t, m.View(), "[Not done]")

	runCmd(t, m, press(m, "x"))

	assert.Equal(t, domain.StatusDone, repo.Party.Tasks()[0].Status)
	assert.Equal(t, "Task 'Buy cake' marked as done.", m.notice)
	assert.Contains(t, m.View(), "[Done]")
}

func TestModel_AddGiftFromGiftsTab(t *testing.T) {
	repo := partyRepo()
	m, _ := newTestModel(t, repo)

	press(m, "tab")
	require.Equal(t, TabGifts, m.tab)
	press(m, "down") // Bob
	press(m, "n")
	require.Equal(t, formGift, m.form.kind)
	assert.Equal(t, "1", m.form.value(3))

	typeText(m, "Book")
	press(m, "enter")
	typeText(m, "20")
	press(m, "enter")
	typeText(m, "c")
	press(m, "enter")
	runCmd(t, m, press(m, "enter"))

	bob := repo.Party.Guests()[0]
	assert.Equal(t, []domain.GiftLine{{Name: "Book", Giver: "Anna", Price: 20}}, bob.ListGifts())
	assert.Equal(t, "Gift added.", m.notice)
	assert.Contains(t, m.View(), "1. Book (from Anna) - 20.00 PLN")
}

func TestModel_SaveAndLoad(t *testing.T) {
	repo := partyRepo()
	m, docs := newTestModel(t, repo)

	press(m, "w")
	require.Equal(t, formSave, m.form.kind)
	typeText(m, "out.yaml")
	runCmd(t, m, press(m, "enter"))

	require.Contains(t, docs.Documents, "out.yaml")
	assert.Equal(t, "Data saved to 'out.yaml'.", m.notice)

	press(m, "o")
	typeText(m, "out.yaml")
	runCmd(t, m, press(m, "enter"))

	assert.Equal(t, "Data loaded from 'out.yaml'.", m.notice)
	assert.Len(t, m.guests, 2)
}

func TestModel_LoadMissingDocument(t *testing.T) {
	m, _ := newTestModel(t, testutil.NewMockPartyRepository())

	press(m, "o")
	typeText(m, "missing.json")
	runCmd(t, m, press(m, "enter"))

	assert.ErrorIs(t, m.err, domain.ErrDocumentNotFound)
	assert.Equal(t, ModeStart, m.mode)
	assert.Contains(t, m.View(), "Error: party document not found")
}

func TestModel_HelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t, partyRepo())

	press(m, "?")
	assert.Equal(t, ModeHelp, m.mode)
	press(m, "j")
	assert.Equal(t, ModeNormal, m.mode)

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_ReloadPicksUpExternalChanges(t *testing.T) {
	repo := partyRepo()
	m, _ := newTestModel(t, repo)

	repo.Party.AddGuest(domain.NewPerson("Ola", 7))
	runCmd(t, m, press(m, "r"))

	assert.Len(t, m.guests, 3)
}
