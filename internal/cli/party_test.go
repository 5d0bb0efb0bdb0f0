package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
	"github.com/ZuzannaKonieczna/partyplan/internal/testutil"
)

func TestNewCommand_CreatesParty(t *testing.T) {
	repo := testutil.NewMockPartyRepository()
	c, _ := newTestContainer(repo)

	stdout, _, err := run(t, c, "new", "--name", "Anna", "--age", "30", "--date", "2024-06-01", "--location", "Warsaw", "--budget", "500")

	require.NoError(t, err)
	assert.Equal(t, "Party for Anna (30 years old) created.\n", stdout)
	require.NotNil(t, repo.Party)
	assert.InDelta(t, 500.0, repo.Party.Budget, 1e-9)
	assert.Equal(t, "Warsaw", repo.Party.Location)
}

func TestNewCommand_RequiresName(t *testing.T) {
	c, _ := newTestContainer(testutil.NewMockPartyRepository())

	_, _, err := run(t, c, "new", "--age", "30")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"name"`)
}

func TestNewCommand_ExistingParty(t *testing.T) {
	c, repo := newPartyContainer()

	_, _, err := run(t, c, "new", "--name", "Ola")
	require.ErrorIs(t, err, domain.ErrPartyExists)
	assert.Equal(t, "Anna", repo.Party.Celebrant.Name)

	_, _, err = run(t, c, "new", "--name", "Ola", "--force")
	require.NoError(t, err)
	assert.Equal(t, "Ola", repo.Party.Celebrant.Name)
}

func TestSaveAndLoadCommands(t *testing.T) {
	c, repo := newPartyContainer()
	_, err := repo.Party.AddTask("Buy cake", "Friday", repo.Party.Guests()[0])
	require.NoError(t, err)

	stdout, _, err := run(t, c, "save", "party.json")
	require.NoError(t, err)
	assert.Equal(t, "Data saved to 'party.json'.\n", stdout)

	_, _, err = run(t, c, "new", "--name", "Ola", "--force")
	require.NoError(t, err)

	stdout, _, err = run(t, c, "load", "party.json")
	require.NoError(t, err)
	assert.Equal(t, "Data loaded from 'party.json'.\n", stdout)
	assert.Equal(t, "Anna", repo.Party.Celebrant.Name)
	assert.Len(t, repo.Party.Guests(), 2)
	assert.Len(t, repo.Party.Tasks(), 1)
}

func TestLoadCommand_WarnsAboutDroppedTasks(t *testing.T) {
	repo := testutil.NewMockPartyRepository()
	c, docs := newTestContainer(repo)
	docs.Documents["party.yaml"] = &domain.Document{
		Celebrant: domain.DocumentPerson{Name: "Anna", Age: 30},
		Tasks:     []domain.DocumentTask{{Description: "Balloons", ResponsibleName: "Ghost", Status: domain.StatusNotDone}},
	}

	stdout, stderr, err := run(t, c, "load", "party.yaml")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Data loaded from 'party.yaml'.")
	assert.Contains(t, stderr, "skipped 1 task(s)")
}

func TestLoadCommand_MissingFile(t *testing.T) {
	c, repo := newPartyContainer()

	_, _, err := run(t, c, "load", "nope.json")

	require.ErrorIs(t, err, domain.ErrDocumentNotFound)
	assert.Equal(t, "Anna", repo.Party.Celebrant.Name)
}

func TestSummaryCommand(t *testing.T) {
	c, repo := newPartyContainer()
	_, err := repo.Party.AddGift("Book", 20, repo.Party.Guests()[0], repo.Party.Celebrant)
	require.NoError(t, err)
	_, err = repo.Party.AddTask("Buy cake", "Friday", repo.Party.Guests()[1])
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		stdout, _, err := run(t, c, "summary")

		require.NoError(t, err)
		assert.Contains(t, stdout, "=== PARTY SUMMARY ===")
		assert.Contains(t, stdout, "Celebrant: Anna (30 years old)")
		assert.Contains(t, stdout, "Budget: 100.00 PLN")
		assert.Contains(t, stdout, "Buy cake")
		assert.Contains(t, stdout, "Total value of all gifts: 20.00 PLN")
		assert.Contains(t, stdout, "Remaining budget: 80.00 PLN")
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := run(t, c, "summary", "--json")
		require.NoError(t, err)

		var got domain.Summary
		require.NoError(t, json.Unmarshal([]byte(stdout), &got))
		assert.Equal(t, "Anna", got.Celebrant.Name)
		assert.Len(t, got.Guests, 2)
		assert.InDelta(t, 80.0, got.RemainingBudget, 1e-9)
		require.Len(t, got.Tasks, 1)
		assert.Equal(t, "Eve", got.Tasks[0].Responsible)
	})
}

func TestSummaryCommand_NoParty(t *testing.T) {
	c, _ := newTestContainer(testutil.NewMockPartyRepository())

	_, _, err := run(t, c, "summary")

	require.ErrorIs(t, err, domain.ErrNoParty)
}
