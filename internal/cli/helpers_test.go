package cli

import (
	"bytes"
	"testing"

	"github.com/ZuzannaKonieczna/partyplan/internal/app"
	"github.com/ZuzannaKonieczna/partyplan/internal/testutil"
)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(repo *testutil.MockPartyRepository) (*app.Container, *testutil.MockDocumentStore) {
	docs := testutil.NewMockDocumentStore()
	return app.NewWithDeps(app.Config{}, repo, docs, nil), docs
}

// newPartyContainer returns a container whose session holds testutil.NewTestParty.
func newPartyContainer() (*app.Container, *testutil.MockPartyRepository) {
	repo := testutil.NewMockPartyRepository()
	repo.Party = testutil.NewTestParty()
	c, _ := newTestContainer(repo)
	return c, repo
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(c, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
