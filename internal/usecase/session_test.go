package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
	"github.com/ZuzannaKonieczna/partyplan/internal/testutil"
	"github.com/ZuzannaKonieczna/partyplan/internal/usecase"
)

func TestResolvePerson(t *testing.T) {
	party := testutil.NewTestParty()

	for _, ref := range []string{"", "c", "C", "celebrant", " Celebrant "} {
		got, err := usecase.ResolvePerson(party, ref)
		require.NoError(t, err, ref)
		assert.Same(t, party.Celebrant, got, ref)
	}

	got, err := usecase.ResolvePerson(party, "2")
	require.NoError(t, err)
	assert.Equal(t, "Eve", got.Name)

	_, err = usecase.ResolvePerson(party, "3")
	assert.ErrorIs(t, err, domain.ErrGuestNotFound)

	_, err = usecase.ResolvePerson(party, "Bob")
	assert.ErrorIs(t, err, domain.ErrInvalidPersonRef)
}
