package tui

import "github.com/ZuzannaKonieczna/partyplan/internal/domain"

// Msg is the sealed interface for all menu messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgPartyLoaded is sent when the current party is read from the session.
type MsgPartyLoaded struct {
	Celebrant *domain.Person
	Guests    []*domain.Person
	Tasks     []*domain.Task
	Summary   domain.Summary
}

func (MsgPartyLoaded) sealed() {}

// MsgNoParty is sent when the session holds no party yet.
type MsgNoParty struct{}

func (MsgNoParty) sealed() {}

// MsgActionDone is sent when a use case changed the party or wrote a document.
type MsgActionDone struct {
	Notice string
}

func (MsgActionDone) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
