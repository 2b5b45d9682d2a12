package domain

import (
	interfaces "heroes/internal/domain/interfaces"
	types "heroes/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	HeroID = types.HeroID
	Hero   = types.Hero
	Ack    = types.Ack
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	HeroGateway = interfaces.HeroGateway
	Transport   = interfaces.Transport
	MessageLog  = interfaces.MessageLog
	MessageFeed = interfaces.MessageFeed
)
