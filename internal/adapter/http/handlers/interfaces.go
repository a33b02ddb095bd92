package handlers

import "orcamento_bot/internal/domain/entities"

// IMessageDispatcher hands an inbound message to the chat's worker.
type IMessageDispatcher interface {
	Dispatch(msg entities.InboundMessage) error
}
