package entities

import "time"

// InboundMessage is a chat message as seen by the bot, independent of transport.
type InboundMessage struct {
	ChatID     string    `json:"chat_id"`
	SenderID   string    `json:"sender_id"`
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"received_at"`
}

// Reply is one outbound message produced by a session step.
type Reply struct {
	Text      string
	ImagePath string
}

func TextReply(text string) Reply { return Reply{Text: text} }

func ImageReply(path string) Reply { return Reply{ImagePath: path} }
