package request

type StartHandoffRequest struct {
	ChatID string `json:"chat_id" binding:"required"`
}
