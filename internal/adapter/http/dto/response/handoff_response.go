package response

type HandoffListResponse struct {
	ChatIDs []string `json:"chat_ids"`
	Count   int      `json:"count"`
}

type HandoffChangeResponse struct {
	ChatID  string `json:"chat_id"`
	Active  bool   `json:"active"`
	Changed bool   `json:"changed"`
}

type MessageAcceptedResponse struct {
	ChatID string `json:"chat_id"`
	Status string `json:"status"`
}

func FromHandoffList(ids []string) HandoffListResponse {
	if ids == nil {
		ids = []string{}
	}
	return HandoffListResponse{ChatIDs: ids, Count: len(ids)}
}
