package response

import "orcamento_bot/internal/domain/entities"

type CatalogEntryResponse struct {
	Key   string  `json:"key"`
	Code  string  `json:"code,omitempty"`
	Name  string  `json:"name"`
	Price *string `json:"price,omitempty"`
}

type CatalogLookupResponse struct {
	Query      string                 `json:"query"`
	Kind       string                 `json:"kind"`
	Entry      *CatalogEntryResponse  `json:"entry,omitempty"`
	Candidates []CatalogEntryResponse `json:"candidates,omitempty"`
}

type CatalogRefreshResponse struct {
	Entries int `json:"entries"`
}

func FromCatalogEntry(e entities.CatalogEntry) CatalogEntryResponse {
	out := CatalogEntryResponse{Key: e.Key, Code: e.Code, Name: e.Name}
	if e.Price != nil {
		p := e.Price.StringFixed(2)
		out.Price = &p
	}
	return out
}

func FromCatalogMatch(query string, m entities.CatalogMatch) CatalogLookupResponse {
	out := CatalogLookupResponse{Query: query, Kind: string(m.Kind)}
	switch m.Kind {
	case entities.MatchUnique:
		e := FromCatalogEntry(m.Entry)
		out.Entry = &e
	case entities.MatchAmbiguous:
		for _, c := range m.Candidates {
			out.Candidates = append(out.Candidates, FromCatalogEntry(c))
		}
	}
	return out
}
