package api

import "github.com/phrazzld/todolist-api/internal/domain"

// CreateListRequest defines the payload for creating a list.
type CreateListRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CreateEntryRequest defines the payload for adding an entry to a list.
// Description is a pointer so a missing or null description can be told
// apart from an empty one; only the former is rejected.
type CreateEntryRequest struct {
	Description *string `json:"description"`
}

// ListResponse is the JSON form of a list. Entries are never embedded.
type ListResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EntryResponse is the JSON form of an entry. The owning list is implied by
// the request path and not repeated.
type EntryResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

func listToResponse(list *domain.List) ListResponse {
	return ListResponse{
		ID:   list.ID,
		Name: list.Name,
	}
}

func listsToResponse(lists []*domain.List) []ListResponse {
	out := make([]ListResponse, 0, len(lists))
	for _, list := range lists {
		out = append(out, listToResponse(list))
	}
	return out
}

func entriesToResponse(entries []*domain.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, EntryResponse{
			ID:          entry.ID,
			Description: entry.Description,
		})
	}
	return out
}
