package dictapi

import "encoding/json"

// MessageHeader carries the human-readable error message on non-2xx responses.
const MessageHeader = "Message"

// RequestIDHeader correlates a request with client log lines.
const RequestIDHeader = "X-Request-ID"

// PageResponse is a Spring Data page as serialized by the dictionary API.
type PageResponse[T any] struct {
	Content       []T             `json:"content"`
	Pageable      json.RawMessage `json:"pageable,omitempty"` // object, or "INSTANCE" when unpaged
	Number        *int            `json:"number,omitempty"`
	Size          int             `json:"size"`
	TotalPages    int             `json:"totalPages"`
	TotalElements int             `json:"totalElements"`
	First         bool            `json:"first"`
	Last          bool            `json:"last"`
	Empty         bool            `json:"empty"`
}

// Pageable is the object form of PageResponse.Pageable.
type Pageable struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	Offset     int `json:"offset"`
}

// EntryResponse is a dictionary entry as serialized by the API.
type EntryResponse struct {
	ID         int64  `json:"id"`
	Word       string `json:"word"`
	WordType   string `json:"wordtype"`
	Definition string `json:"definition"`
}

// EntryRequest is the body of POST /entries and PUT /entries/{id}.
type EntryRequest struct {
	Word       string `json:"word"`
	WordType   string `json:"wordtype"`
	Definition string `json:"definition"`
}
