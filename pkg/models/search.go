package models

import "encoding/json"

// SearchResultAliases maps SearchResult's internal field names to their
// wire keys.
var SearchResultAliases = wireAliases(nil,
	"note_id",
	"title",
)

// SearchResult is the lightweight note summary returned by a search.
type SearchResult struct {
	NoteID string
	Title  string
}

func (r *SearchResult) UnmarshalJSON(data []byte) error {
	obj, err := decodeWireObject(data)
	if err != nil {
		return err
	}

	if err := obj.require(SearchResultAliases["note_id"], &r.NoteID); err != nil {
		return err
	}
	return obj.optional(SearchResultAliases["title"], &r.Title)
}

func (r SearchResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		SearchResultAliases["note_id"]: r.NoteID,
		SearchResultAliases["title"]:   r.Title,
	})
}

// SearchResponse is the ordered result list of one search call, with the
// original query echoed back.
type SearchResponse struct {
	Results []SearchResult
	Query   string
}

func (r *SearchResponse) UnmarshalJSON(data []byte) error {
	obj, err := decodeWireObject(data)
	if err != nil {
		return err
	}

	// Server versions disagree on the list key; accept both.
	r.Results = nil
	if err := obj.optional("results", &r.Results); err != nil {
		return err
	}
	if r.Results == nil {
		if err := obj.optional("notes", &r.Results); err != nil {
			return err
		}
	}
	if r.Results == nil {
		r.Results = []SearchResult{}
	}

	return obj.optional("searchString", &r.Query)
}

// CreateNoteResponse is the POST /etapi/notes envelope: the created note
// plus the branch placing it under its parent.
type CreateNoteResponse struct {
	Note   Note
	Branch map[string]any
}

func (r *CreateNoteResponse) UnmarshalJSON(data []byte) error {
	obj, err := decodeWireObject(data)
	if err != nil {
		return err
	}

	if err := obj.require("note", &r.Note); err != nil {
		return err
	}
	return obj.optional("branch", &r.Branch)
}

// ConnectionTest is the outcome of a connectivity probe. It is derived
// state, never persisted, and never carries an error value: failures are
// folded into Success plus Error text so callers can check connectivity
// without error plumbing.
type ConnectionTest struct {
	Success      bool
	ServerURL    string
	TokenPreview string
	AppInfo      *AppInfo
	Error        string
}
