package models

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// maxTitleLength bounds note titles, matching the server's own limit.
const maxTitleLength = 200

// CreateNoteAliases maps CreateNoteRequest's internal field names to their
// wire keys.
var CreateNoteAliases = wireAliases(map[string]string{"note_type": "type"},
	"parent_note_id",
	"title",
	"content",
	"note_type",
	"mime",
	"note_position",
	"prefix",
	"is_expanded",
	"note_id",
	"branch_id",
)

// CreateNoteRequest is the input for POST /etapi/notes. ParentNoteID and
// Title are required; a zero NoteType means text. NoteID may be
// pre-assigned by the caller (see rand.NewID) or left to the server.
type CreateNoteRequest struct {
	ParentNoteID string
	Title        string
	Content      string
	NoteType     NoteType
	Mime         string
	NotePosition *int
	Prefix       string
	IsExpanded   *bool
	NoteID       string
	BranchID     string
}

// Validate checks the request locally, before any network call.
func (r *CreateNoteRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.ParentNoteID, validation.Required),
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, maxTitleLength)),
		validation.Field(&r.NoteType, validation.By(checkNoteType)),
	)
	if err != nil {
		return &ValidationError{Reason: err.Error(), Err: err}
	}
	return nil
}

func (r CreateNoteRequest) MarshalJSON() ([]byte, error) {
	noteType := r.NoteType
	if noteType == "" {
		noteType = NoteTypeText
	}

	out := map[string]any{
		CreateNoteAliases["parent_note_id"]: r.ParentNoteID,
		CreateNoteAliases["title"]:          r.Title,
		CreateNoteAliases["content"]:        r.Content,
		CreateNoteAliases["note_type"]:      noteType,
	}
	if r.Mime != "" {
		out[CreateNoteAliases["mime"]] = r.Mime
	}
	if r.NotePosition != nil {
		out[CreateNoteAliases["note_position"]] = *r.NotePosition
	}
	if r.Prefix != "" {
		out[CreateNoteAliases["prefix"]] = r.Prefix
	}
	if r.IsExpanded != nil {
		out[CreateNoteAliases["is_expanded"]] = *r.IsExpanded
	}
	if r.NoteID != "" {
		out[CreateNoteAliases["note_id"]] = r.NoteID
	}
	if r.BranchID != "" {
		out[CreateNoteAliases["branch_id"]] = r.BranchID
	}

	return json.Marshal(out)
}

// UpdateNoteAliases maps UpdateNoteRequest's internal field names to their
// wire keys.
var UpdateNoteAliases = wireAliases(map[string]string{"note_type": "type"},
	"title",
	"note_type",
	"mime",
)

// UpdateNoteRequest is a sparse patch for PATCH /etapi/notes/{id}: nil
// fields are not transmitted and are left untouched server-side.
type UpdateNoteRequest struct {
	Title    *string
	NoteType *NoteType
	Mime     *string
}

// Validate checks the patch locally, before any network call.
func (r *UpdateNoteRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.RuneLength(1, maxTitleLength)),
		validation.Field(&r.NoteType, validation.By(checkNoteType)),
	)
	if err != nil {
		return &ValidationError{Reason: err.Error(), Err: err}
	}
	return nil
}

// IsEmpty reports whether the patch sets no fields at all.
func (r *UpdateNoteRequest) IsEmpty() bool {
	return r.Title == nil && r.NoteType == nil && r.Mime == nil
}

func (r UpdateNoteRequest) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	if r.Title != nil {
		out[UpdateNoteAliases["title"]] = *r.Title
	}
	if r.NoteType != nil {
		out[UpdateNoteAliases["note_type"]] = *r.NoteType
	}
	if r.Mime != nil {
		out[UpdateNoteAliases["mime"]] = *r.Mime
	}
	return json.Marshal(out)
}

// checkNoteType is an ozzo rule accepting an unset type (defaults apply)
// or any member of the enumeration.
func checkNoteType(value any) error {
	var t NoteType
	switch v := value.(type) {
	case NoteType:
		t = v
	case *NoteType:
		if v == nil {
			return nil
		}
		t = *v
	case string:
		t = NoteType(v)
	}

	if t == "" || t.Valid() {
		return nil
	}
	return &ValidationError{
		Field:  "type",
		Reason: "must be one of: " + noteTypeList(),
	}
}

// SearchRequest describes GET /etapi/notes query parameters. Search is
// required; everything else is optional and omitted from the query string
// when unset.
type SearchRequest struct {
	Search               string
	FastSearch           bool
	IncludeArchivedNotes bool
	AncestorNoteID       string
	OrderBy              []string
	Limit                int // 0 means no limit parameter
}

// Validate checks the request locally, before any network call.
func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.Search) == "" {
		return &ValidationError{Field: "search", Reason: "required field missing"}
	}
	return nil
}

// Values renders the request as URL query parameters using the wire
// parameter names.
func (r *SearchRequest) Values() url.Values {
	v := url.Values{}
	v.Set("search", r.Search)
	if r.FastSearch {
		v.Set("fastSearch", "true")
	}
	if r.IncludeArchivedNotes {
		v.Set("includeArchivedNotes", "true")
	}
	if r.AncestorNoteID != "" {
		v.Set("ancestorNoteId", r.AncestorNoteID)
	}
	if len(r.OrderBy) > 0 {
		v.Set("orderBy", strings.Join(r.OrderBy, ","))
	}
	if r.Limit > 0 {
		v.Set("limit", strconv.Itoa(r.Limit))
	}
	return v
}
