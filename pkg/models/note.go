package models

import (
	"encoding/json"
	"strings"
)

// NoteType enumerates the note kinds ETAPI accepts.
type NoteType string

const (
	NoteTypeText        NoteType = "text"
	NoteTypeCode        NoteType = "code"
	NoteTypeFile        NoteType = "file"
	NoteTypeImage       NoteType = "image"
	NoteTypeSearch      NoteType = "search"
	NoteTypeBook        NoteType = "book"
	NoteTypeRelationMap NoteType = "relationMap"
	NoteTypeCanvas      NoteType = "canvas"
)

// NoteTypes lists every valid note type, in the server's documented order.
var NoteTypes = []NoteType{
	NoteTypeText,
	NoteTypeCode,
	NoteTypeFile,
	NoteTypeImage,
	NoteTypeSearch,
	NoteTypeBook,
	NoteTypeRelationMap,
	NoteTypeCanvas,
}

// Valid reports whether t is one of the enumerated note types.
func (t NoteType) Valid() bool {
	for _, v := range NoteTypes {
		if t == v {
			return true
		}
	}
	return false
}

func noteTypeList() string {
	names := make([]string, len(NoteTypes))
	for i, v := range NoteTypes {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

// NoteAliases maps Note's internal field names to their wire keys.
var NoteAliases = wireAliases(map[string]string{"note_type": "type"},
	"note_id",
	"title",
	"note_type",
	"mime",
	"is_protected",
	"date_created",
	"date_modified",
	"utc_date_created",
	"utc_date_modified",
	"parent_note_ids",
	"child_note_ids",
	"parent_branch_ids",
	"child_branch_ids",
	"attributes",
)

// Note is the primary content entity managed by the server. Values are
// built by decoding a server response; the client never mutates them.
type Note struct {
	NoteID      string
	Title       string
	NoteType    NoteType
	Mime        string // empty when the server sent none
	IsProtected bool

	DateCreated     DateTime
	DateModified    DateTime
	UTCDateCreated  DateTime
	UTCDateModified DateTime

	ParentNoteIDs   []string
	ChildNoteIDs    []string
	ParentBranchIDs []string
	ChildBranchIDs  []string

	Attributes []NoteAttribute
}

func (n *Note) UnmarshalJSON(data []byte) error {
	obj, err := decodeWireObject(data)
	if err != nil {
		return err
	}

	if err := obj.require(NoteAliases["note_id"], &n.NoteID); err != nil {
		return err
	}
	if err := obj.require(NoteAliases["title"], &n.Title); err != nil {
		return err
	}
	if err := obj.require(NoteAliases["note_type"], &n.NoteType); err != nil {
		return err
	}
	if !n.NoteType.Valid() {
		return &ValidationError{
			Field:  NoteAliases["note_type"],
			Reason: "must be one of: " + noteTypeList(),
		}
	}
	if err := obj.optional(NoteAliases["mime"], &n.Mime); err != nil {
		return err
	}
	if err := obj.require(NoteAliases["is_protected"], &n.IsProtected); err != nil {
		return err
	}

	for alias, dest := range map[string]*DateTime{
		NoteAliases["date_created"]:      &n.DateCreated,
		NoteAliases["date_modified"]:     &n.DateModified,
		NoteAliases["utc_date_created"]:  &n.UTCDateCreated,
		NoteAliases["utc_date_modified"]: &n.UTCDateModified,
	} {
		if err := obj.require(alias, dest); err != nil {
			return err
		}
	}

	for alias, dest := range map[string]*[]string{
		NoteAliases["parent_note_ids"]:   &n.ParentNoteIDs,
		NoteAliases["child_note_ids"]:    &n.ChildNoteIDs,
		NoteAliases["parent_branch_ids"]: &n.ParentBranchIDs,
		NoteAliases["child_branch_ids"]:  &n.ChildBranchIDs,
	} {
		if err := obj.optional(alias, dest); err != nil {
			return err
		}
		*dest = emptyIfNil(*dest)
	}

	n.Attributes = nil
	if err := obj.optional(NoteAliases["attributes"], &n.Attributes); err != nil {
		return err
	}
	if n.Attributes == nil {
		n.Attributes = []NoteAttribute{}
	}

	return nil
}

func (n Note) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		NoteAliases["note_id"]:           n.NoteID,
		NoteAliases["title"]:             n.Title,
		NoteAliases["note_type"]:         n.NoteType,
		NoteAliases["is_protected"]:      n.IsProtected,
		NoteAliases["date_created"]:      n.DateCreated,
		NoteAliases["date_modified"]:     n.DateModified,
		NoteAliases["utc_date_created"]:  n.UTCDateCreated,
		NoteAliases["utc_date_modified"]: n.UTCDateModified,
		NoteAliases["parent_note_ids"]:   emptyIfNil(n.ParentNoteIDs),
		NoteAliases["child_note_ids"]:    emptyIfNil(n.ChildNoteIDs),
		NoteAliases["parent_branch_ids"]: emptyIfNil(n.ParentBranchIDs),
		NoteAliases["child_branch_ids"]:  emptyIfNil(n.ChildBranchIDs),
	}
	if n.Mime != "" {
		out[NoteAliases["mime"]] = n.Mime
	}
	attrs := n.Attributes
	if attrs == nil {
		attrs = []NoteAttribute{}
	}
	out[NoteAliases["attributes"]] = attrs

	return json.Marshal(out)
}

// AttributeAliases maps NoteAttribute's internal field names to their wire keys.
var AttributeAliases = wireAliases(nil,
	"attribute_id",
	"note_id",
	"type",
	"name",
	"value",
	"position",
	"is_inheritable",
	"date_created",
	"date_modified",
	"utc_date_created",
	"utc_date_modified",
)

// NoteAttribute is a label or relation attached to a note. NoteID is a
// non-owning back-reference: the attribute is carried inside its note and
// has no lifecycle of its own in this client.
type NoteAttribute struct {
	AttributeID   string
	NoteID        string
	Type          string // free-form kind, e.g. "label" or "relation"
	Name          string
	Value         string
	Position      int
	IsInheritable bool

	DateCreated     *DateTime
	DateModified    *DateTime
	UTCDateCreated  *DateTime
	UTCDateModified *DateTime
}

func (a *NoteAttribute) UnmarshalJSON(data []byte) error {
	obj, err := decodeWireObject(data)
	if err != nil {
		return err
	}

	if err := obj.require(AttributeAliases["type"], &a.Type); err != nil {
		return err
	}
	if err := obj.require(AttributeAliases["name"], &a.Name); err != nil {
		return err
	}
	if err := obj.require(AttributeAliases["value"], &a.Value); err != nil {
		return err
	}

	if err := obj.optional(AttributeAliases["attribute_id"], &a.AttributeID); err != nil {
		return err
	}
	if err := obj.optional(AttributeAliases["note_id"], &a.NoteID); err != nil {
		return err
	}
	if err := obj.optional(AttributeAliases["position"], &a.Position); err != nil {
		return err
	}
	if err := obj.optional(AttributeAliases["is_inheritable"], &a.IsInheritable); err != nil {
		return err
	}

	for alias, dest := range map[string]**DateTime{
		AttributeAliases["date_created"]:      &a.DateCreated,
		AttributeAliases["date_modified"]:     &a.DateModified,
		AttributeAliases["utc_date_created"]:  &a.UTCDateCreated,
		AttributeAliases["utc_date_modified"]: &a.UTCDateModified,
	} {
		if err := obj.optional(alias, dest); err != nil {
			return err
		}
	}

	return nil
}

func (a NoteAttribute) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		AttributeAliases["type"]:           a.Type,
		AttributeAliases["name"]:           a.Name,
		AttributeAliases["value"]:          a.Value,
		AttributeAliases["is_inheritable"]: a.IsInheritable,
	}
	if a.AttributeID != "" {
		out[AttributeAliases["attribute_id"]] = a.AttributeID
	}
	if a.NoteID != "" {
		out[AttributeAliases["note_id"]] = a.NoteID
	}
	if a.Position != 0 {
		out[AttributeAliases["position"]] = a.Position
	}
	for alias, v := range map[string]*DateTime{
		AttributeAliases["date_created"]:      a.DateCreated,
		AttributeAliases["date_modified"]:     a.DateModified,
		AttributeAliases["utc_date_created"]:  a.UTCDateCreated,
		AttributeAliases["utc_date_modified"]: a.UTCDateModified,
	} {
		if v != nil {
			out[alias] = v
		}
	}

	return json.Marshal(out)
}
