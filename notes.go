package trilium

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/trilium-community/trilium.go/internal/rand"
	"github.com/trilium-community/trilium.go/pkg/constants"
	"github.com/trilium-community/trilium.go/pkg/models"
)

// NewNoteID returns a random identifier in Trilium's id format, for
// callers that want to assign CreateNoteRequest.NoteID themselves.
func NewNoteID() string {
	return rand.NewID(constants.NoteIDLength)
}

// NotesResource groups the note operations. It is stateless: every method
// is one validated request, one blocking round trip and one decoded
// response, borrowing the client's transport.
type NotesResource struct {
	client *Client
}

// Create adds a note under req.ParentNoteID via POST /etapi/notes and
// returns the created note from the {note, branch} envelope.
func (r *NotesResource) Create(ctx context.Context, req *models.CreateNoteRequest) (*models.Note, error) {
	if err := r.client.checkOpen(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	body, err := r.client.conn.Post(ctx, "/notes", payload)
	if err != nil {
		return nil, err
	}

	var resp models.CreateNoteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	return &resp.Note, nil
}

// Get fetches a note by id.
func (r *NotesResource) Get(ctx context.Context, noteID string) (*models.Note, error) {
	if err := r.client.checkOpen(); err != nil {
		return nil, err
	}
	if err := requireNoteID(noteID); err != nil {
		return nil, err
	}

	body, err := r.client.conn.Get(ctx, "/notes/"+url.PathEscape(noteID))
	if err != nil {
		return nil, err
	}

	var note models.Note
	if err := json.Unmarshal(body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// GetContent fetches a note's raw body text.
func (r *NotesResource) GetContent(ctx context.Context, noteID string) (string, error) {
	if err := r.client.checkOpen(); err != nil {
		return "", err
	}
	if err := requireNoteID(noteID); err != nil {
		return "", err
	}

	body, err := r.client.conn.Get(ctx, "/notes/"+url.PathEscape(noteID)+"/content")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Update applies a sparse patch via PATCH /etapi/notes/{id}: only fields
// explicitly set on the patch are transmitted, absent fields are left
// untouched server-side. Returns the updated note.
func (r *NotesResource) Update(ctx context.Context, noteID string, patch *models.UpdateNoteRequest) (*models.Note, error) {
	if err := r.client.checkOpen(); err != nil {
		return nil, err
	}
	if err := requireNoteID(noteID); err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}

	body, err := r.client.conn.Patch(ctx, "/notes/"+url.PathEscape(noteID), payload)
	if err != nil {
		return nil, err
	}

	var note models.Note
	if err := json.Unmarshal(body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateContent replaces a note's body text via PUT
// /etapi/notes/{id}/content. A nil error means the server acknowledged
// the write.
func (r *NotesResource) UpdateContent(ctx context.Context, noteID, content string) error {
	if err := r.client.checkOpen(); err != nil {
		return err
	}
	if err := requireNoteID(noteID); err != nil {
		return err
	}

	_, err := r.client.conn.PutText(ctx, "/notes/"+url.PathEscape(noteID)+"/content", content)
	return err
}

// Delete removes a note. A nil error means the server acknowledged the
// deletion.
func (r *NotesResource) Delete(ctx context.Context, noteID string) error {
	if err := r.client.checkOpen(); err != nil {
		return err
	}
	if err := requireNoteID(noteID); err != nil {
		return err
	}

	_, err := r.client.conn.Delete(ctx, "/notes/"+url.PathEscape(noteID))
	return err
}

// Search runs a note query via GET /etapi/notes and echoes the original
// query string on the response.
func (r *NotesResource) Search(ctx context.Context, req *models.SearchRequest) (*models.SearchResponse, error) {
	if err := r.client.checkOpen(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := r.client.conn.GetQuery(ctx, "/notes", req.Values())
	if err != nil {
		return nil, err
	}

	var resp models.SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	resp.Query = req.Search
	return &resp, nil
}

func requireNoteID(noteID string) error {
	if noteID == "" {
		return &models.ValidationError{Field: "noteId", Reason: "required field missing"}
	}
	return nil
}
