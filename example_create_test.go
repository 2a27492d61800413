package trilium_test

import (
	"context"
	"fmt"
	"io"
	"net/http"

	trilium "github.com/trilium-community/trilium.go"
	"github.com/trilium-community/trilium.go/pkg/config"
	"github.com/trilium-community/trilium.go/pkg/models"
)

func ExampleNotesResource_Create() {
	client, err := trilium.New(&config.Config{
		URL:      "http://trilium.test:8081",
		Token:    "etapi-example-token",
		LogLevel: "ERROR",
	})
	if err != nil {
		panic(err)
	}
	defer client.Close(context.Background())

	client.Connection().SetHTTPClient(&http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			// Echo what a Trilium server would answer for this create.
			body, _ := io.ReadAll(req.Body)
			fmt.Printf("request body: %s\n", body)

			return jsonResponse(http.StatusCreated, `{
				"note": {
					"noteId": "meeting456def",
					"title": "Meeting notes",
					"type": "text",
					"isProtected": false,
					"dateCreated": "2025-03-10T09:00:00Z",
					"dateModified": "2025-03-10T09:00:00Z",
					"utcDateCreated": "2025-03-10T09:00:00Z",
					"utcDateModified": "2025-03-10T09:00:00Z",
					"parentNoteIds": ["root"]
				},
				"branch": {"branchId": "root_meeting456def", "notePosition": 10}
			}`), nil
		}),
	})

	note, err := client.Notes.Create(context.Background(), &models.CreateNoteRequest{
		ParentNoteID: "root",
		Title:        "Meeting notes",
		Content:      "<p>Agenda</p>",
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("created %s: %s\n", note.NoteID, note.Title)

	// Output:
	// request body: {"content":"<p>Agenda</p>","parentNoteId":"root","title":"Meeting notes","type":"text"}
	// created meeting456def: Meeting notes
}

func ExampleNotesResource_Update() {
	client, err := trilium.New(&config.Config{
		URL:      "http://trilium.test:8081",
		Token:    "etapi-example-token",
		LogLevel: "ERROR",
	})
	if err != nil {
		panic(err)
	}
	defer client.Close(context.Background())

	client.Connection().SetHTTPClient(&http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			fmt.Printf("patch body: %s\n", body)

			return jsonResponse(http.StatusOK, `{
				"noteId": "meeting456def",
				"title": "Retro notes",
				"type": "text",
				"isProtected": false,
				"dateCreated": "2025-03-10T09:00:00Z",
				"dateModified": "2025-03-11T10:00:00Z",
				"utcDateCreated": "2025-03-10T09:00:00Z",
				"utcDateModified": "2025-03-11T10:00:00Z"
			}`), nil
		}),
	})

	// A sparse patch: only the title travels, mime and type are untouched.
	title := "Retro notes"
	note, err := client.Notes.Update(context.Background(), "meeting456def", &models.UpdateNoteRequest{
		Title: &title,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("renamed to: %s\n", note.Title)

	// Output:
	// patch body: {"title":"Retro notes"}
	// renamed to: Retro notes
}
