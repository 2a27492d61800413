package trilium_test

import (
	"context"
	"fmt"
	"net/http"

	trilium "github.com/trilium-community/trilium.go"
	"github.com/trilium-community/trilium.go/pkg/config"
	"github.com/trilium-community/trilium.go/pkg/models"
)

func ExampleNotesResource_Search() {
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
			fmt.Printf("query: %s\n", req.URL.RawQuery)

			return jsonResponse(http.StatusOK, `{
				"results": [
					{"noteId": "n1", "title": "Kubernetes cheatsheet"},
					{"noteId": "n2", "title": "Kubernetes upgrade plan"}
				]
			}`), nil
		}),
	})

	resp, err := client.Notes.Search(context.Background(), &models.SearchRequest{
		Search:  "kubernetes",
		OrderBy: []string{"dateModified"},
		Limit:   5,
	})
	if err != nil {
		panic(err)
	}

	for _, result := range resp.Results {
		fmt.Printf("%s: %s\n", result.NoteID, result.Title)
	}

	// Output:
	// query: limit=5&orderBy=dateModified&search=kubernetes
	// n1: Kubernetes cheatsheet
	// n2: Kubernetes upgrade plan
}

func ExampleClient_TestConnection() {
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
			return jsonResponse(http.StatusOK, `{"appVersion":"0.92.4","buildDate":"2024-09-07T18:36:34Z"}`), nil
		}),
	})

	result := client.TestConnection(context.Background())

	fmt.Printf("success: %v\n", result.Success)
	fmt.Printf("server: %s\n", result.ServerURL)
	fmt.Printf("token: %s\n", result.TokenPreview)
	fmt.Printf("version: %s\n", result.AppInfo.AppVersion)

	// Output:
	// success: true
	// server: http://trilium.test:8081
	// token: etap****
	// version: 0.92.4
}
