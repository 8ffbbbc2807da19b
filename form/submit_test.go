package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestClientSubmitJSONAccepted(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/help_requests" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %s", ct)
		}
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, HelpRequestForm())
	res := client.Submit(context.Background(), Draft{
		"reporterName": "Somchai",
		"urgencyLevel": "high",
	})

	if res.Outcome != Accepted {
		t.Fatalf("Submit: got %+v", res)
	}
	if received["urgencyLevel"] != "high" {
		t.Errorf("Submit: server received %v", received)
	}
}

func TestClientSubmitRejectedSurfacesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Missing required fields"})
	}))
	defer server.Close()

	res := NewClient(server.URL, DamageReportForm()).Submit(context.Background(), Draft{})
	if res.Outcome != Rejected {
		t.Fatalf("Submit: got outcome %v", res.Outcome)
	}
	if res.Message != "Missing required fields" {
		t.Errorf("Submit: got message %q", res.Message)
	}
}

func TestClientSubmitTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	res := NewClient(server.URL, HelpRequestForm()).Submit(context.Background(), Draft{})
	if res.Outcome != TransportFailure {
		t.Errorf("Submit: got outcome %v", res.Outcome)
	}
	if res.Message == "" {
		t.Error("Submit: expected a connectivity message")
	}
}

func TestClientSubmitMultipartWithImage(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "flood.jpg")
	os.WriteFile(imagePath, []byte("jpegdata"), 0o644)

	var gotStatus, gotFile string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		gotStatus = r.FormValue("floodStatus")
		if _, fh, err := r.FormFile("image"); err == nil {
			gotFile = fh.Filename
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	res := NewClient(server.URL, FloodReportForm()).Submit(context.Background(), Draft{
		"reporterName": "Somchai",
		"phoneNumber":  "0812345678",
		"address":      "12 Riverside Rd",
		"floodStatus":  "danger",
		"image":        imagePath,
	})

	if res.Outcome != Accepted {
		t.Fatalf("Submit: got %+v", res)
	}
	if gotStatus != "danger" {
		t.Errorf("Submit: floodStatus part = %q", gotStatus)
	}
	if gotFile != "flood.jpg" {
		t.Errorf("Submit: image part = %q", gotFile)
	}
}
