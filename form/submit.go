package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Outcome classifies one submission attempt. The zero value is deliberately
// not a valid outcome, so a Result from an error path never reads as accepted.
type Outcome int

const (
	outcomeUnknown Outcome = iota
	// Accepted means the server stored the record; the local draft can go.
	Accepted
	// Rejected means the server answered with an error; the draft is kept.
	Rejected
	// TransportFailure means no response was obtained; the draft is kept.
	TransportFailure
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case TransportFailure:
		return "transport failure"
	}
	return "unknown"
}

type Result struct {
	Outcome Outcome
	Message string
}

// Submitter sends one accumulated record to the server. No retries:
// delivery is at most once per confirm.
type Submitter interface {
	Submit(ctx context.Context, d Draft) Result
}

// Client submits a form's accumulated draft to its resource endpoint,
// as JSON or as multipart with an optional image attachment.
type Client struct {
	baseURL string
	def     Definition
	http    *http.Client
}

func NewClient(baseURL string, def Definition) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		def:     def,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Submit(ctx context.Context, d Draft) Result {
	var body io.Reader
	var contentType string
	var err error

	if c.def.Multipart {
		body, contentType, err = multipartBody(d, c.def.ImageField)
	} else {
		var b []byte
		b, err = json.Marshal(d)
		body, contentType = bytes.NewReader(b), "application/json"
	}
	if err != nil {
		return Result{Outcome: TransportFailure, Message: fmt.Sprintf("could not encode submission: %v", err)}
	}

	url := c.baseURL + "/api/v3/" + c.def.Resource
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return Result{Outcome: TransportFailure, Message: "could not reach the server"}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Outcome: TransportFailure, Message: "could not reach the server"}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Result{Outcome: Accepted}
	}
	return Result{Outcome: Rejected, Message: serverError(resp.Body)}
}

func multipartBody(d Draft, imageField string) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for name, value := range d {
		if name == imageField {
			continue
		}
		if err := w.WriteField(name, fmt.Sprint(value)); err != nil {
			return nil, "", err
		}
	}

	// The image field carries a local file path until submission.
	if path, ok := d[imageField].(string); ok && path != "" {
		src, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("opening image %s: %w", path, err)
		}
		defer src.Close()
		part, err := w.CreateFormFile(imageField, filepath.Base(path))
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, src); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// serverError pulls the error text out of a rejection body, if any.
func serverError(body io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(b) == 0 {
		return "the server rejected the submission"
	}
	var parsed struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(b, &parsed) == nil && parsed.Error != "" {
		return parsed.Error
	}
	return strings.TrimSpace(string(b))
}
