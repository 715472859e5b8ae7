package queue

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync"

	herrors "github.com/Aureliona1/Helpers/pkg/common/errors"
)

// Response wraps a completed HTTP response. Metadata fields are captured at
// construction and stay valid regardless of body consumption state. Body
// reads on a streaming response re-enter the owning queue at PriorityBody;
// a buffered response answers immediately.
type Response struct {
	// StatusCode is the numeric HTTP status, e.g. 200.
	StatusCode int

	// Status is the full status line, e.g. "200 OK".
	Status string

	// Header holds the response headers.
	Header http.Header

	// Ok reports whether the status code is in the 2xx range.
	Ok bool

	// Redirected reports whether the final URL differs from the requested one.
	Redirected bool

	// URL is the final URL after any redirects.
	URL string

	queue *Queue

	mu       sync.Mutex
	body     io.ReadCloser // nil once consumed or buffered
	buffered []byte
	isBuf    bool
}

// Do admits the request at PriorityDefault, performs it through the queue's
// client, and wraps the result. The admission slot is released on every exit
// path: after the body is fully buffered in the default configuration, or as
// soon as headers arrive when StreamBodies is set. Network failures propagate
// unchanged.
func (q *Queue) Do(ctx context.Context, req *http.Request) (*Response, error) {
	release, err := q.Admit(ctx, PriorityDefault)
	if err != nil {
		return nil, err
	}
	defer release()

	requested := req.URL.String()
	resp, err := q.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	r := newResponse(q, resp, requested)
	if q.stream {
		// The deferred release frees the slot now; body reads will pay
		// their own admission.
		return r, nil
	}

	if err := r.buffer(); err != nil {
		return nil, err
	}
	return r, nil
}

// Get is a convenience wrapper performing a GET request for url.
func (q *Queue) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return q.Do(ctx, req)
}

func newResponse(q *Queue, resp *http.Response, requested string) *Response {
	final := requested
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL.String()
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Ok:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		Redirected: final != requested,
		URL:        final,
		queue:      q,
		body:       resp.Body,
	}
}

// Close releases the underlying body stream if it was never consumed, so a
// streaming response that is abandoned before a body read does not pin its
// connection. Buffered and already-consumed responses need no Close; calling
// it anyway is a no-op.
func (r *Response) Close() error {
	r.mu.Lock()
	body := r.body
	r.body = nil
	r.mu.Unlock()

	if body == nil {
		return nil
	}
	return body.Close()
}

// Buffered reports whether the body was eagerly read at fetch time.
func (r *Response) Buffered() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isBuf
}

// Bytes returns the response body. A buffered body is returned without any
// admission wait; a streaming body is read under a PriorityBody admission
// and can be consumed once. The slot is released whether or not the read
// succeeds.
func (r *Response) Bytes(ctx context.Context) ([]byte, error) {
	r.mu.Lock()
	if r.isBuf {
		b := r.buffered
		r.mu.Unlock()
		return b, nil
	}
	if r.body == nil {
		// Already consumed or closed; fail without paying an admission.
		r.mu.Unlock()
		return nil, herrors.ErrBodyConsumed
	}
	r.mu.Unlock()

	release, err := r.queue.Admit(ctx, PriorityBody)
	if err != nil {
		return nil, err
	}
	defer release()

	return r.consume()
}

// Text returns the response body as a string.
func (r *Response) Text(ctx context.Context) (string, error) {
	b, err := r.Bytes(ctx)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// JSON decodes the response body into v. Decode failures propagate to the
// caller; the admission slot is released regardless.
func (r *Response) JSON(ctx context.Context, v interface{}) error {
	b, err := r.Bytes(ctx)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// FormValues parses the response body as URL-encoded form data.
func (r *Response) FormValues(ctx context.Context) (url.Values, error) {
	b, err := r.Bytes(ctx)
	if err != nil {
		return nil, err
	}
	return url.ParseQuery(string(b))
}

// buffer eagerly reads the whole body. Called while the fetch admission
// slot is still held.
func (r *Response) buffer() error {
	b, err := r.consume()
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.buffered = b
	r.isBuf = true
	r.mu.Unlock()
	return nil
}

// consume reads and closes the underlying body stream exactly once.
func (r *Response) consume() ([]byte, error) {
	r.mu.Lock()
	body := r.body
	r.body = nil
	r.mu.Unlock()

	if body == nil {
		return nil, herrors.ErrBodyConsumed
	}
	defer body.Close()

	return io.ReadAll(body)
}
