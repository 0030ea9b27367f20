// Package queue dispatches post-processing jobs to an external worker.
// Enqueue is fire-and-forget from the upload path: by the time a job is
// dispatched the file and its metadata are already durably committed, so a
// dispatch failure is a degraded condition, never a client-facing error.
package queue

import "context"

// Job describes work for the thumbnail worker. The worker consumes the raw
// message; it shares no code with this service.
type Job struct {
	AccountID  string `json:"accountId"`
	FileID     string `json:"fileId"`
	ContentRef string `json:"contentRef"`
}

// Dispatcher enqueues jobs. Enqueue fails only on transport error.
type Dispatcher interface {
	Enqueue(ctx context.Context, job Job) error
}
