// Package closingclient wraps an HttpClient so that closing it cancels the
// exchanges still in flight and refuses new ones.
package closingclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
)

// ErrClosed is returned by Do after Close.
var ErrClosed = errors.New("baas client is closed")

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
	CloseIdleConnections()
}

// ClosingClient tracks every exchange from Do until its response body is
// closed.
type ClosingClient struct {
	impl HttpClient

	mu      sync.Mutex
	closing bool
	cancels map[uint64]context.CancelFunc
	nextKey uint64

	wg sync.WaitGroup
}

func New(impl HttpClient) *ClosingClient {
	return &ClosingClient{
		impl:    impl,
		cancels: make(map[uint64]context.CancelFunc),
	}
}

func (c *ClosingClient) Do(req *http.Request) (*http.Response, error) {
	ctx, cancel := context.WithCancel(req.Context())

	c.mu.Lock()
	if c.closing {
		c.mu.Unlock()
		cancel()
		return nil, ErrClosed
	}
	// Add and Wait must not race; Add happens under the mutex guarding
	// closing.
	c.wg.Add(1)
	key := c.nextKey
	c.nextKey++
	c.cancels[key] = cancel
	c.mu.Unlock()

	done := func() {
		c.mu.Lock()
		delete(c.cancels, key)
		c.mu.Unlock()
		cancel()
		c.wg.Done()
	}

	res, err := c.impl.Do(req.Clone(ctx))
	if err != nil {
		done()
		return nil, err
	}
	res.Body = &trackedBody{ReadCloser: res.Body, done: done}
	return res, nil
}

type trackedBody struct {
	io.ReadCloser
	once sync.Once
	done func()
}

func (b *trackedBody) Close() error {
	err := b.ReadCloser.Close()
	b.once.Do(b.done)
	return err
}

func (c *ClosingClient) CloseIdleConnections() {
	c.impl.CloseIdleConnections()
}

// InFlight returns the number of exchanges whose bodies are not closed yet.
func (c *ClosingClient) InFlight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cancels)
}

// Close cancels the exchanges in flight and waits until their response
// bodies are closed. Calling it again is a no-op apart from the wait.
func (c *ClosingClient) Close() error {
	c.mu.Lock()
	if !c.closing {
		c.closing = true
		for _, cancel := range c.cancels {
			cancel()
		}
	}
	c.mu.Unlock()

	c.impl.CloseIdleConnections()

	// No Add can happen after closing was set above.
	c.wg.Wait()

	if closer, ok := c.impl.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}

	return nil
}
