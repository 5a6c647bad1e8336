package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/KindaJayant/termfolio/internal/session"
)

// exitToken leaves chat mode without touching the network.
const exitToken = "exit"

// mockDelay is how long the unreachable-endpoint notice stays up before the
// canned response replaces it.
const defaultMockDelay = 500 * time.Millisecond

// ErrUnavailable marks an endpoint that cannot serve completions at all
// (connection refused, or a 404 from a host that is up but has no chat
// route). These turns get the canned offline response, not a hard error.
var ErrUnavailable = errors.New("chat endpoint unavailable")

// request is the wire format the completion endpoint accepts.
type request struct {
	Message string `json:"message"`
}

// Controller owns the chat sub-mode: one turn at a time, streamed into the
// latest transcript entry. Submitting while a turn is in flight cancels it;
// a superseded turn never writes again (turn sequence numbers act as owner
// tokens, checked before every store mutation).
type Controller struct {
	store    *session.Store
	endpoint string
	persona  string
	notify   func() // wakes the UI after a store mutation; may be nil

	// Client and mockDelay are swappable for tests.
	Client    *http.Client
	mockDelay time.Duration

	mu     sync.Mutex
	turn   int64
	cancel context.CancelFunc
}

// NewController returns a controller posting to endpoint. persona labels the
// AI's transcript entries. notify is invoked after every visible mutation so
// the UI can re-render; nil is allowed.
func NewController(store *session.Store, endpoint, persona string, notify func()) *Controller {
	return &Controller{
		store:     store,
		endpoint:  endpoint,
		persona:   persona,
		notify:    notify,
		Client:    &http.Client{},
		mockDelay: defaultMockDelay,
	}
}

// Submit handles one line of chat input. The input is echoed into the
// transcript first; blank lines stop there. "exit" leaves chat mode. Anything
// else cancels the previous turn (if any) and starts streaming a response
// into a fresh ai entry.
func (c *Controller) Submit(input string) {
	trimmed := strings.TrimSpace(input)

	c.store.Append(input, session.Output{})
	if trimmed == "" {
		c.wake()
		return
	}

	if strings.ToLower(trimmed) == exitToken {
		c.mu.Lock()
		c.stopLocked()
		c.mu.Unlock()
		c.store.SetChatMode(false)
		c.store.Append("System", session.Text("Exiting AI mode."))
		c.wake()
		return
	}

	c.mu.Lock()
	c.stopLocked()
	c.turn++
	token := c.turn
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	c.store.Append(c.persona, session.AI(""))
	c.wake()

	go c.run(ctx, token, trimmed)
}

// Close cancels any in-flight turn. Pending delayed writes are invalidated
// through the turn token.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.turn++
}

func (c *Controller) stopLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) run(ctx context.Context, token int64, message string) {
	err := c.stream(ctx, token, message)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		// Cancelled, stay silent.
	case errors.Is(err, ErrUnavailable):
		c.fallback(token, message)
	default:
		c.write(token, "Error: "+err.Error())
	}
}

// stream posts message and copies the chunked response into the ai entry as
// it arrives. Returns ErrUnavailable when the endpoint is not serving chat.
func (c *Controller) stream(ctx context.Context, token int64, message string) error {
	body, err := json.Marshal(request{Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrUnavailable, resp.Status)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(resp.Status)
	}

	var accumulated strings.Builder
	buf := make([]byte, 512)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			accumulated.Write(buf[:n])
			if !c.write(token, accumulated.String()) {
				return nil // lost ownership, a newer turn took over
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// fallback shows an unreachable-endpoint notice, then replaces it with a
// keyword-matched canned response so the terminal stays usable offline.
func (c *Controller) fallback(token int64, message string) {
	slog.Debug("chat endpoint unreachable, using mock response", "endpoint", c.endpoint)
	c.write(token, "AI endpoint unreachable. Falling back to mock mode...\n\n")
	time.AfterFunc(c.mockDelay, func() {
		c.write(token, getMockResponse(message))
	})
}

// write overwrites the streaming ai entry, provided token still owns the
// turn and the ai entry is still the latest. Returns false when either
// check fails.
func (c *Controller) write(token int64, content string) bool {
	c.mu.Lock()
	owner := token == c.turn
	c.mu.Unlock()
	if !owner {
		return false
	}
	if !c.store.UpdateLastAI(content) {
		return false
	}
	c.wake()
	return true
}

func (c *Controller) wake() {
	if c.notify != nil {
		c.notify()
	}
}

func getMockResponse(input string) string {
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, "skill") || strings.Contains(lower, "stack"):
		return "I specialize in the React ecosystem, TypeScript, and Node.js. My architecture focuses on clean patterns and performance optimization."
	case strings.Contains(lower, "experience") || strings.Contains(lower, "work"):
		return "I've worked on scalable web systems, including a Mini ERP and various AI-driven tools. I love solving complex state management problems."
	case strings.Contains(lower, "contact") || strings.Contains(lower, "email"):
		return "You can reach me via the 'contact' command in the main terminal. I'm always open to interesting opportunities."
	case strings.Contains(lower, "hello") || strings.Contains(lower, "hi"):
		return "Hello there! I'm Jayant's digital assistant. Ask me about his projects, skills, or work methodology."
	case strings.Contains(lower, "joke"):
		return "Why do React developers hate hanging out? Because they are always breaking up... into components."
	default:
		return "That's an interesting question. While I'm a simple mock AI for this portfolio, Jayant would be happy to discuss it in detail. You can ask me about his 'skills' or 'projects'."
	}
}
