package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/KindaJayant/termfolio/internal/config"
	"github.com/KindaJayant/termfolio/internal/resume"
)

const mistralBaseURL = "https://api.mistral.ai/v1"

// Server hosts the completion proxy the terminal's chat mode talks to. It
// accepts the terminal's bare {message} POST, forwards it to the Mistral
// chat-completions API with the portfolio system prompt, and relays the
// streamed deltas back as plain chunked text.
type Server struct {
	config  *config.Config
	mux     *http.ServeMux
	server  *http.Server
	baseURL string // upstream API base, overridden in tests
}

// New creates a proxy server.
func New(cfg *config.Config) *Server {
	s := &Server{
		config:  cfg,
		mux:     http.NewServeMux(),
		baseURL: mistralBaseURL,
	}
	s.registerRoutes()
	return s
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := s.config.ServerAddr()
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.corsMiddleware(s.mux),
	}

	fmt.Printf("termfolio chat proxy listening on http://%s\n", addr)
	slog.Info("server starting", "addr", addr, "model", s.model())
	return s.server.ListenAndServe()
}

// Stop gracefully stops the server.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.corsMiddleware(s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST /api/chat", s.handleChat)
	s.mux.HandleFunc("/api/chat", s.handleChatMethodNotAllowed)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok", "model": s.model()})
}

func (s *Server) handleChatMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	apiKey := s.config.MistralAPIKey
	if apiKey == "" {
		slog.Error("missing Mistral API key")
		writeError(w, http.StatusInternalServerError, "Server configuration error")
		return
	}

	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.BaseURL = s.baseURL
	client := openai.NewClientWithConfig(clientCfg)

	stream, err := client.CreateChatCompletionStream(r.Context(), openai.ChatCompletionRequest{
		Model: s.model(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: req.Message},
		},
		Stream: true,
	})
	if err != nil {
		slog.Error("upstream chat request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "AI system temporarily overloaded.")
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			// Headers already sent; nothing left but to cut the stream.
			slog.Warn("upstream stream ended early", "error", err)
			return
		}
		if len(resp.Choices) == 0 {
			continue
		}
		if content := resp.Choices[0].Delta.Content; content != "" {
			fmt.Fprint(w, content)
			flusher.Flush()
		}
	}
}

func (s *Server) model() string {
	if s.config.Server.Model != "" {
		return s.config.Server.Model
	}
	return "mistral-tiny"
}

// systemPrompt builds the assistant persona from the static resume data so
// the proxy and the informational commands never drift apart.
func systemPrompt() string {
	var projects strings.Builder
	for _, p := range resume.Projects {
		fmt.Fprintf(&projects, "%d. %s (id: %d, slug: %s)\n", p.ID, p.Title, p.ID, p.Slug)
		fmt.Fprintf(&projects, "   - Tech: %s\n", strings.Join(p.Tech, ", "))
		fmt.Fprintf(&projects, "   - Desc: %s\n", p.Description)
	}

	return fmt.Sprintf(`You are "Jayant AI", the intelligent portfolio assistant of %s, a frontend and AI-focused engineer.

Your role is to answer questions about Jayant's skills, projects, experience, and technical thinking.

STRICT TONE & STYLE GUIDELINES:
- NO MARKDOWN FORMATTING: Do NOT use bold, italics, or code blocks.
- Use PLAIN TEXT only. The output is rendered in a retro terminal that does not support markdown.
- Be consistent, professional, yet friendly and witty.
- Keep answers concise and punchy.

PROJECT KNOWLEDGE BASE:
%s
When discussing projects, refer to them by name.
If you recommend a project, tell the user to type 'open <id>' (e.g., "Check out the AI Voice Interview Platform by typing 'open 1'").

If the user asks about specific skills, refer to these projects as proof of work.
If a question is unrelated to Jayant or his portfolio, politely steer the conversation back to relevant topics.

CRITICAL INSTRUCTION:
Your name is "Jayant AI".
Only introduce yourself if the user asks "Who are you?" or "What is this?".
Otherwise, just answer the question directly.
Do NOT start every message with your name.`, resume.Data.Basics.Name, projects.String())
}

// Helper functions

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
