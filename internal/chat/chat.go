// Package chat relays user questions, with the running conversation, to
// the Gemini generateContent endpoint.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one exchange in the conversation, kept for the session lifetime
// only — never persisted.
type Turn struct {
	Role Role
	Text string
}

// EmptyReply is returned as the model turn when the endpoint answers with
// no candidates.
const EmptyReply = "Sorry, I couldn't get a response. Please try again."

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.5-flash"
)

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL overrides the endpoint, for tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

func (c *Client) generate(ctx context.Context, turns []Turn) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not set")
	}

	reqBody := generateRequest{}
	for _, t := range turns {
		reqBody.Contents = append(reqBody.Contents, content{
			Role:  string(t.Role),
			Parts: []part{{Text: t.Text}},
		})
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post to gemini: %w", err)
	}
	defer resp.Body.Close()

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("gemini api error: %s", result.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini request failed with status %d", resp.StatusCode)
	}

	if len(result.Candidates) > 0 && len(result.Candidates[0].Content.Parts) > 0 {
		return result.Candidates[0].Content.Parts[0].Text, nil
	}
	return "", nil
}

// Session is an append-only conversation bound to one client.
type Session struct {
	client *Client
	turns  []Turn
}

func NewSession(client *Client) *Session {
	return &Session{client: client}
}

// Turns returns a copy of the conversation so far.
func (s *Session) Turns() []Turn {
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// instruction wraps the user's prompt with the fixed assistant persona and
// the answer language derived from the locale.
func instruction(prompt, locale string) string {
	base := "You are a movie expert assistant. Your name is CineLux AI. Keep your answers concise and focused on movies. "
	if locale == "my" {
		return base + "Please answer in Burmese (Myanmar). The user's question is: " + prompt
	}
	return base + "Please answer in English. The user's question is: " + prompt
}

// Send appends the user's turn, calls the endpoint with the full history,
// and appends and returns the model's reply. An empty result becomes
// EmptyReply. On error the user turn stays recorded and no model turn is
// added; the caller renders its fallback message.
func (s *Session) Send(ctx context.Context, prompt, locale string) (string, error) {
	s.turns = append(s.turns, Turn{Role: RoleUser, Text: instruction(prompt, locale)})

	reply, err := s.client.generate(ctx, s.turns)
	if err != nil {
		return "", err
	}
	if reply == "" {
		reply = EmptyReply
	}
	s.turns = append(s.turns, Turn{Role: RoleModel, Text: reply})
	return reply, nil
}
