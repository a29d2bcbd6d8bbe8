package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func candidateReply(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`
}

func newTestSession(t *testing.T, handler http.HandlerFunc) *Session {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient("test-key", "")
	client.SetBaseURL(srv.URL)
	return NewSession(client)
}

func TestSend_AppendsBothTurns(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateReply("Dune is great.")))
	})

	reply, err := s.Send(context.Background(), "Is Dune good?", "en")
	if err != nil {
		t.Fatal(err)
	}
	if reply != "Dune is great." {
		t.Errorf("reply = %q", reply)
	}

	turns := s.Turns()
	if len(turns) != 2 {
		t.Fatalf("turns = %d, want 2", len(turns))
	}
	if turns[0].Role != RoleUser || turns[1].Role != RoleModel {
		t.Errorf("roles = %v/%v, want user/model", turns[0].Role, turns[1].Role)
	}
	if turns[1].Text != "Dune is great." {
		t.Errorf("model turn = %q", turns[1].Text)
	}
}

func TestSend_WrapsPromptWithPersona(t *testing.T) {
	var got generateRequest
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(candidateReply("ok")))
	})

	if _, err := s.Send(context.Background(), "best thriller?", "en"); err != nil {
		t.Fatal(err)
	}

	if len(got.Contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(got.Contents))
	}
	text := got.Contents[0].Parts[0].Text
	if !strings.Contains(text, "Your name is CineLux AI") {
		t.Error("persona missing from wrapped prompt")
	}
	if !strings.Contains(text, "Please answer in English") {
		t.Error("english instruction missing")
	}
	if !strings.HasSuffix(text, "best thriller?") {
		t.Errorf("prompt should end the instruction, got %q", text)
	}
}

func TestSend_BurmeseLocale(t *testing.T) {
	var got generateRequest
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(candidateReply("ok")))
	})

	s.Send(context.Background(), "hi", "my")
	if !strings.Contains(got.Contents[0].Parts[0].Text, "Please answer in Burmese (Myanmar)") {
		t.Error("burmese instruction missing")
	}
}

func TestSend_HistoryGrows(t *testing.T) {
	var got generateRequest
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(candidateReply("ok")))
	})

	s.Send(context.Background(), "one", "en")
	s.Send(context.Background(), "two", "en")

	// Second request carries the whole conversation: user, model, user.
	if len(got.Contents) != 3 {
		t.Fatalf("second request contents = %d, want 3", len(got.Contents))
	}
	if got.Contents[1].Role != "model" {
		t.Errorf("middle role = %q, want model", got.Contents[1].Role)
	}
	if len(s.Turns()) != 4 {
		t.Errorf("session turns = %d, want 4", len(s.Turns()))
	}
}

func TestSend_NoCandidatesFallsBack(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	reply, err := s.Send(context.Background(), "hello", "en")
	if err != nil {
		t.Fatal(err)
	}
	if reply != EmptyReply {
		t.Errorf("reply = %q, want the empty-reply fallback", reply)
	}
	// The fallback is recorded as the model turn
	turns := s.Turns()
	if turns[len(turns)-1].Text != EmptyReply {
		t.Error("fallback should be appended to history")
	}
}

func TestSend_APIError(t *testing.T) {
	s := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid key"}}`))
	})

	_, err := s.Send(context.Background(), "hello", "en")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid key") {
		t.Errorf("err = %v, want the api message surfaced", err)
	}
	// The user turn stays, no model turn is added
	turns := s.Turns()
	if len(turns) != 1 || turns[0].Role != RoleUser {
		t.Errorf("turns after error = %v, want the single user turn", turns)
	}
}

func TestSend_MissingKey(t *testing.T) {
	s := NewSession(NewClient("", ""))
	if _, err := s.Send(context.Background(), "hello", "en"); err == nil {
		t.Error("missing api key should error without a network call")
	}
}

func TestNewClient_DefaultModel(t *testing.T) {
	c := NewClient("k", "")
	if c.model != "gemini-2.5-flash" {
		t.Errorf("model = %q, want the default", c.model)
	}
	if NewClient("k", "gemini-2.0-pro").model != "gemini-2.0-pro" {
		t.Error("explicit model should be kept")
	}
}
