package emailjs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tftrival/site/internal/services/site/contact"
)

func testEmail() contact.Email {
	return contact.Email{
		ServiceID:  "service_1",
		TemplateID: "template_1",
		PublicKey:  "public_1",
		Params: contact.TemplateParams{
			FromName:  "Ana",
			FromEmail: "ana@example.com",
			Message:   "hello",
			ToEmail:   contact.DefaultRecipient,
			Subject:   contact.DefaultSubject,
		},
	}
}

func TestSendPostsJSONPayload(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != SendPath {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL + "/", HTTPClient: srv.Client()})
	if err := client.Send(context.Background(), testEmail()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if got["service_id"] != "service_1" || got["template_id"] != "template_1" || got["user_id"] != "public_1" {
		t.Fatalf("payload = %v", got)
	}
	if _, ok := got["accessToken"]; ok {
		t.Fatal("access token should be omitted when empty")
	}
	params, _ := got["template_params"].(map[string]any)
	want := map[string]string{
		"from_name":  "Ana",
		"from_email": "ana@example.com",
		"message":    "hello",
		"to_email":   contact.DefaultRecipient,
		"subject":    contact.DefaultSubject,
	}
	for key, value := range want {
		if params[key] != value {
			t.Fatalf("template_params[%s] = %v, want %q", key, params[key], value)
		}
	}
}

func TestSendIncludesAccessToken(t *testing.T) {
	t.Parallel()

	var token string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			AccessToken string `json:"accessToken"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		token = body.AccessToken
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, AccessToken: "private", HTTPClient: srv.Client()})
	if err := client.Send(context.Background(), testEmail()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if token != "private" {
		t.Fatalf("accessToken = %q", token)
	}
}

func TestSendReturnsProviderRejection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "The public key is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()}).Send(context.Background(), testEmail())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 400") || !strings.Contains(err.Error(), "public key is invalid") {
		t.Fatalf("error = %v", err)
	}
}

func TestSendHonorsTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	err := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond, HTTPClient: srv.Client()}).Send(context.Background(), testEmail())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want deadline exceeded", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	t.Parallel()

	client := NewClient(Config{})
	if client.cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("BaseURL = %q", client.cfg.BaseURL)
	}
	if client.cfg.HTTPClient != http.DefaultClient {
		t.Fatal("expected default http client")
	}
}
