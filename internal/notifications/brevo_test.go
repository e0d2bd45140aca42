package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewBrevoClientRequiresKeyAndSender(t *testing.T) {
	if c := NewBrevoClient("", "owner@example.com", "", false); c != nil {
		t.Fatalf("expected nil client without api key")
	}
	if c := NewBrevoClient("key", " ", "", false); c != nil {
		t.Fatalf("expected nil client without sender")
	}
	c := NewBrevoClient("key", "owner@example.com", "", false)
	if c == nil || c.senderName != "owner@example.com" {
		t.Fatalf("expected sender name to default to sender email")
	}
}

func TestSendContactNotification(t *testing.T) {
	var got brevoSendRequest
	var apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<abc@brevo>"}`))
	}))
	defer srv.Close()

	c := NewBrevoClient("secret-key", "site@example.com", "Portfolio", true)
	c.endpoint = srv.URL

	id, err := c.SendContactNotification(context.Background(), "owner@example.com", ContactNotice{
		ID:      "m1",
		Name:    "Jo",
		Email:   "jo@example.com",
		Subject: "Hello",
		Message: "<b>hi</b>",
	})
	if err != nil {
		t.Fatalf("send error: %v", err)
	}
	if id != "<abc@brevo>" {
		t.Fatalf("unexpected message id %q", id)
	}
	if apiKey != "secret-key" {
		t.Fatalf("api key header not sent")
	}
	if len(got.To) != 1 || got.To[0].Email != "owner@example.com" {
		t.Fatalf("unexpected recipients %+v", got.To)
	}
	if got.Headers["X-Sib-Sandbox"] != "drop" {
		t.Fatalf("expected sandbox header")
	}
	if !strings.Contains(got.Subject, "Hello") {
		t.Fatalf("subject missing message subject: %q", got.Subject)
	}
	if strings.Contains(got.HtmlContent, "<b>hi</b>") {
		t.Fatalf("message body must be escaped")
	}
}

func TestSendContactNotificationUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewBrevoClient("k", "site@example.com", "", false)
	c.endpoint = srv.URL

	if _, err := c.SendContactNotification(context.Background(), "owner@example.com", ContactNotice{Name: "Jo", Message: "x"}); err == nil {
		t.Fatalf("expected error on 401")
	}
}

func TestSendOnNilClient(t *testing.T) {
	var c *BrevoClient
	if _, err := c.SendContactNotification(context.Background(), "owner@example.com", ContactNotice{}); err == nil {
		t.Fatalf("expected error from nil client")
	}
}
