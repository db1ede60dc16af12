package handlers_test

import (
	"net/http"
	"testing"
)

func TestListForumThreadsEmpty(t *testing.T) {
	r := setupServer(t)

	_, token := registerUser(t, r, "Ada", "ada@example.com", "password123")

	w := doJSON(t, r, http.MethodGet, "/api/community-forum", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("expected empty sequence, got %s", body)
	}
}

func TestForumThreadLifecycle(t *testing.T) {
	r := setupServer(t)

	userID, token := registerUser(t, r, "Ada", "ada@example.com", "password123")

	// Title and content are required.
	w := doJSON(t, r, http.MethodPost, "/api/community-forum", token,
		`{"thread_title":"Composting tips"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing content: expected 400 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/community-forum", token,
		`{"thread_title":"Composting tips","content":"What works for small flats?"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var thread struct {
		ID        string `json:"id"`
		UserID    string `json:"user_id"`
		CreatedAt string `json:"created_at"`
	}
	decode(t, w, &thread)
	if thread.UserID != userID || thread.CreatedAt == "" {
		t.Fatalf("unexpected thread: %s", w.Body.String())
	}

	// Any authenticated user can read another user's thread.
	_, otherToken := registerUser(t, r, "Grace", "grace@example.com", "password123")
	w = doJSON(t, r, http.MethodGet, "/api/community-forum/"+thread.ID, otherToken, "")
	if w.Code != http.StatusOK {
		t.Fatalf("cross-user read: expected 200 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/community-forum/"+thread.ID, token,
		`{"content":"What works for small flats? Update: worm bins."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/community-forum?user_id="+userID, token, "")
	var threads []struct {
		ID string `json:"id"`
	}
	decode(t, w, &threads)
	if len(threads) != 1 || threads[0].ID != thread.ID {
		t.Fatalf("unexpected filtered list: %s", w.Body.String())
	}
}
