package handlers_test

import (
	"net/http"
	"testing"
)

type eventPayload struct {
	ID          string  `json:"id"`
	EventName   string  `json:"event_name"`
	EventDate   string  `json:"event_date"`
	Location    *string `json:"location"`
	OrganizerID string  `json:"organizer_id"`
}

func TestEventRoundTrip(t *testing.T) {
	r := setupServer(t)

	userID, token := registerUser(t, r, "Ada", "ada@example.com", "password123")

	w := doJSON(t, r, http.MethodPost, "/api/events", token,
		`{"event_name":"Park Cleanup","event_date":"2026-09-12","location":"Riverside Park"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var created eventPayload
	decode(t, w, &created)
	if created.ID == "" || created.OrganizerID != userID {
		t.Fatalf("unexpected created event: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/events/"+created.ID, token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("read: expected 200 got %d", w.Code)
	}

	var fetched eventPayload
	decode(t, w, &fetched)
	if fetched.ID != created.ID || fetched.EventName != created.EventName ||
		fetched.EventDate != created.EventDate || fetched.OrganizerID != created.OrganizerID {
		t.Fatalf("round trip mismatch: %+v vs %+v", fetched, created)
	}
	if fetched.Location == nil || *fetched.Location != "Riverside Park" {
		t.Fatalf("location did not round trip: %+v", fetched)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/events/"+created.ID, token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/events/"+created.ID, token, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("read after delete: expected 404 got %d", w.Code)
	}
}

func TestEventPartialUpdate(t *testing.T) {
	r := setupServer(t)

	_, token := registerUser(t, r, "Ada", "ada@example.com", "password123")

	w := doJSON(t, r, http.MethodPost, "/api/events", token,
		`{"event_name":"Swap Meet","event_date":"2026-10-01"}`)
	var created eventPayload
	decode(t, w, &created)

	w = doJSON(t, r, http.MethodPatch, "/api/events/"+created.ID, token,
		`{"location":"Town Hall"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var updated eventPayload
	decode(t, w, &updated)
	if updated.Location == nil || *updated.Location != "Town Hall" {
		t.Fatalf("location not updated: %s", w.Body.String())
	}
	if updated.EventName != "Swap Meet" || updated.EventDate != "2026-10-01" {
		t.Fatalf("untouched fields changed: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPatch, "/api/events/"+created.ID, token, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty patch: expected 400 got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/events/does-not-exist", token,
		`{"event_name":"X"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing id: expected 404 got %d", w.Code)
	}
}

func TestEventValidation(t *testing.T) {
	r := setupServer(t)

	_, token := registerUser(t, r, "Ada", "ada@example.com", "password123")

	w := doJSON(t, r, http.MethodPost, "/api/events", token, `{"event_name":"No Date"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
	}

	var payload struct {
		ErrorCode string `json:"error_code"`
	}
	decode(t, w, &payload)
	if payload.ErrorCode != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %q", payload.ErrorCode)
	}
}
