package handlers

import (
	"net/http"
	"testing"

	"github.com/Jammz-kekw/urob.to/internal/models"
	"github.com/Jammz-kekw/urob.to/internal/services"
)

func TestCreateTag(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/tags", services.TagCreateInput{
		Name:  "urgent",
		Color: "#ff0000",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	tag := decodeBody[models.Tag](t, w)
	if tag.ID == 0 || tag.Name != "urgent" || tag.Color != "#ff0000" {
		t.Errorf("unexpected tag payload: %+v", tag)
	}
}

func TestCreateTag_DuplicateName(t *testing.T) {
	r, _ := setupTestRouter(t)

	if w := doRequest(t, r, http.MethodPost, "/tags", services.TagCreateInput{
		Name: "urgent", Color: "#ff0000",
	}); w.Code != http.StatusCreated {
		t.Fatalf("seed tag failed: %d", w.Code)
	}

	w := doRequest(t, r, http.MethodPost, "/tags", services.TagCreateInput{
		Name: "urgent", Color: "#00ff00",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate tag name, got %d", w.Code)
	}
}

func TestCreateTag_SharedColorAllowed(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, name := range []string{"urgent", "blocked"} {
		w := doRequest(t, r, http.MethodPost, "/tags", services.TagCreateInput{
			Name: name, Color: "#ff0000",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("tag %s with shared color rejected: %d", name, w.Code)
		}
	}
}

func TestGetTags_List(t *testing.T) {
	r, _ := setupTestRouter(t)

	if w := doRequest(t, r, http.MethodPost, "/tags", services.TagCreateInput{
		Name: "urgent", Color: "#ff0000",
	}); w.Code != http.StatusCreated {
		t.Fatalf("seed tag failed: %d", w.Code)
	}

	w := doRequest(t, r, http.MethodGet, "/tags", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	tags := decodeBody[[]models.Tag](t, w)
	if len(tags) != 1 {
		t.Errorf("expected 1 tag, got %d", len(tags))
	}
}
