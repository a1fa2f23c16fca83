package models

import (
	"encoding/json"
	"testing"
)

func TestOptional_AbsentField(t *testing.T) {
	var payload struct {
		Title Optional[string] `json:"title"`
	}
	if err := json.Unmarshal([]byte(`{}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if payload.Title.Set {
		t.Error("absent field must not be marked Set")
	}
}

func TestOptional_ExplicitNull(t *testing.T) {
	var payload struct {
		Title Optional[string] `json:"title"`
	}
	if err := json.Unmarshal([]byte(`{"title": null}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !payload.Title.Set {
		t.Error("explicit null must be marked Set")
	}
	if payload.Title.Valid {
		t.Error("explicit null must not be Valid")
	}
}

func TestOptional_Value(t *testing.T) {
	var payload struct {
		Title Optional[string] `json:"title"`
	}
	if err := json.Unmarshal([]byte(`{"title": "done"}`), &payload); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !payload.Title.Set || !payload.Title.Valid {
		t.Error("value must be Set and Valid")
	}
	if payload.Title.Value != "done" {
		t.Errorf("expected done, got %q", payload.Title.Value)
	}
}

func TestOptional_MarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(NewOptional("todo"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"todo"` {
		t.Errorf("expected \"todo\", got %s", data)
	}

	data, err = json.Marshal(Null[string]())
	if err != nil {
		t.Fatalf("marshal null failed: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("expected null, got %s", data)
	}
}
