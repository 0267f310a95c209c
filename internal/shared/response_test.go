package shared

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSuccessEnvelope(t *testing.T) {
	resp := Success(map[string]string{"id": "abc"})

	if !resp.IsSuccess {
		t.Fatal("expected success=true")
	}
	if resp.Data["id"] != "abc" {
		t.Fatalf("expected data to round-trip, got %v", resp.Data)
	}
}

func TestErrorEnvelope(t *testing.T) {
	resp := Error[any]("address not serviceable")

	if resp.IsSuccess {
		t.Fatal("expected success=false")
	}
	if resp.Message != "address not serviceable" {
		t.Fatalf("expected message to round-trip, got %q", resp.Message)
	}
	if resp.Data != nil {
		t.Fatalf("expected no data on error, got %v", resp.Data)
	}
}

func TestSuccessJSONShape(t *testing.T) {
	raw, err := json.Marshal(Success("payload"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["success"] != true {
		t.Fatalf("expected success=true, got %v", decoded["success"])
	}
	if decoded["data"] != "payload" {
		t.Fatalf("expected data=payload, got %v", decoded["data"])
	}
}

func TestErrorJSONOmitsData(t *testing.T) {
	raw, err := json.Marshal(Error[any]("boom"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if strings.Contains(string(raw), "\"data\"") {
		t.Fatalf("error envelope must omit data, got %s", raw)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["success"] != false {
		t.Fatalf("expected success=false, got %v", decoded["success"])
	}
	if decoded["message"] != "boom" {
		t.Fatalf("expected message=boom, got %v", decoded["message"])
	}
}

func TestEmptyMessagePermitted(t *testing.T) {
	resp := Error[any]("")
	if resp.IsSuccess || resp.Message != "" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}
