package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func TestAPIRootPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	re := &core.RequestEvent{}
	re.Response = rec
	re.Request = httptest.NewRequest(http.MethodGet, "/api/", nil)

	if err := handleAPIRoot()(re); err != nil {
		t.Fatalf("handler err: %v", err)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Wedding Invitation API" {
		t.Errorf("message = %q", body["message"])
	}
	if body["version"] != "2.0" {
		t.Errorf("version = %q", body["version"])
	}
}
