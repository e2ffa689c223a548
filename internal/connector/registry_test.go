package connector_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/twocngdagz/lush-sub001/internal/connector"
	"github.com/twocngdagz/lush-sub001/internal/connector/lush"
	"github.com/twocngdagz/lush-sub001/internal/connector/mock"
	"github.com/twocngdagz/lush-sub001/internal/connector/realwin"
)

var testClient = &http.Client{Timeout: time.Second}

func TestNewResolvesRegisteredProviders(t *testing.T) {
	for _, id := range []string{lush.ID, realwin.ID, mock.ID} {
		conn, err := connector.New(id, testClient)
		if err != nil {
			t.Errorf("New(%q): unexpected error: %v", id, err)
			continue
		}
		if conn == nil {
			t.Errorf("New(%q) returned nil connector", id)
		}
	}
}

func TestNewUnknownIdentifier(t *testing.T) {
	conn, err := connector.New("no-such-connector", testClient)
	if conn != nil {
		t.Error("expected nil connector for unknown identifier")
	}
	if err == nil {
		t.Fatal("expected error for unknown identifier")
	}
	if kind := connector.KindOf(err); kind != connector.KindConfiguration {
		t.Errorf("error kind = %v, want %v", kind, connector.KindConfiguration)
	}
}

func TestIdentifiersSorted(t *testing.T) {
	ids := connector.Identifiers()
	if len(ids) < 3 {
		t.Fatalf("expected at least 3 registered providers, got %v", ids)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("identifiers not sorted: %v", ids)
		}
	}
	found := map[string]bool{}
	for _, id := range ids {
		found[id] = true
	}
	for _, id := range []string{lush.ID, realwin.ID, mock.ID} {
		if !found[id] {
			t.Errorf("identifier %q not registered", id)
		}
	}
}
