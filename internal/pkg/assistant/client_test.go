package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewHTTPClient(Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	})
	require.NoError(t, err)
	return client
}

func textResponse(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	err := json.NewEncoder(w).Encode(map[string]interface{}{
		"content": []map[string]string{{"type": "text", "text": text}},
	})
	require.NoError(t, err)
}

func TestGenerateInspectionChecklist_JSONArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, apiVersion, r.Header.Get("anthropic-version"))

		var req messagesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, "54.5")

		textResponse(t, w, `["sprawdź okna","sprawdź instalację"]`)
	})

	items, err := client.GenerateInspectionChecklist(context.Background(), PropertyData{Area: 54.5, Year: 1978, Floor: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"sprawdź okna", "sprawdź instalację"}, items)
}

func TestGenerateContractorQuestions_KeyedObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		textResponse(t, w, `{"questions":["ile lat doświadczenia?","jaka gwarancja?"]}`)
	})

	questions, err := client.GenerateContractorQuestions(context.Background(), "hydraulika", map[string]interface{}{"area": 54.5})
	require.NoError(t, err)
	assert.Equal(t, []string{"ile lat doświadczenia?", "jaka gwarancja?"}, questions)
}

func TestGenerateChecklist_NonJSONFallsBackToLines(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		textResponse(t, w, "pierwsza pozycja\n\n  druga pozycja  \n")
	})

	items, err := client.GenerateInspectionChecklist(context.Background(), PropertyData{Area: 40, Year: 2001, Floor: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"pierwsza pozycja", "druga pozycja"}, items)
}

func TestComplete_UpstreamErrorSurfaces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"overloaded"}`))
	})

	_, err := client.GenerateInspectionChecklist(context.Background(), PropertyData{Area: 40, Year: 2001, Floor: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestNewHTTPClient_RequiresAPIKey(t *testing.T) {
	_, err := NewHTTPClient(Config{})
	assert.Error(t, err)
}

func TestParseItems(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"bare array", `["a","b"]`, []string{"a", "b"}},
		{"keyed object", `{"items":["a"]}`, []string{"a"}},
		{"second key", `{"checklist":["c"]}`, []string{"c"}},
		{"unknown key falls back", `{"other":["x"]}`, []string{`{"other":["x"]}`}},
		{"plain lines", "a\nb", []string{"a", "b"}},
		{"blank", "   \n  ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseItems(tt.text, "items", "checklist"))
		})
	}
}
