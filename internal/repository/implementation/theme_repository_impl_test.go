package implementation

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"ai-lifecoach-be/internal/entity"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTransport answers every request with a canned body and keeps the
// decoded request payloads, so tests can assert the exact wire shape the
// remote store would receive.
type stubTransport struct {
	body  string
	calls []capturedCall
}

type capturedCall struct {
	method  string
	path    string
	payload map[string]interface{}
}

func (t *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	call := capturedCall{method: req.Method, path: req.URL.Path}
	if req.Body != nil {
		raw, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &call.payload); err != nil {
				return nil, err
			}
		}
	}
	t.calls = append(t.calls, call)

	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(t.body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}, nil
}

func newStubClient(body string) (*notionapi.Client, *stubTransport) {
	rt := &stubTransport{body: body}
	client := notionapi.NewClient("secret-test", notionapi.WithHTTPClient(&http.Client{Transport: rt}))
	return client, rt
}

const emptyQueryBody = `{"object":"list","results":[],"has_more":false}`

const singleThemeQueryBody = `{
	"object": "list",
	"results": [{
		"object": "page",
		"id": "theme-page-1",
		"properties": {
			"Name": {
				"id": "title",
				"type": "title",
				"title": [{"type": "text", "text": {"content": "Work"}, "plain_text": "Work"}]
			}
		}
	}],
	"has_more": false
}`

func TestThemeRepositoryFindByNameQueryShape(t *testing.T) {
	client, rt := newStubClient(singleThemeQueryBody)
	repo := NewThemeRepository(client, "db-themes")

	theme, err := repo.FindByName(context.Background(), "Work")

	require.NoError(t, err)
	require.NotNil(t, theme)
	assert.Equal(t, "theme-page-1", theme.Id)
	assert.Equal(t, "Work", theme.Name)

	require.Len(t, rt.calls, 1)
	call := rt.calls[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/v1/databases/db-themes/query", call.path)
	assert.Equal(t, float64(1), call.payload["page_size"])

	// The Name property is a title, but the remote filter keys text equality
	// on "rich_text".
	filter, ok := call.payload["filter"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Name", filter["property"])
	condition, ok := filter["rich_text"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Work", condition["equals"])
}

func TestThemeRepositoryFindByNameMiss(t *testing.T) {
	client, _ := newStubClient(emptyQueryBody)
	repo := NewThemeRepository(client, "db-themes")

	theme, err := repo.FindByName(context.Background(), "Gardening")

	require.NoError(t, err)
	assert.Nil(t, theme)
}

func TestThemeRepositoryFindAllQueryShape(t *testing.T) {
	client, rt := newStubClient(emptyQueryBody)
	repo := NewThemeRepository(client, "db-themes")

	_, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, rt.calls, 1)
	call := rt.calls[0]
	assert.Equal(t, float64(100), call.payload["page_size"])
	assert.NotContains(t, call.payload, "filter")
}

func TestThemeRepositoryCreateShape(t *testing.T) {
	client, rt := newStubClient(`{"object":"page","id":"theme-page-9"}`)
	repo := NewThemeRepository(client, "db-themes")

	theme := &entity.Theme{Name: "Gardening"}
	err := repo.Create(context.Background(), theme)

	require.NoError(t, err)
	assert.Equal(t, "theme-page-9", theme.Id)

	require.Len(t, rt.calls, 1)
	call := rt.calls[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/v1/pages", call.path)

	parent, ok := call.payload["parent"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "db-themes", parent["database_id"])

	props, ok := call.payload["properties"].(map[string]interface{})
	require.True(t, ok)
	name, ok := props["Name"].(map[string]interface{})
	require.True(t, ok)
	title, ok := name["title"].([]interface{})
	require.True(t, ok)
	require.Len(t, title, 1)
	text := title[0].(map[string]interface{})["text"].(map[string]interface{})
	assert.Equal(t, "Gardening", text["content"])
}
