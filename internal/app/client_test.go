package app

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/Adda-Baaj/restful/internal/config"
	"github.com/Adda-Baaj/restful/internal/domain"
	"github.com/Adda-Baaj/restful/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string, out io.Writer) *Client {
	t.Helper()
	cfg := &config.Config{BaseURL: baseURL, NoColor: true}
	c, err := NewClient(cfg, nil, WithOutput(out))
	require.NoError(t, err)
	return c
}

func TestRun_GetPrintsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/1", r.URL.Path)
		_, _ = w.Write([]byte(`{"userId":1,"id":1,"title":"t"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := newTestClient(t, srv.URL, &out).Run(context.Background(), Invocation{Method: "get", Endpoint: "/posts/1"})
	require.NoError(t, err)

	assert.Equal(t, "HTTP Status: 200\n{\n    \"userId\": 1,\n    \"id\": 1,\n    \"title\": \"t\"\n}\n", out.String())
}

func TestRun_PostWithData(t *testing.T) {
	var gotBody, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody, gotType = string(b), r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"title": "foo", "id": 101}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := newTestClient(t, srv.URL, &out).Run(context.Background(), Invocation{
		Method:   "post",
		Endpoint: "/posts",
		Data:     `{"title":"foo"}`,
		HasData:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"title": "foo"}`, gotBody)
	assert.Equal(t, "application/json", gotType)
	assert.Contains(t, out.String(), "HTTP Status: 201")
}

func TestRun_MalformedDataSendsNothing(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := newTestClient(t, srv.URL, &out).Run(context.Background(), Invocation{
		Method: "post", Endpoint: "/posts", Data: `{title: foo}`, HasData: true,
	})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindMalformedInputData))
	assert.Zero(t, hits.Load())
	assert.Empty(t, out.String())
}

func TestRun_UnsupportedMethodSendsNothing(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := newTestClient(t, srv.URL, &out).Run(context.Background(), Invocation{Method: "patch", Endpoint: "/posts/1"})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindUnsupportedMethod))
	assert.Zero(t, hits.Load())
}

func TestRun_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.json")
	err := newTestClient(t, srv.URL, &out).Run(context.Background(), Invocation{Method: "get", Endpoint: "/posts/999", Output: path})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindHTTP))
	assert.Equal(t, "HTTP Status: 404\nError:  {}\n", out.String())
	assert.NoFileExists(t, path)
}

func TestRun_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	var out bytes.Buffer
	err := newTestClient(t, url, &out).Run(context.Background(), Invocation{Method: "get", Endpoint: "/posts"})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindTransport))
	assert.Empty(t, out.String())
}

func TestRun_SavesCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"title":"foo"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "post.csv")
	err := newTestClient(t, srv.URL, &out).Run(context.Background(), Invocation{Method: "get", Endpoint: "/posts/1", Output: path})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,title\r\n1,foo\r\n", string(data))
	assert.Contains(t, out.String(), "Response saved to "+path)
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(nil, nil)
	assert.Error(t, err)

	_, err = NewClient(&config.Config{BaseURL: "not a url"}, nil)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindConfig))
}

func TestParseData(t *testing.T) {
	v, err := ParseData(` {"title": "foo", "userId": 1} `)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "userId"}, v.Keys())

	_, err = ParseData("")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindMalformedInputData))
}

type stubResponse struct {
	status int
	body   string
}

func (s stubResponse) Body() []byte    { return []byte(s.body) }
func (s stubResponse) StatusCode() int { return s.status }
func (s stubResponse) Status() string  { return http.StatusText(s.status) }

// stubClient answers every call with a fixed response and records the URL.
type stubClient struct {
	resp stubResponse
	urls []string
}

func (s *stubClient) Get(_ context.Context, url string, _ map[string]string) (httpclient.Response, error) {
	s.urls = append(s.urls, url)
	return s.resp, nil
}

func (s *stubClient) Post(_ context.Context, url string, _ []byte, _ map[string]string) (httpclient.Response, error) {
	s.urls = append(s.urls, url)
	return s.resp, nil
}

func TestRun_UsesInjectedHTTPClient(t *testing.T) {
	stub := &stubClient{resp: stubResponse{status: 200, body: `{"id": 3}`}}
	cfg := &config.Config{BaseURL: "https://api.example", NoColor: true}

	var out bytes.Buffer
	c, err := NewClient(cfg, nil, WithHTTPClient(stub), WithOutput(&out))
	require.NoError(t, err)

	require.NoError(t, c.Run(context.Background(), Invocation{Method: "get", Endpoint: "/posts/3"}))
	assert.Equal(t, []string{"https://api.example/posts/3"}, stub.urls)
	assert.Equal(t, "HTTP Status: 200\n{\n    \"id\": 3\n}\n", out.String())
}
