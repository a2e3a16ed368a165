package selfcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(t *testing.T, status int, body string) string {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		tag      string
		latest   string
		outdated bool
	}{
		{name: "newer release", current: "0.1.4", tag: "v0.2.0", latest: "0.2.0", outdated: true},
		{name: "same release", current: "0.1.4", tag: "v0.1.4", latest: "0.1.4"},
		{name: "older release", current: "0.1.4", tag: "0.1.3", latest: "0.1.3"},
		{name: "patch bump", current: "0.1.4", tag: "v0.1.10", latest: "0.1.10", outdated: true},
		{name: "prerelease is older", current: "0.2.0", tag: "v0.2.0-rc.1", latest: "0.2.0-rc.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := feed(t, http.StatusOK, `{"tag_name":"`+tt.tag+`","name":"release"}`)
			res, err := NewChecker(url, tt.current, nil).Check(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.current, res.Current)
			assert.Equal(t, tt.latest, res.Latest)
			assert.Equal(t, tt.outdated, res.Outdated)
		})
	}
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name    string
		current string
		url     string
	}{
		{name: "non 200", current: "0.1.4", url: feed(t, http.StatusNotFound, `{"message":"Not Found"}`)},
		{name: "bad json", current: "0.1.4", url: feed(t, http.StatusOK, `{`)},
		{name: "bad tag", current: "0.1.4", url: feed(t, http.StatusOK, `{"tag_name":"latest"}`)},
		{name: "bad current", current: "dev", url: feed(t, http.StatusOK, `{"tag_name":"v1.0.0"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChecker(tt.url, tt.current, nil).Check(context.Background())
			assert.Error(t, err)
		})
	}
}
