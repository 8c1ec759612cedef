package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hsbacot/breeds/client"
	"github.com/hsbacot/breeds/gallery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDogAPI serves n images for every breed except "unicorn"
func fakeDogAPI(t *testing.T, n int) Env {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/breeds/list/all" {
			fmt.Fprint(w, `{"status":"success","message":{"pug":[],"hound":["afghan"]}}`)
			return
		}

		breed := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/breed/"), "/images")
		if breed == "unicorn" {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"status":"error","message":"Breed not found"}`)
			return
		}

		images := make([]string, n)
		for i := range images {
			images[i] = fmt.Sprintf("https://images.dog.ceo/breeds/%s/%d.jpg", breed, i)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"status": "success", "message": images})
	}))
	t.Cleanup(srv.Close)

	c := client.NewClient(client.WithBaseURL(srv.URL))
	return Env{
		Client:   c,
		Searcher: gallery.NewSearcher(c),
		Logger:   log.New(io.Discard),
		Out:      &bytes.Buffer{},
	}
}

func decodeOutput(t *testing.T, env Env) searchOutput {
	t.Helper()
	var out searchOutput
	require.NoError(t, json.Unmarshal(env.Out.(*bytes.Buffer).Bytes(), &out))
	return out
}

func TestFetchCommandJSON(t *testing.T) {
	env := fakeDogAPI(t, 12)

	code := RunFetchCommand(context.Background(), env, []string{"--json", "poodle", "AND", "corgi"})
	require.Equal(t, 0, code)

	out := decodeOutput(t, env)
	assert.Len(t, out.Images, 20)
	require.Len(t, out.Groups, 2)
	assert.Equal(t, "poodle", out.Groups[0].Name)
	assert.Equal(t, "corgi", out.Groups[1].Name)
	assert.Equal(t, out.Groups[0].Images, out.Images[:10])
}

func TestFetchCommandOnly(t *testing.T) {
	env := fakeDogAPI(t, 3)

	code := RunFetchCommand(context.Background(), env, []string{"--json", "--only", "corgi", "poodle AND corgi"})
	require.Equal(t, 0, code)

	out := decodeOutput(t, env)
	assert.Empty(t, out.Groups)
	require.Len(t, out.Images, 3)
	assert.Contains(t, out.Images[0], "/corgi/")
}

func TestFetchCommandOnlyUnknownGroup(t *testing.T) {
	env := fakeDogAPI(t, 3)

	code := RunFetchCommand(context.Background(), env, []string{"--only", "beagle", "poodle AND corgi"})
	assert.Equal(t, 1, code)
}

func TestFetchCommandOnlyIgnoredForSingleBreed(t *testing.T) {
	for _, only := range []string{"all", "beagle"} {
		t.Run(only, func(t *testing.T) {
			env := fakeDogAPI(t, 3)

			code := RunFetchCommand(context.Background(), env, []string{"--json", "--only", only, "beagle"})
			require.Equal(t, 0, code)

			out := decodeOutput(t, env)
			assert.Len(t, out.Images, 3)
			assert.Empty(t, out.Groups)
		})
	}
}

func TestFetchCommandOnlyIsCaseInsensitive(t *testing.T) {
	env := fakeDogAPI(t, 2)

	code := RunFetchCommand(context.Background(), env, []string{"--json", "--only", "Corgi", "poodle AND corgi"})
	require.Equal(t, 0, code)

	out := decodeOutput(t, env)
	require.Len(t, out.Images, 2)
	assert.Contains(t, out.Images[0], "/corgi/")
}

func TestFetchCommandOnlyAllKeepsGroups(t *testing.T) {
	env := fakeDogAPI(t, 2)

	code := RunFetchCommand(context.Background(), env, []string{"--json", "--only", "all", "poodle AND corgi"})
	require.Equal(t, 0, code)

	out := decodeOutput(t, env)
	assert.Len(t, out.Images, 4)
	require.Len(t, out.Groups, 2)
	assert.Equal(t, "poodle", out.Groups[0].Name)
}

func TestFetchCommandNoResults(t *testing.T) {
	env := fakeDogAPI(t, 3)

	code := RunFetchCommand(context.Background(), env, []string{"unicorn"})
	require.Equal(t, 0, code)
	assert.Contains(t, env.Out.(*bytes.Buffer).String(), `No results found for "unicorn"`)
}

func TestFetchCommandRequiresQuery(t *testing.T) {
	env := fakeDogAPI(t, 3)

	assert.Equal(t, 1, RunFetchCommand(context.Background(), env, nil))
	assert.Equal(t, 1, RunFetchCommand(context.Background(), env, []string{"AND"}))
}

func TestPresetCommand(t *testing.T) {
	env := fakeDogAPI(t, 4)

	code := RunPresetCommand(context.Background(), env, []string{"--json"})
	require.Equal(t, 0, code)

	out := decodeOutput(t, env)
	require.Len(t, out.Images, len(gallery.PresetBreeds))
	for i, breed := range gallery.PresetBreeds {
		assert.Equal(t, fmt.Sprintf("https://images.dog.ceo/breeds/%s/0.jpg", breed), out.Images[i])
	}
}

func TestListCommand(t *testing.T) {
	env := fakeDogAPI(t, 0)

	code := RunListCommand(context.Background(), env, nil)
	require.Equal(t, 0, code)

	text := env.Out.(*bytes.Buffer).String()
	assert.Contains(t, text, "Breeds (2)")
	assert.Contains(t, text, "hound-afghan")
	assert.Contains(t, text, "pug")
}

func TestPrintResultGrouped(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, "pug AND corgi", []string{"p"}, []gallery.Group{
		{Name: "pug", Images: []string{"p"}},
		{Name: "corgi"},
	})

	text := buf.String()
	assert.Contains(t, text, "pug (1 images)")
	assert.Contains(t, text, "no images")
	assert.Contains(t, text, "Total: 1 images across 2 breeds")
}
