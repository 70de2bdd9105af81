package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/flightbook/flightbook-cli/internal/cli"
	"github.com/flightbook/flightbook-cli/pkg/files"
	"github.com/flightbook/flightbook-cli/pkg/models"
)

const londonAirports = `[
	{"icao":"EGLL","iata":"LHR","name":"London Heathrow","city":"London","region":"England","country":"GB"},
	{"icao":"EGKK","iata":"LGW","name":"London Gatwick","city":"Crawley","region":"England","country":"GB"},
	{"icao":"EGLC","iata":"LCY","name":"London City","city":"London","region":"England","country":"GB"},
	{"icao":"CYXU","iata":"YXU","name":"London International","city":"London","region":"Ontario","country":"CA"}
]`

// setupSettings writes a settings file pointing the ninjas adapter at srv
func setupSettings(t *testing.T, srv *httptest.Server, pageSize int) *cli.GlobalOptions {
	t.Helper()
	t.Setenv(files.APIKeyEnv, "")

	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := models.DefaultSettings()
	s.Lookup.APIKey = "test-key"
	s.UI.PageSize = pageSize
	if srv != nil {
		s.Lookup.Endpoint = srv.URL
	}
	require.NoError(t, files.WriteSettings(path, s))

	return &cli.GlobalOptions{SettingsPath: path, Yes: true}
}

func execute(t *testing.T, opts *cli.GlobalOptions, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cli.SetStreams(&out, &out, nil)
	t.Cleanup(func() {
		cli.SetStreams(os.Stdout, os.Stderr, os.Stdin)
		cli.SetGlobalFlags(false, false, false)
	})

	root := &cobra.Command{Use: "flightbook", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(NewAirportsCommand(opts))
	root.AddCommand(NewConfigCommand(opts))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func ninjasServer(t *testing.T, body string, status int) (*httptest.Server, *[]string) {
	t.Helper()
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("name"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &queries
}

func TestAirportsCommandText(t *testing.T) {
	srv, queries := ninjasServer(t, londonAirports, http.StatusOK)
	opts := setupSettings(t, srv, 2)

	out, err := execute(t, opts, "airports", "london")
	require.NoError(t, err)

	assert.Equal(t, []string{"london"}, *queries)
	assert.Contains(t, out, "Airports matching: london (ninjas)")
	assert.Contains(t, out, "London Heathrow")
	assert.Contains(t, out, "LGW")
	assert.NotContains(t, out, "London City")
	assert.Contains(t, out, "Showing 2 of 4 (use --all for the rest)")
}

func TestAirportsCommandAllJSON(t *testing.T) {
	srv, _ := ninjasServer(t, londonAirports, http.StatusOK)
	opts := setupSettings(t, srv, 2)

	out, err := execute(t, opts, "airports", "London", "--all", "--output", "json")
	require.NoError(t, err)

	var result AirportResultOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "London", result.Query)
	assert.Equal(t, 4, result.Count)
	assert.Equal(t, 4, result.Shown)
	assert.Equal(t, "Ontario", result.Airports[3].Region)
}

func TestAirportsCommandFiltersLocally(t *testing.T) {
	srv, _ := ninjasServer(t, londonAirports, http.StatusOK)
	opts := setupSettings(t, srv, 10)

	out, err := execute(t, opts, "airports", "crawley")
	require.NoError(t, err)
	assert.Contains(t, out, "London Gatwick")
	assert.NotContains(t, out, "London Heathrow")
	assert.Contains(t, out, "Total: 1 airports")
}

func TestAirportsCommandNoResults(t *testing.T) {
	srv, _ := ninjasServer(t, `[]`, http.StatusOK)
	opts := setupSettings(t, srv, 10)

	out, err := execute(t, opts, "airports", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, `No airports found for "zzz"`)
}

func TestAirportsCommandErrors(t *testing.T) {
	srv, _ := ninjasServer(t, `{"error":"bad key"}`, http.StatusUnauthorized)
	opts := setupSettings(t, srv, 10)

	_, err := execute(t, opts, "airports", "london")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")

	_, err = execute(t, opts, "airports", "london", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")

	_, err = execute(t, opts, "airports", "  ")
	assert.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	t.Setenv(files.APIKeyEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	opts := &cli.GlobalOptions{SettingsPath: path, Provider: "aviationstack", APIKey: "abcdef123456", Yes: true}

	out, err := execute(t, opts, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote settings to "+path)

	stored, err := files.ReadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, models.ProviderAviationstack, stored.Lookup.Provider)
	assert.Equal(t, "abcdef123456", stored.Lookup.APIKey)

	out, err = execute(t, &cli.GlobalOptions{SettingsPath: path}, "config", "show")
	require.NoError(t, err)

	var shown models.Settings
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "********3456", shown.Lookup.APIKey)
	assert.Equal(t, models.ProviderAviationstack, shown.Lookup.Provider)
	assert.Equal(t, 10, shown.UI.PageSize)
}

func TestConfigInitKeepsExisting(t *testing.T) {
	opts := setupSettings(t, nil, 7)
	opts.Yes = false

	cli.SetStreams(nil, nil, strings.NewReader("n\n"))
	_, err := execute(t, opts, "config", "init")
	require.NoError(t, err)

	stored, err := files.ReadSettings(opts.SettingsPath)
	require.NoError(t, err)
	assert.Equal(t, 7, stored.UI.PageSize)
}

func TestConfigPath(t *testing.T) {
	opts := &cli.GlobalOptions{SettingsPath: "/tmp/fb/settings.yaml"}
	out, err := execute(t, opts, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/fb/settings.yaml\n", out)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "", maskKey(""))
	assert.Equal(t, "***", maskKey("abc"))
	assert.Equal(t, "****5678", maskKey("12345678"))
}
