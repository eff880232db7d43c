package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"github.com/matzehuels/pivotgrid/pkg/document"
	"github.com/matzehuels/pivotgrid/pkg/errors"
	"github.com/matzehuels/pivotgrid/pkg/pivot"
)

// captureUI redirects status output for the duration of the test.
func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := uiOut
	uiOut = &buf
	t.Cleanup(func() { uiOut = prev })
	return &buf
}

// writeConfig writes a config using a private cache directory.
func writeConfig(t *testing.T) (path, cacheDir string) {
	t.Helper()
	dir := t.TempDir()
	cacheDir = filepath.Join(dir, "cache")
	path = filepath.Join(dir, "pivotgrid.toml")
	data := "[cache]\nbackend = \"file\"\ndir = '" + cacheDir + "'\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path, cacheDir
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command and returns what it wrote to stdout.
func run(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func quietCLI() *CLI { return New(io.Discard, LogInfo) }

func TestRootCommandHasSubcommands(t *testing.T) {
	root := quietCLI().RootCommand()
	want := []string{"reconcile", "check", "layout", "serve", "cache", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVerboseFlag(t *testing.T) {
	captureUI(t)
	cfg, _ := writeConfig(t)
	c := quietCLI()
	if _, err := run(t, c, "-v", "--config", cfg, "cache", "path"); err != nil {
		t.Fatal(err)
	}
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

const reconcileRequest = `{
  "setting": {"rows": [["field", 1, null]], "columns": [["field", 9, null]], "values": []},
  "columns": [
    {"name": "CATEGORY", "field_ref": ["field", 1, null], "source": "breakout"},
    {"name": "VENDOR", "field_ref": ["field", 2, null], "source": "breakout"},
    {"name": "count", "field_ref": ["aggregation", 0], "source": "aggregation"}
  ]
}`

func TestReconcileCommand(t *testing.T) {
	ui := captureUI(t)
	cfg, _ := writeConfig(t)
	in := writeFile(t, "reconcile.json", reconcileRequest)
	out := filepath.Join(t.TempDir(), "setting.json")

	if _, err := run(t, quietCLI(), "--config", cfg, "reconcile", in, "-o", out); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	var got pivot.Setting
	if err := document.ReadFile(out, &got); err != nil {
		t.Fatal(err)
	}
	want := pivot.Setting{
		Rows:    []pivot.FieldRef{{"field", 1, nil}, {"field", 2, nil}},
		Columns: []pivot.FieldRef{},
		Values:  []pivot.FieldRef{{"aggregation", 0}},
	}
	if !got.Equal(want) {
		t.Errorf("setting = %+v, want %+v", got, want)
	}
	if !strings.Contains(ui.String(), "2 (was 1)") {
		t.Errorf("status output should report the rows change, got:\n%s", ui)
	}
}

func TestCheckCommand(t *testing.T) {
	captureUI(t)
	cfg, _ := writeConfig(t)

	ok := writeFile(t, "ok.json", `{"columns": [
  {"name": "CATEGORY", "field_ref": ["field", 1, null], "source": "breakout"},
  {"name": "count", "field_ref": ["aggregation", 0], "source": "aggregation"}
]}`)
	out := filepath.Join(t.TempDir(), "ok.out.json")
	if _, err := run(t, quietCLI(), "--config", cfg, "check", ok, "-o", out); err != nil {
		t.Fatalf("check renderable: %v", err)
	}
	var resp document.CheckResponse
	if err := document.ReadFile(out, &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Renderable {
		t.Errorf("response = %+v, want renderable", resp)
	}

	bad := writeFile(t, "bad.json", `{"columns": [
  {"name": "CATEGORY", "field_ref": ["field", 1, null], "source": "native"},
  {"name": "count", "field_ref": ["aggregation", 0], "source": "aggregation"}
]}`)
	out = filepath.Join(t.TempDir(), "bad.out.json")
	_, err := run(t, quietCLI(), "--config", cfg, "check", bad, "-o", out, "--lang", "fr")
	if !stderrors.Is(err, errNotRenderable) {
		t.Fatalf("check = %v, want errNotRenderable", err)
	}
	resp = document.CheckResponse{}
	if err := document.ReadFile(out, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Renderable || resp.Code != errors.ErrCodeNotAggregated || !strings.Contains(resp.Message, "agrégées") {
		t.Errorf("response = %+v", resp)
	}
}

const layoutRequest = `{
  "row_indexes": [0],
  "column_titles": ["Category", "Count"],
  "left_items": [
    {"value": "Doohickey", "depth": 0, "offset": 0, "span": 1},
    {"value": "Gizmo", "depth": 0, "offset": 1, "span": 1}
  ],
  "top_items": [{"value": "Count", "depth": 0, "offset": 0, "span": 1}],
  "column_count": 1,
  "value_count": 1
}`

func TestLayoutCommand(t *testing.T) {
	captureUI(t)
	cfg, cacheDir := writeConfig(t)
	in := writeFile(t, "pivot.json", layoutRequest)
	wantOut := strings.TrimSuffix(in, ".json") + ".layout.json"

	for i, wantCached := range []bool{false, true} {
		if _, err := run(t, quietCLI(), "--config", cfg, "layout", in); err != nil {
			t.Fatalf("layout run %d: %v", i, err)
		}
		var resp document.LayoutResponse
		if err := document.ReadFile(wantOut, &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Cached != wantCached {
			t.Errorf("run %d: cached = %v, want %v", i, resp.Cached, wantCached)
		}
		if len(resp.Left) != 2 || len(resp.Top) != 1 {
			t.Errorf("run %d: layout = %+v", i, resp.Header)
		}
	}

	if _, err := os.Stat(cacheDir); err != nil {
		t.Errorf("cache dir should exist: %v", err)
	}
}

func TestLayoutCommandNoCache(t *testing.T) {
	captureUI(t)
	cfg, cacheDir := writeConfig(t)
	in := writeFile(t, "pivot.json", layoutRequest)
	out := filepath.Join(t.TempDir(), "out.json")

	for i := 0; i < 2; i++ {
		if _, err := run(t, quietCLI(), "--config", cfg, "layout", in, "-o", out, "--no-cache"); err != nil {
			t.Fatal(err)
		}
	}
	var resp document.LayoutResponse
	if err := document.ReadFile(out, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Cached {
		t.Error("--no-cache should never report a cache hit")
	}
	if _, err := os.Stat(cacheDir); !os.IsNotExist(err) {
		t.Errorf("--no-cache should not create the cache dir, stat err = %v", err)
	}
}

func TestLayoutCommandMissingInput(t *testing.T) {
	captureUI(t)
	cfg, _ := writeConfig(t)
	_, err := run(t, quietCLI(), "--config", cfg, "layout", filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("layout = %v, want %s", err, errors.ErrCodeNotFound)
	}
}

func TestCacheCommands(t *testing.T) {
	ui := captureUI(t)
	cfg, cacheDir := writeConfig(t)

	out, err := run(t, quietCLI(), "--config", cfg, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != cacheDir {
		t.Errorf("cache path = %q, want %q", out, cacheDir)
	}

	if _, err := run(t, quietCLI(), "--config", cfg, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(ui.String(), "Cache is empty") {
		t.Errorf("clearing a missing cache should say so, got:\n%s", ui)
	}

	in := writeFile(t, "pivot.json", layoutRequest)
	if _, err := run(t, quietCLI(), "--config", cfg, "layout", in); err != nil {
		t.Fatal(err)
	}
	ui.Reset()
	if _, err := run(t, quietCLI(), "--config", cfg, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(ui.String(), "Cleared 1 cached layouts") {
		t.Errorf("clear output = %q", ui)
	}
}

func TestConfigFromEnv(t *testing.T) {
	captureUI(t)
	cfg, cacheDir := writeConfig(t)
	t.Setenv(configEnv, cfg)

	out, err := run(t, quietCLI(), "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != cacheDir {
		t.Errorf("cache path = %q, want %q", out, cacheDir)
	}
}

func TestInvalidConfig(t *testing.T) {
	captureUI(t)
	path := writeFile(t, "bad.toml", "[cache]\nbackend = \"memcached\"\n")
	_, err := run(t, quietCLI(), "--config", path, "cache", "path")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestResolveLang(t *testing.T) {
	tests := []struct {
		flag string
		env  string
		want language.Tag
	}{
		{"de", "", language.German},
		{"fr-CA", "en_US.UTF-8", language.French},
		{"", "es_MX.UTF-8", language.Spanish},
		{"", "C", language.English},
		{"", "", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.flag+"/"+tt.env, func(t *testing.T) {
			t.Setenv("LANG", tt.env)
			if got := resolveLang(tt.flag); got != tt.want {
				t.Errorf("resolveLang(%q) with LANG=%q = %v, want %v", tt.flag, tt.env, got, tt.want)
			}
		})
	}
}

func TestServe(t *testing.T) {
	captureUI(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	done := make(chan error, 1)
	go func() { done <- quietCLI().serve(ctx, ln, handler) }()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		cancel()
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve() = %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("serve did not shut down")
	}
}
