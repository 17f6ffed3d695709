package configs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoadFrom_Defaults(t *testing.T) {
	conf, err := LoadFrom([]string{"", filepath.Join(t.TempDir(), "missing.yml")}, envMap(nil))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	want := DefaultServerConf()
	if !reflect.DeepEqual(*conf, want) {
		t.Fatalf("conf = %+v, want %+v", *conf, want)
	}
}

func TestLoadFrom_YAMLFile(t *testing.T) {
	p := writeFile(t, "xmirrord.yml", `
bind_addr: 0.0.0.0:9000
database_url: redis://db:6379/2
database_pool_size: 16
files_dir: /srv/xmirror
allow_origin:
  - https://example.org
read_timeout: 5s
`)
	conf, err := LoadFrom([]string{p}, envMap(nil))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if conf.BindAddr != "0.0.0.0:9000" {
		t.Errorf("BindAddr = %q", conf.BindAddr)
	}
	if conf.DatabaseUrl != "redis://db:6379/2" {
		t.Errorf("DatabaseUrl = %q", conf.DatabaseUrl)
	}
	if conf.DatabasePoolSize != 16 {
		t.Errorf("DatabasePoolSize = %d, want 16", conf.DatabasePoolSize)
	}
	if conf.FilesDir != "/srv/xmirror" {
		t.Errorf("FilesDir = %q", conf.FilesDir)
	}
	if got, want := conf.AllowOrigin, []string{"https://example.org"}; !reflect.DeepEqual(got, want) {
		t.Errorf("AllowOrigin = %v, want %v", got, want)
	}
	if conf.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", conf.ReadTimeout)
	}
	// untouched fields keep their defaults
	if conf.WriteTimeout != 15*time.Second {
		t.Errorf("WriteTimeout = %v, want 15s", conf.WriteTimeout)
	}
	if conf.DatabaseFetchWorkers != 1 {
		t.Errorf("DatabaseFetchWorkers = %d, want 1", conf.DatabaseFetchWorkers)
	}
}

func TestLoadFrom_FirstExistingFileWins(t *testing.T) {
	jsonFile := writeFile(t, "xmirrord.json", `{"bind_addr": "127.0.0.1:1", "database_pool_size": 2}`)
	ymlFile := writeFile(t, "xmirrord.yml", "bind_addr: 127.0.0.1:2\n")

	conf, err := LoadFrom([]string{"", filepath.Join(t.TempDir(), "nope"), jsonFile, ymlFile}, envMap(nil))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if conf.BindAddr != "127.0.0.1:1" {
		t.Fatalf("BindAddr = %q, want the JSON file's value", conf.BindAddr)
	}
	if conf.DatabasePoolSize != 2 {
		t.Fatalf("DatabasePoolSize = %d, want 2", conf.DatabasePoolSize)
	}
}

func TestLoadFrom_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, "xmirrord.yml", "bind_addr: 127.0.0.1:2\ndatabase_pool_size: 4\n")
	conf, err := LoadFrom([]string{p}, envMap(map[string]string{
		"XMIRRORD_BIND_ADDR":              ":8081",
		"XMIRRORD_DATABASE_POOL_SIZE":     "32",
		"XMIRRORD_DATABASE_FETCH_WORKERS": "4",
		"XMIRRORD_ALLOW_ORIGIN":           "https://a.example, https://b.example",
		"XMIRRORD_WRITE_TIMEOUT":          "1m",
	}))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if conf.BindAddr != ":8081" {
		t.Errorf("BindAddr = %q, want :8081", conf.BindAddr)
	}
	if conf.DatabasePoolSize != 32 {
		t.Errorf("DatabasePoolSize = %d, want 32", conf.DatabasePoolSize)
	}
	if conf.DatabaseFetchWorkers != 4 {
		t.Errorf("DatabaseFetchWorkers = %d, want 4", conf.DatabaseFetchWorkers)
	}
	if got, want := conf.AllowOrigin, []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(got, want) {
		t.Errorf("AllowOrigin = %v, want %v", got, want)
	}
	if conf.WriteTimeout != time.Minute {
		t.Errorf("WriteTimeout = %v, want 1m", conf.WriteTimeout)
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "malformed yaml", file: "bind_addr: [unterminated\n"},
		{name: "bad pool size env", env: map[string]string{"XMIRRORD_DATABASE_POOL_SIZE": "eight"}},
		{name: "bad duration env", env: map[string]string{"XMIRRORD_READ_TIMEOUT": "soon"}},
		{name: "zero pool size", file: "database_pool_size: 0\n"},
		{name: "empty database url", env: map[string]string{"XMIRRORD_DATABASE_URL": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var paths []string
			if tt.file != "" {
				paths = append(paths, writeFile(t, "conf.yml", tt.file))
			}
			if _, err := LoadFrom(paths, envMap(tt.env)); err == nil {
				t.Fatal("LoadFrom() error = nil, want error")
			}
		})
	}
}
