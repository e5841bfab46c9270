package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

const minimalConfig = `
auth:
  jwt_secret: 0123456789abcdef0123456789abcdef
`

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Store.Endpoint != "https://api.jsonbin.io/v3" {
		t.Fatalf("endpoint = %q", cfg.Store.Endpoint)
	}
	if cfg.Auth.SessionTTL != 30*24*time.Hour {
		t.Fatalf("session ttl = %v", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.PasswordSalt == "" {
		t.Fatal("password salt default missing")
	}
	if cfg.Tags.OGLimit != 30 {
		t.Fatalf("og limit = %d, want 30", cfg.Tags.OGLimit)
	}
	if cfg.Tags.Special["kiriko"].Label != "Owner" {
		t.Fatalf("special tags default missing: %+v", cfg.Tags.Special)
	}
	if len(cfg.Admins) != 2 {
		t.Fatalf("admins default = %v", cfg.Admins)
	}
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	if _, err := Load(writeConfig(t, `server: {port: 9000}`)); err == nil {
		t.Fatal("config without jwt_secret accepted")
	}
}

func TestLoadRejectsShortSecret(t *testing.T) {
	if _, err := Load(writeConfig(t, "auth:\n  jwt_secret: short")); err == nil {
		t.Fatal("short jwt_secret accepted")
	}
}

func TestLoadRequiresKeyWithBin(t *testing.T) {
	cfgYAML := minimalConfig + `
store:
  bin: 69359018ae596e708f8975dd
`
	if _, err := Load(writeConfig(t, cfgYAML)); err == nil {
		t.Fatal("bin without key accepted")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LINKHUB_JWT_SECRET", "envsecret-envsecret-envsecret-envsecret")
	t.Setenv("LINKHUB_STORE_KEY", "env-master-key")

	cfgYAML := `
auth:
  jwt_secret: file-secret-file-secret-file-secret
store:
  bin: 69359018ae596e708f8975dd
  key: file-key
`
	cfg, err := Load(writeConfig(t, cfgYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.JWTSecret != "envsecret-envsecret-envsecret-envsecret" {
		t.Fatal("env jwt secret override not applied")
	}
	if cfg.Store.Key != "env-master-key" {
		t.Fatal("env store key override not applied")
	}
}

func TestLoadParsesBootstrapAccounts(t *testing.T) {
	cfgYAML := minimalConfig + `
bootstrap:
  - username: kiriko
    password_hash: abc123
    published: true
    created: 0
  - username: shad0w
    password: bugpass
    bio: Bug Reporter
    published: true
    created: 3
`
	cfg, err := Load(writeConfig(t, cfgYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Bootstrap) != 2 {
		t.Fatalf("bootstrap = %d accounts, want 2", len(cfg.Bootstrap))
	}
	if cfg.Bootstrap[1].Username != "shad0w" || cfg.Bootstrap[1].Created != 3 {
		t.Fatalf("bootstrap[1] = %+v", cfg.Bootstrap[1])
	}
}
