package transformrs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	return path
}

// clearKeyEnv shields the test from provider keys set in the host
// environment. An empty value counts as unset.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, p := range Providers() {
		t.Setenv(p.keyEnvVar(), "")
	}
}

func TestLoadKeysFromFile(t *testing.T) {
	clearKeyEnv(t)
	path := writeEnvFile(t, "DEEPINFRA_KEY=di-secret\nOPENAI_KEY=oa-secret\n")

	store := LoadKeys(path)
	if store.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", store.Len())
	}

	key, ok := store.ForProvider(DeepInfra)
	if !ok {
		t.Fatal("expected a DeepInfra key")
	}
	if key.Provider != DeepInfra {
		t.Errorf("expected provider %s, got %s", DeepInfra, key.Provider)
	}
	if key.APIKey != "di-secret" {
		t.Errorf("expected APIKey di-secret, got %s", key.APIKey)
	}

	if _, ok := store.ForProvider(Google); ok {
		t.Error("expected no Google key")
	}
}

func TestLoadKeysEnvironmentWinsOverFile(t *testing.T) {
	clearKeyEnv(t)
	path := writeEnvFile(t, "HYPERBOLIC_KEY=from-file\n")
	t.Setenv("HYPERBOLIC_KEY", "from-env")

	store := LoadKeys(path)
	key, ok := store.ForProvider(Hyperbolic)
	if !ok {
		t.Fatal("expected a Hyperbolic key")
	}
	if key.APIKey != "from-env" {
		t.Errorf("expected the environment value to win, got %s", key.APIKey)
	}
}

func TestLoadKeysMissingFileFallsBackToEnvironment(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GOOGLE_KEY", "g-secret")

	store := LoadKeys(filepath.Join(t.TempDir(), "does-not-exist.env"))
	key, ok := store.ForProvider(Google)
	if !ok {
		t.Fatal("expected a Google key from the environment")
	}
	if key.APIKey != "g-secret" {
		t.Errorf("expected g-secret, got %s", key.APIKey)
	}
}

func TestKeyStoreAddReplaces(t *testing.T) {
	store := NewKeyStore()
	store.Add(Key{Provider: OpenAI, APIKey: "first"})
	store.Add(Key{Provider: OpenAI, APIKey: "second"})

	if store.Len() != 1 {
		t.Fatalf("expected 1 key, got %d", store.Len())
	}
	key, _ := store.ForProvider(OpenAI)
	if key.APIKey != "second" {
		t.Errorf("expected second, got %s", key.APIKey)
	}
}
