package transformrs

import (
	"os"

	"github.com/joho/godotenv"
)

// Key pairs a provider with its access credential. It is a plain value:
// construct it once (usually via [LoadKeys]) and pass it by value into each
// adapter call. Adapters never mutate it.
type Key struct {
	Provider Provider
	APIKey   string
}

// KeyStore maps providers to their resolved credentials.
type KeyStore struct {
	keys map[Provider]Key
}

// NewKeyStore returns an empty key store.
func NewKeyStore() *KeyStore {
	return &KeyStore{keys: make(map[Provider]Key)}
}

// Add stores key, replacing any existing entry for the same provider.
func (s *KeyStore) Add(key Key) {
	if s.keys == nil {
		s.keys = make(map[Provider]Key)
	}
	s.keys[key.Provider] = key
}

// ForProvider returns the key for p. The second return value reports whether
// a credential was found.
func (s *KeyStore) ForProvider(p Provider) (Key, bool) {
	key, ok := s.keys[p]
	return key, ok
}

// Len returns the number of credentials in the store.
func (s *KeyStore) Len() int {
	return len(s.keys)
}

// LoadKeys builds a [KeyStore] from a .env-style secrets file plus the
// process environment. Each provider's credential is read from the variable
// named <PROVIDER>_KEY (e.g. DEEPINFRA_KEY, OPENAI_KEY). Values from the
// process environment take precedence over the file, and a missing or
// unreadable file is not an error: the environment alone may supply
// everything.
func LoadKeys(path string) *KeyStore {
	fileVars, err := godotenv.Read(path)
	if err != nil {
		fileVars = nil
	}

	store := NewKeyStore()
	for _, p := range Providers() {
		value := os.Getenv(p.keyEnvVar())
		if value == "" {
			value = fileVars[p.keyEnvVar()]
		}
		if value != "" {
			store.Add(Key{Provider: p, APIKey: value})
		}
	}
	return store
}
