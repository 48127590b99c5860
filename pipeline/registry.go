package pipeline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/hasbyte1/go-classic-ciphers/cipher"
)

// Factory builds a transform from the textual key of a stage.  It must
// reject an invalid key with an error wrapping [cipher.ErrConfiguration].
type Factory func(key string) (cipher.Transform, error)

// Registry is a thread-safe map from transform name to [Factory].
//
// [NewDefaultRegistry] registers every transform of package cipher.  Custom
// transforms can be added with [Registry.Register]; a stage naming one runs
// after all built-in stages when encrypting and before them when decrypting.
type Registry struct {
	mu        sync.RWMutex
	factories map[Name]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Name]Factory)}
}

// NewDefaultRegistry returns a Registry with all eight built-in transforms.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(Vigenere, func(key string) (cipher.Transform, error) {
		return asTransform(cipher.NewVigenere(strings.TrimSpace(key)))
	})
	_ = r.Register(Substitution, func(key string) (cipher.Transform, error) {
		return asTransform(cipher.NewSubstitution(strings.TrimSpace(key)))
	})
	_ = r.Register(Multiplicative, intFactory(Multiplicative, func(k int) (cipher.Transform, error) {
		return asTransform(cipher.NewMultiplicative(k))
	}))
	_ = r.Register(Affine, intFactory(Affine, func(k int) (cipher.Transform, error) {
		return asTransform(cipher.NewAffine(k))
	}))
	_ = r.Register(Obfuscation, keyless(Obfuscation, cipher.NewObfuscator()))
	_ = r.Register(Transposition, intFactory(Transposition, func(k int) (cipher.Transform, error) {
		return asTransform(cipher.NewTransposition(k))
	}))
	_ = r.Register(Caesar, intFactory(Caesar, func(k int) (cipher.Transform, error) {
		return cipher.NewCaesar(k), nil
	}))
	_ = r.Register(Reverse, keyless(Reverse, cipher.NewReverse()))
	return r
}

var defaultRegistry = NewDefaultRegistry()

// DefaultRegistry returns the shared Registry used when [New] is called
// without [WithRegistry].
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds or replaces the factory for name.
func (r *Registry) Register(name Name, f Factory) error {
	if name == "" {
		return ErrEmptyName
	}
	if f == nil {
		return ErrNilFactory
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
	return nil
}

// Factory returns the factory registered for name.
func (r *Registry) Factory(name Name) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
	return f, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name Name) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names in encryption order.
func (r *Registry) Names() []Name {
	r.mu.RLock()
	names := make([]Name, 0, len(r.factories))
	for n := range r.factories {
		names = append(names, n)
	}
	r.mu.RUnlock()
	sortByPosition(names, func(n Name) Name { return n })
	return names
}

// Build looks up the factory for name and calls it with key.
func (r *Registry) Build(name Name, key string) (cipher.Transform, error) {
	f, err := r.Factory(name)
	if err != nil {
		return nil, err
	}
	return f(key)
}

// ──────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────────────────────────────────

// asTransform converts a typed constructor result into the interface without
// turning a nil pointer into a non-nil interface.
func asTransform[T cipher.Transform](t T, err error) (cipher.Transform, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

func intFactory(name Name, build func(int) (cipher.Transform, error)) Factory {
	return func(key string) (cipher.Transform, error) {
		k, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("%w: %s key %q is not an integer", cipher.ErrInvalidKey, name, key)
		}
		return build(k)
	}
}

func keyless(name Name, t cipher.Transform) Factory {
	return func(key string) (cipher.Transform, error) {
		if strings.TrimSpace(key) != "" {
			return nil, fmt.Errorf("%w: %s takes no key, got %q", cipher.ErrInvalidKey, name, key)
		}
		return t, nil
	}
}

// sortByPosition orders items by the encryption position of their name,
// breaking ties (custom names) alphabetically.
func sortByPosition[T any](items []T, name func(T) Name) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := position(name(items[i])), position(name(items[j]))
		if pi != pj {
			return pi < pj
		}
		return name(items[i]) < name(items[j])
	})
}
