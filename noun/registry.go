package noun

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Registry maps Go types to noun descriptors. It is safe for concurrent use,
// so packages can register their types from init functions.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[reflect.Type]Descriptor
	inflector   Inflector
}

// Default is the registry used by the package-level helpers.
var Default = NewRegistry(nil)

// NewRegistry returns an empty registry that pluralizes with infl, or English when infl is nil.
func NewRegistry(infl Inflector) *Registry {
	return &Registry{
		descriptors: make(map[reflect.Type]Descriptor),
		inflector:   orEnglish(infl),
	}
}

// Register associates d with t. An empty d.Name defaults to the type name.
func (r *Registry) Register(t reflect.Type, d Descriptor) error {
	if t == nil {
		return ErrNilType
	}

	if d.Name == "" {
		d.Name = t.Name()
	}

	if d.Name == "" && d.Lemma == "" {
		return fmt.Errorf("%w: unnamed type %s needs an explicit lemma", ErrNoLemma, t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.descriptors[t]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, t)
	}

	r.descriptors[t] = d

	return nil
}

// Lookup returns the descriptor registered for t.
func (r *Registry) Lookup(t reflect.Type) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[t]

	return d, ok
}

// Conjugate resolves the descriptor registered for t.
func (r *Registry) Conjugate(t reflect.Type) (Conjugation, error) {
	d, ok := r.Lookup(t)
	if !ok {
		return Conjugation{}, fmt.Errorf("%w: %s", ErrNotRegistered, t)
	}

	c, err := Resolve(d, r.inflector)
	if err != nil {
		return Conjugation{}, fmt.Errorf("conjugating %s: %w", t, err)
	}

	return c, nil
}

// Types returns the registered types sorted by their string form.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]reflect.Type, 0, len(r.descriptors))
	for t := range r.descriptors {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })

	return types
}

// RegisterType registers d for T.
func RegisterType[T any](r *Registry, d Descriptor) error {
	return r.Register(reflect.TypeFor[T](), d)
}

// MustRegisterType is like RegisterType but panics on error. It is meant for init functions.
func MustRegisterType[T any](r *Registry, d Descriptor) {
	if err := RegisterType[T](r, d); err != nil {
		panic(err)
	}
}

// Conjugate resolves the descriptor registered for T.
func Conjugate[T any](r *Registry) (Conjugation, error) {
	return r.Conjugate(reflect.TypeFor[T]())
}
