package gateway

import (
	"sort"
	"sync"
)

// Registry is an ordered, immutable sequence of gateway descriptors. The
// order fixes probe precedence during auto-detection: when a credential
// shape would structurally validate against more than one gateway, the first
// match wins.
type Registry struct {
	descriptors []Descriptor
}

// NewRegistry builds a registry from the given descriptors, ordered by
// ascending Priority. Declaration order breaks ties. The registry copies its
// input and is safe for concurrent use.
func NewRegistry(descs ...Descriptor) *Registry {
	ordered := make([]Descriptor, len(descs))
	copy(ordered, descs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})
	return &Registry{descriptors: ordered}
}

// Descriptors returns the descriptors in probe order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Lookup finds a descriptor by slug.
func (r *Registry) Lookup(slug string) (Descriptor, bool) {
	for _, d := range r.descriptors {
		if d.Slug == slug {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Slugs returns every registered slug in probe order.
func (r *Registry) Slugs() []string {
	slugs := make([]string, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		slugs = append(slugs, d.Slug)
	}
	return slugs
}

// Supported returns the public projection of every registered gateway, in
// probe order. No network calls, no side effects.
func (r *Registry) Supported() []Summary {
	out := make([]Summary, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		fields := make([]Field, len(d.RequiredFields))
		copy(fields, d.RequiredFields)
		out = append(out, Summary{
			Slug:           d.Slug,
			Name:           d.Name,
			Type:           d.Type,
			AuthType:       d.AuthType,
			RequiredFields: fields,
		})
	}
	return out
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

var (
	defaultMu    sync.Mutex
	defaultDescs []Descriptor
)

// Register adds a descriptor to the set returned by Default. The built-in
// adapter packages call it from their register.go files; import them for
// side effect:
//
//	import _ "github.com/syncads/paydetect/gateway/stripe"
func Register(d Descriptor) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDescs = append(defaultDescs, d)
}

// Default returns a registry holding every descriptor registered so far,
// ordered by Priority. Each call returns an independent snapshot.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return NewRegistry(defaultDescs...)
}
