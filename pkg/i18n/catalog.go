package i18n

import (
	"strings"
	"sync"
)

// Catalog is one language's full tree of translation entries. Leaves are
// strings; intermediate nodes are maps keyed by path segment. A dotted key
// such as "user.profile.name" addresses one leaf.
type Catalog = map[string]any

// Store maps language codes to catalogs and remembers the order languages
// were registered in: the first registered language doubles as the fallback
// of last resort. It is read-mostly after startup; Upsert swaps a whole
// catalog tree under the write lock, so readers observe either the old or
// the new tree, never a torn one.
type Store struct {
	mu       sync.RWMutex
	catalogs map[string]Catalog
	order    []string
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{catalogs: make(map[string]Catalog)}
}

// Upsert registers or replaces the catalog for a language code. Codes are
// normalized to lowercase. An existing code keeps its original position in
// the load order, so replacing a catalog never changes FirstAvailable.
func (s *Store) Upsert(lang string, c Catalog) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || c == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.catalogs[lang]; !exists {
		s.order = append(s.order, lang)
	}
	s.catalogs[lang] = c
}

// Has reports whether a catalog is registered for the language code.
func (s *Store) Has(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.catalogs[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}

// FirstAvailable returns the language code that was registered first.
// The second return value is false when the store is empty.
func (s *Store) FirstAvailable() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return "", false
	}
	return s.order[0], true
}

// Languages returns all registered language codes in registration order.
func (s *Store) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Get resolves a dotted key against the catalog of the given language.
// The lookup fails (second return false) when the language is unknown, any
// path segment is absent, traversal hits a non-map node, or the final value
// is not a string. A failed lookup never fails the caller.
func (s *Store) Get(key, lang string) (string, bool) {
	s.mu.RLock()
	c, ok := s.catalogs[strings.ToLower(strings.TrimSpace(lang))]
	s.mu.RUnlock()
	if !ok || key == "" {
		return "", false
	}
	return lookupPath(c, key)
}

// lookupPath walks a catalog tree segment by segment.
func lookupPath(node map[string]any, key string) (string, bool) {
	parts := strings.Split(key, ".")
	current := node

	for i, part := range parts {
		if i == len(parts)-1 {
			leaf, ok := current[part].(string)
			return leaf, ok
		}

		next, ok := current[part]
		if !ok {
			return "", false
		}

		childMap, ok := next.(map[string]any)
		if !ok {
			// Tolerate decoders that produce map[any]any for nested nodes.
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return "", false
			}
			childMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					childMap[ks] = v
				}
			}
		}

		current = childMap
	}

	return "", false
}
