package agenda

import "github.com/custodia-labs/agenda-cli/internal/core/domain"

// OrderedGroups is an insertion-ordered multimap: values are appended to a
// key's group, and keys are reported in the order they were first added.
type OrderedGroups[K comparable, V any] struct {
	keys   []K
	index  map[K]int
	groups [][]V
}

// NewOrderedGroups creates an empty ordered mapping.
func NewOrderedGroups[K comparable, V any]() *OrderedGroups[K, V] {
	return &OrderedGroups[K, V]{
		index: make(map[K]int),
	}
}

// Add appends value to the group for key, creating the group at the end
// of the mapping on first occurrence of the key.
func (g *OrderedGroups[K, V]) Add(key K, value V) {
	i, ok := g.index[key]
	if !ok {
		i = len(g.keys)
		g.index[key] = i
		g.keys = append(g.keys, key)
		g.groups = append(g.groups, nil)
	}
	g.groups[i] = append(g.groups[i], value)
}

// Get returns the group for key.
func (g *OrderedGroups[K, V]) Get(key K) ([]V, bool) {
	i, ok := g.index[key]
	if !ok {
		return nil, false
	}
	return g.groups[i], true
}

// Keys returns the keys in first-occurrence order.
func (g *OrderedGroups[K, V]) Keys() []K {
	keys := make([]K, len(g.keys))
	copy(keys, g.keys)
	return keys
}

// Len returns the number of groups.
func (g *OrderedGroups[K, V]) Len() int {
	return len(g.keys)
}

// Each calls fn for every group in key order.
func (g *OrderedGroups[K, V]) Each(fn func(key K, values []V)) {
	for i, k := range g.keys {
		fn(k, g.groups[i])
	}
}

// DepartmentKey returns the bucket key for an event: its department label,
// or domain.OtherDepartment when the label is empty.
func DepartmentKey(event *domain.Event) string {
	if event == nil || event.Department == "" {
		return domain.OtherDepartment
	}
	return event.Department
}

// GroupByDepartment partitions items into department buckets.
// Bucket order is the first-occurrence order of each key over items, and
// each bucket keeps its items in input order, so grouping a date-sorted
// sequence yields date-sorted buckets.
func GroupByDepartment(items []domain.AgendaItem) []domain.DepartmentBucket {
	groups := NewOrderedGroups[string, domain.AgendaItem]()
	for _, item := range items {
		groups.Add(DepartmentKey(item.Event), item)
	}

	buckets := make([]domain.DepartmentBucket, 0, groups.Len())
	groups.Each(func(key string, values []domain.AgendaItem) {
		buckets = append(buckets, domain.DepartmentBucket{
			Department: key,
			Items:      values,
		})
	})
	return buckets
}
