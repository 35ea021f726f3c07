// File: ordered.go
// Title: Insertion-Ordered Map
// Description: Generic map that preserves first-insertion order of its keys.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.3.0: Initial implementation

package mapx

import (
	"fmt"
	"iter"
	"strings"
)

// Entry represents a key-value pair
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Ordered is a map that iterates in insertion order. The zero value is an
// empty map ready to use.
type Ordered[K comparable, V any] struct {
	entries []Entry[K, V]
	index   map[K]int
}

// NewOrdered creates an empty ordered map
func NewOrdered[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{}
}

// FromEntries creates an ordered map from entries. A repeated key keeps its
// first position and its last value.
func FromEntries[K comparable, V any](entries ...Entry[K, V]) *Ordered[K, V] {
	m := &Ordered[K, V]{
		entries: make([]Entry[K, V], 0, len(entries)),
		index:   make(map[K]int, len(entries)),
	}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Set stores value under key. A new key is appended at the end.
func (m *Ordered[K, V]) Set(key K, value V) {
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	if m.index == nil {
		m.index = make(map[K]int)
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry[K, V]{Key: key, Value: value})
}

// Get returns the value stored under key
func (m *Ordered[K, V]) Get(key K) (V, bool) {
	if m != nil {
		if i, ok := m.index[key]; ok {
			return m.entries[i].Value, true
		}
	}
	var zero V
	return zero, false
}

// Has reports whether key is present
func (m *Ordered[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present
func (m *Ordered[K, V]) Delete(key K) bool {
	if m == nil {
		return false
	}
	i, ok := m.index[key]
	if !ok {
		return false
	}

	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Key] = j
	}
	return true
}

// Len returns the number of entries. A nil map has length zero.
func (m *Ordered[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in insertion order
func (m *Ordered[K, V]) Keys() []K {
	keys := make([]K, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Entries returns a copy of the entries in insertion order
func (m *Ordered[K, V]) Entries() []Entry[K, V] {
	if m == nil {
		return nil
	}
	result := make([]Entry[K, V], len(m.entries))
	copy(result, m.entries)
	return result
}

// All returns an iterator over the entries in insertion order
func (m *Ordered[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Clone returns a shallow copy
func (m *Ordered[K, V]) Clone() *Ordered[K, V] {
	return FromEntries(m.Entries()...)
}

// String formats the map like a built-in map, in insertion order
func (m *Ordered[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
