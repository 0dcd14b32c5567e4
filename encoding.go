package primitivemap

import (
	json "github.com/json-iterator/go"
)

// MarshalJSON renders the pairs as a JSON object. It is meant for inspection and debug
// output only: the map can't be decoded back. Keys must be of a type JSON objects
// support as keys, e.g. strings, integers or encoding.TextMarshaler implementations.
func (m *Map[K, V, B, PB, L, H]) MarshalJSON() ([]byte, error) {
	pairs := make(map[K]V, m.len)
	for key, value := range m.All() {
		pairs[key] = value
	}

	return json.ConfigCompatibleWithStandardLibrary.Marshal(pairs)
}
