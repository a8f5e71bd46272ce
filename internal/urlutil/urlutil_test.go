package urlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		raw      string
		path     string
		fragment string
	}{
		{"", "/", ""},
		{"/NIF-Ontology/bfo.owl", "/NIF-Ontology/bfo.owl", ""},
		{"/NIF-Ontology/bfo.owl#Class1", "/NIF-Ontology/bfo.owl", "Class1"},
		{"http://ontology.neuinfo.org/NIF/ttl/nif.ttl#x", "/NIF/ttl/nif.ttl", "x"},
		{"http://ontology.neuinfo.org", "/", ""},
		{"/Doc?q=1#Section1", "/Doc", "Section1"},
		{"/Doc#", "/Doc", ""},
		{"  /Doc  ", "/Doc", ""},
		{"%zz/Doc?q#frag", "/%zz/Doc", "frag"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			path, fragment := SplitLocation(tt.raw)
			require.Equal(t, tt.path, path)
			require.Equal(t, tt.fragment, fragment)
		})
	}
}
