package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageName(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"../paws/", "paws"},
		{"../paws", "paws"},
		{"/src/paws/core", "core"},
		{".", "."},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			assert.Equal(t, tt.want, PackageName(tt.dir))
		})
	}
}

func TestIsGeneratedStub(t *testing.T) {
	tests := []struct {
		name string
		pkg  string
		want bool
	}{
		{"modules.rst", "paws", true},
		{"paws.rst", "paws", true},
		{"paws.api.rst", "paws", true},
		{"paws.core.operations.rst", "paws", true},
		{"paws.core.operations.IO.rst", "paws", true},

		// Hand-written files must survive cleanup.
		{"index.rst", "paws", false},
		{"conf.py", "paws", false},
		{"paws.rst.bak", "paws", false},
		{"pawstools.rst", "paws", false},
		{"other.api.rst", "paws", false},
		{"paws..rst", "paws", false},
		{"paws.core-ops.rst", "paws", false},
		{"paws.rst", "", false},
		{"modules.rst", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGeneratedStub(tt.name, tt.pkg))
		})
	}
}
