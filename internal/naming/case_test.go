package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/buildergen/internal/naming"
)

func TestLowerCamel(t *testing.T) {
	tests := map[string]string{
		"Host":      "host",
		"HTTPAddr":  "httpAddr",
		"ID":        "id",
		"host":      "host",
		"MaxConns2": "maxConns2",
		"_private":  "_private",
		"Größe":     "größe",
		"":          "",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, naming.LowerCamel(input), "LowerCamel(%q)", input)
	}
}

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "Server", naming.UpperFirst("server"))
	assert.Equal(t, "Server", naming.UpperFirst("Server"))
	assert.Equal(t, "Ärger", naming.UpperFirst("ärger"))
	assert.Equal(t, "_x", naming.UpperFirst("_x"))
	assert.Equal(t, "", naming.UpperFirst(""))
}
