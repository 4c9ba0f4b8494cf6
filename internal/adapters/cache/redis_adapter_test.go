package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixKey_NamespacesKeys(t *testing.T) {
	assert.Equal(t, "hospitalfinder:session:triage:sess-1", prefixKey("session:triage:sess-1"))
	assert.Equal(t, "hospitalfinder:response:/api/hospitals/h-1", prefixKey("response:/api/hospitals/h-1"))
}
