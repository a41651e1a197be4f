package fingerprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rnlauncher/internal/fingerprint"
)

func TestSum_StableAndShort(t *testing.T) {
	a := fingerprint.Sum([]byte("icon"))
	b := fingerprint.Sum([]byte("icon"))
	c := fingerprint.Sum([]byte("icon2"))

	assert.Len(t, string(a), 20)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
