package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	client := NewHTTPClient(3 * time.Second)

	assert.Equal(t, 3*time.Second, client.Timeout)
	tr, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 10, tr.MaxIdleConnsPerHost)
	assert.NotNil(t, tr.Proxy)
}
