package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Terms int    `json:"terms"`
	}

	data, err := JSON{}.Marshal(payload{Name: "hash", Terms: 42})
	require.NoError(t, err)

	var got payload
	require.NoError(t, JSON{}.Unmarshal(data, &got))
	assert.Equal(t, payload{Name: "hash", Terms: 42}, got)
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestMustMarshal(t *testing.T) {
	assert.Equal(t, []byte(`{"a":1}`), MustMarshal(nil, map[string]int{"a": 1}))
	assert.Panics(t, func() {
		MustMarshal(JSON{}, make(chan int))
	})
}
