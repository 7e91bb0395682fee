package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCollapse(t *testing.T) {
	term := NewTerm("h", "a00")

	assert.Equal(t, None{}, NewAnd())
	assert.Equal(t, None{}, NewOr())
	assert.Equal(t, term, NewAnd(term))
	assert.Equal(t, term, NewOr(term))

	and := NewAnd(term, NewTerm("h", "b11"))
	assert.IsType(t, And{}, and)
	assert.Len(t, and.(And).Children, 2)
}

func TestString(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{NewTerm("h", "a00"), "h:a00"},
		{None{}, "NONE"},
		{NewAnd(NewTerm("h", "a00"), NewTerm("h", "b11")), "(h:a00 AND h:b11)"},
		{NewOr(NewTerm("h", "a00"), NewTerm("h", "b11")), "(h:a00 OR h:b11)"},
		{NewRange("h", "b02", "c", true, false, 3, 3), "h:[b02 TO c} len:[3,3]"},
		{NewRange("h", "a01", "", false, false, 0, 3), "h:{a01 TO *} len:[0,3]"},
		{NewPrefix("h", "b1", 2, 5), "h:b1* len:[2,5]"},
		{NewPattern("h", "b1??1", '?'), "h:~b1??1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.node.String())
	}
}
