package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseId(t *testing.T) {
	id, err := ParseId("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseId("abc")
	assert.Error(t, err)
}

func TestParsePageNumber(t *testing.T) {
	assert.Equal(t, 1, ParsePageNumber(""))
	assert.Equal(t, 1, ParsePageNumber("garbage"))
	assert.Equal(t, 3, ParsePageNumber("3"))
	assert.Equal(t, -2, ParsePageNumber("-2"))
}
