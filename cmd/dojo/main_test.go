package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	assert := assert.New(t)

	start, end, err := parseRange("128:255")
	assert.NoError(err)
	assert.Equal(int64(128), start)
	assert.Equal(int64(255), end)

	start, end, err = parseRange("0x10:0x20")
	assert.NoError(err)
	assert.Equal(int64(16), start)
	assert.Equal(int64(32), end)

	_, _, err = parseRange("128")
	assert.Error(err)

	_, _, err = parseRange("a:b")
	assert.Error(err)
}
