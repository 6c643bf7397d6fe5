package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenAddress(t *testing.T) {
	assert.Equal(t, ":8080", listenAddress("8080"))
	assert.Equal(t, ":8080", listenAddress(":8080"), "ADDRESS đã có dấu hai chấm không được nhân đôi")
	assert.Equal(t, ":3000", listenAddress("3000"))
}
