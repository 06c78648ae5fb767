package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_RequiresProofLength(t *testing.T) {
	var buf bytes.Buffer
	code := run([]string{}, &buf)
	assert.Equal(t, 2, code)
}

func TestRun_FindsAndPrintsAProof(t *testing.T) {
	var buf bytes.Buffer
	code := run([]string{"--proof_length=4"}, &buf)
	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "best c =")
}

func TestRun_RejectsMalformedFlag(t *testing.T) {
	var buf bytes.Buffer
	code := run([]string{"--proof_length=not-a-number"}, &buf)
	assert.Equal(t, 2, code)
}
