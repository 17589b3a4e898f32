package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"simulate", "--rounds", "2", "--seed", "11"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	got := out.String()
	assert.Contains(t, got, "seed 11\n")
	assert.Contains(t, got, "round 1: ")
	assert.Contains(t, got, "round 2: ")
	assert.Contains(t, got, `now showing "Round 3"`)
}
