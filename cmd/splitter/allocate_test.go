package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dinnerRecords = `{
  "items": [{"id": "pizza", "subtotal": 20}, {"id": "salad", "subtotal": 10}],
  "assignments": [
    {"item_id": "pizza", "participant_id": "alice", "share_type": "equal"},
    {"item_id": "pizza", "participant_id": "bob", "share_type": "equal"},
    {"item_id": "salad", "participant_id": "bob", "share_type": "amount", "amount": 10}
  ],
  "adjustments": [{"key": "tax", "amount": 3}]
}`

func runRoot(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		allocateFile, allocateOutput = "-", "table"
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestAllocateCommand_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dinner.json")
	require.NoError(t, os.WriteFile(path, []byte(dinnerRecords), 0o600))

	out := runRoot(t, "", "allocate", "--file", path, "-o", "json")

	var got allocationOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 11.0, got.Totals["alice"], 1e-9)
	assert.InDelta(t, 22.0, got.Totals["bob"], 1e-9)
	assert.InDelta(t, 30.0, got.ItemTotal, 1e-9)
	assert.True(t, got.AdjustmentsApplied)
}

func TestAllocateCommand_TableFromStdin(t *testing.T) {
	out := runRoot(t, dinnerRecords, "allocate")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "PARTICIPANT")
	assert.Contains(t, lines[1], "alice")
	assert.Contains(t, lines[1], "11.00")
	assert.Contains(t, lines[2], "bob")
	assert.Contains(t, lines[2], "22.00")
	assert.Contains(t, lines[3], "33.00")
}

func TestAllocateCommand_UndistributedAdjustments(t *testing.T) {
	out := runRoot(t, `{"adjustments": [{"key": "tip", "amount": 5}]}`, "allocate")
	assert.Contains(t, out, "Adjustments of 5.00 were not distributed")
}
