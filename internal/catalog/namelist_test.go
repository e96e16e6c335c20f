package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"Uwe Rosenberg", "Reiner Knizia"},
		SplitNames("Uwe Rosenberg; Reiner Knizia"))
	assert.Equal(t, []string{"Solo"}, SplitNames(";;  Solo ;"))
	assert.Empty(t, SplitNames(""))
	assert.Empty(t, SplitNames(" ; ;"))
}

func TestNormalizeNames_DedupKeepsFirstOccurrence(t *testing.T) {
	got := NormalizeNames([]string{" B ", "A", "B", "", "A ", "C"})
	assert.Equal(t, []string{"B", "A", "C"}, got)
}

func TestNormalizeNames_CaseSensitive(t *testing.T) {
	got := NormalizeNames([]string{"Strategy", "strategy"})
	assert.Equal(t, []string{"Strategy", "strategy"}, got)
}
