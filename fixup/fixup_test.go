package fixup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "ABSOLUTO", Absolute.String())
	assert.Equal(t, "RELATIVO", Relative.String())
}

func TestTableRecordAndSites(t *testing.T) {
	tab := New()
	tab.Record("FWD", 10, 4, Relative, 0)
	tab.Record("FWD", 20, 1, Absolute, 3)

	sites := tab.Sites("FWD")
	require.Len(t, sites, 2)
	assert.Equal(t, uint32(10), sites[0].Position)
	assert.Equal(t, Relative, sites[0].Kind)
	assert.Equal(t, uint32(20), sites[1].Position)
	assert.Equal(t, uint32(3), sites[1].Addend)
}

func TestTableLabelsFirstReferenceOrder(t *testing.T) {
	tab := New()
	tab.Record("B", 0, 4, Absolute, 0)
	tab.Record("A", 4, 4, Absolute, 0)
	tab.Record("B", 8, 4, Absolute, 0)

	assert.Equal(t, []string{"B", "A"}, tab.Labels())
}

func TestTableAllPreservesOrder(t *testing.T) {
	tab := New()
	tab.Record("B", 0, 4, Absolute, 0)
	tab.Record("A", 4, 4, Absolute, 0)
	tab.Record("B", 8, 4, Absolute, 0)

	all := tab.All()
	require.Len(t, all, 3)
	assert.Equal(t, "B", all[0].Label)
	assert.Equal(t, "B", all[1].Label)
	assert.Equal(t, "A", all[2].Label)
}

func TestTableSitesUnknownLabelIsEmpty(t *testing.T) {
	tab := New()
	assert.Empty(t, tab.Sites("NOPE"))
}
