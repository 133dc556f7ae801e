package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestConnectedComponents_Walls splits a grid into regions separated by walls.
// Grid:
//
//	S 0 1 0
//	1 1 1 0
//	0 0 1 G
//
// Expect three components: {(0,0),(0,1)}, {(0,3),(1,3),(2,3)}, {(2,0),(2,1)}.
func TestConnectedComponents_Walls(t *testing.T) {
	gg, err := gridgraph.FromRows([]string{
		"S010",
		"1110",
		"001G",
	})
	require.NoError(t, err)

	comps := gg.ConnectedComponents()
	require.Len(t, comps, 3)
	assert.Equal(t, []gridgraph.Position{{0, 0}, {0, 1}}, comps[0])
	assert.Equal(t, []gridgraph.Position{{0, 3}, {1, 3}, {2, 3}}, comps[1])
	assert.Equal(t, []gridgraph.Position{{2, 0}, {2, 1}}, comps[2])

	assert.Equal(t, 0, gg.ComponentOf(gridgraph.Position{Row: 0, Col: 1}))
	assert.Equal(t, 1, gg.ComponentOf(gridgraph.Position{Row: 2, Col: 3}))
	assert.Equal(t, -1, gg.ComponentOf(gridgraph.Position{Row: 1, Col: 1}), "wall")
	assert.Equal(t, -1, gg.ComponentOf(gridgraph.Position{Row: 9, Col: 9}), "out of bounds")
}

// TestConnectedComponents_AllBlocked yields no components at all.
func TestConnectedComponents_AllBlocked(t *testing.T) {
	gg, err := gridgraph.FromRows([]string{"11", "11"})
	require.NoError(t, err)
	assert.Empty(t, gg.ConnectedComponents())
}

// TestConnected compares endpoints across and within components.
func TestConnected(t *testing.T) {
	gg, err := gridgraph.FromRows([]string{"S1", "1G"})
	require.NoError(t, err)
	start, _ := gg.Start()
	goal, _ := gg.Goal()

	assert.False(t, gg.Connected(start, goal))
	assert.True(t, gg.Connected(start, start))
	assert.False(t, gg.Connected(start, gridgraph.Position{Row: 0, Col: 1}), "wall is never connected")

	open, err := gridgraph.FromRows([]string{"S0", "0G"})
	require.NoError(t, err)
	assert.True(t, open.Connected(gridgraph.Position{Row: 0, Col: 0}, gridgraph.Position{Row: 1, Col: 1}))
}
