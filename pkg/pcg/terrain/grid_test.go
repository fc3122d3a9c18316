package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_Format(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"plain floor", Cell{Base: "cave_floor"}, "cave_floor"},
		{"creature", Cell{Base: "grass", Creature: "wolf"}, "grass;c:wolf"},
		{"item", Cell{Base: "grass", Item: "sword"}, "grass;i:sword"},
		{"both", Cell{Base: "sand", Creature: "crab", Item: "shell"}, "sand;c:crab;i:shell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.Format())
		})
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		input   string
		want    *Cell
		wantErr bool
	}{
		{"cave_floor", &Cell{Base: "cave_floor"}, false},
		{"grass;c:wolf", &Cell{Base: "grass", Creature: "wolf"}, false},
		{"grass;i:sword", &Cell{Base: "grass", Item: "sword"}, false},
		{"sand;c:crab;i:shell", &Cell{Base: "sand", Creature: "crab", Item: "shell"}, false},
		{"", nil, true},
		{";c:wolf", nil, true},
		{"grass;x:oops", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cell, err := ParseCell(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cell)
		})
	}
}

func TestCell_RoundTrip(t *testing.T) {
	cells := []*Cell{
		{Base: "floor"},
		{Base: "floor", Creature: "rat"},
		{Base: "floor", Item: "coin"},
		{Base: "floor", Creature: "rat", Item: "coin"},
	}

	for _, cell := range cells {
		parsed, err := ParseCell(cell.Format())
		require.NoError(t, err)
		assert.Equal(t, cell, parsed)
	}
}

func TestGrid_SetGetStrings(t *testing.T) {
	grid := NewGrid(4, 3)

	assert.Nil(t, grid.Get(0, 0))
	assert.Nil(t, grid.Get(-1, 5))

	grid.Set(1, 2, &Cell{Base: "grass", Creature: "deer"})
	grid.Set(99, 99, &Cell{Base: "ignored"})

	strs := grid.Strings()
	assert.Equal(t, "", strs[0][0])
	assert.Equal(t, "grass;c:deer", strs[1][2])
}
