package lootbag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = `
items:
  - name: Adena
    props: {kind: currency}
branches:
  weapons:
    items:
      - name: Staff
        props: {damage: "12"}
      - name: Uzi
    branches:
      legendary:
        items:
          - name: Excalibur
  armor:
    items:
      - name: Boots
      - name: Socks
`

func TestLoadTable(t *testing.T) {
	root, err := LoadTable([]byte(sampleTable))
	require.NoError(t, err)

	assert.Equal(t, 1, root.SelfCount())
	assert.Equal(t, 6, root.AllCount())

	weapons, err := root.Branch("weapons")
	require.NoError(t, err)
	assert.Equal(t, 2, weapons.SelfCount())

	legendary, err := root.Branch("weapons/legendary")
	require.NoError(t, err)
	require.Equal(t, 1, legendary.SelfCount())
	assert.Equal(t, "Excalibur", legendary.Items()[0].Name)

	staff := weapons.Items()[0]
	assert.Equal(t, "Staff", staff.Name)
	assert.Equal(t, "12", staff.Prop("damage"))
}

func TestLoadTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "not yaml",
			yaml: "items: [}",
		},
		{
			name: "item without name",
			yaml: "items:\n  - props: {a: b}",
		},
		{
			name: "nested item without name",
			yaml: "branches:\n  weapons:\n    items:\n      - props: {a: b}",
		},
		{
			name: "branch name with separator",
			yaml: "branches:\n  \"a/b\":\n    items:\n      - name: X",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTable([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadTable_Empty(t *testing.T) {
	root, err := LoadTable([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, 0, root.AllCount())
}

func TestLoadTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	root, err := LoadTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, root.AllCount())

	_, err = LoadTableFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadTable_ResolvesDrops(t *testing.T) {
	root, err := LoadTable([]byte(sampleTable))
	require.NoError(t, err)

	drop := NewDrop().Path("armor").Stack(1, 2).MustBuild()
	items, err := NewResolver(nil).LootWith(root, []Drop{drop}, NewSeeded(1))
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, it := range items {
		assert.Contains(t, []string{"Boots", "Socks"}, it.Name)
	}
}
