package lootbag

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// tableDef mirrors the YAML authoring schema for a loot tree:
//
//	items:
//	  - name: Staff
//	    props: {damage: "12"}
//	branches:
//	  weapons:
//	    items:
//	      - name: Uzi
type tableDef struct {
	Items    []itemDef           `yaml:"items"`
	Branches map[string]tableDef `yaml:"branches"`
}

type itemDef struct {
	Name  string            `yaml:"name"`
	Props map[string]string `yaml:"props"`
}

// LoadTable parses a YAML loot-table definition into a tree.
func LoadTable(data []byte) (*Node, error) {
	var def tableDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing loot table: %w", err)
	}
	return buildNode(def, "")
}

// LoadTableFile reads and parses a YAML loot-table file.
func LoadTableFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading loot table: %w", err)
	}
	return LoadTable(data)
}

func buildNode(def tableDef, at string) (*Node, error) {
	node := NewNode()

	for _, it := range def.Items {
		if it.Name == "" {
			return nil, fmt.Errorf("item without a name at %q", displayPath(at))
		}
		node.Add(NewItemWith(it.Name, it.Props))
	}

	for name, childDef := range def.Branches {
		if name == "" || strings.Contains(name, Separator) {
			return nil, fmt.Errorf("bad branch name %q at %q", name, displayPath(at))
		}
		childPath := at + Separator + name
		child, err := buildNode(childDef, childPath)
		if err != nil {
			return nil, err
		}
		node.AddBranch(name, child)
	}

	return node, nil
}

func displayPath(at string) string {
	if at == "" {
		return Separator
	}
	return at
}
