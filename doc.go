// Package lootbag organizes lootable items into a named tree of branches
// and resolves drop requests against it: which items a kill, a chest or a
// quest reward yields, with tunable odds, depth and stack size.
//
// Build a tree with Node, describe requests with Drop (usually through
// DropBuilder), then hand both to a Resolver. Pass a seeded Source to make
// the whole resolution reproducible.
package lootbag
