package semantic

import (
	"sort"

	"stele/internal/ast"
	"stele/internal/errors"
)

// DefaultLevels orders authority levels from most to least
// authoritative. A subordinate node must sit strictly below its parent
// in this order.
var DefaultLevels = []string{
	"constitutional",
	"statute",
	"regulation",
	"ordinance",
	"guidance",
}

// HierarchyNode is one annotated provision in the authority graph,
// keyed "Struct.field".
type HierarchyNode struct {
	Key    string
	Level  string
	Parent string // subordinate_to target, empty for roots
	Pos    ast.Position
}

// HierarchyChecker builds the authority graph from level and
// subordinate_to annotations and reports structural conflicts:
// unknown levels, dangling references, cycles and level inversions.
type HierarchyChecker struct {
	levels []string
	rank   map[string]int
	nodes  map[string]*HierarchyNode
	order  []string // insertion order, for stable diagnostics
}

func NewHierarchyChecker(levels []string) *HierarchyChecker {
	if len(levels) == 0 {
		levels = DefaultLevels
	}
	rank := make(map[string]int, len(levels))
	for i, level := range levels {
		rank[level] = i
	}
	return &HierarchyChecker{
		levels: levels,
		rank:   rank,
		nodes:  make(map[string]*HierarchyNode),
	}
}

// Collect walks the program, including nested scopes, and records a
// node for every struct field carrying a level or subordinate_to
// annotation.
func (h *HierarchyChecker) Collect(program *ast.Program) {
	h.collectItems(program.Items)
}

func (h *HierarchyChecker) collectItems(items []ast.Item) {
	for _, item := range items {
		switch it := item.(type) {
		case *ast.Struct:
			for _, field := range it.Fields {
				h.collectField(it.Name.Value, field)
			}
		case *ast.Scope:
			h.collectItems(it.Items)
		}
	}
}

func (h *HierarchyChecker) collectField(structName string, field *ast.StructField) {
	var level, parent string
	for _, annot := range field.Annotations {
		switch annot.Name {
		case ast.AnnotLevel:
			if len(annot.Args) == 1 {
				level = annot.Args[0]
			}
		case ast.AnnotSubordinateTo:
			if len(annot.Args) == 1 {
				parent = annot.Args[0]
			}
		}
	}
	if level == "" && parent == "" {
		return
	}

	key := structName + "." + field.Name.Value
	h.nodes[key] = &HierarchyNode{
		Key:    key,
		Level:  level,
		Parent: parent,
		Pos:    field.Name.Pos,
	}
	h.order = append(h.order, key)
}

// Node returns the collected node for a "Struct.field" key.
func (h *HierarchyChecker) Node(key string) *HierarchyNode {
	return h.nodes[key]
}

// CheckConflicts reports every structural problem in the collected
// graph. Cycles are reported once per cycle, at the first member
// encountered in source order.
func (h *HierarchyChecker) CheckConflicts() []errors.CompilerError {
	var errs []errors.CompilerError
	inCycle := make(map[string]bool)

	for _, key := range h.order {
		node := h.nodes[key]

		if node.Level != "" {
			if _, known := h.rank[node.Level]; !known {
				errs = append(errs, errors.UnknownLevel(key, node.Level, h.levels, node.Pos))
			}
		}

		if node.Parent == "" {
			continue
		}
		parent, exists := h.nodes[node.Parent]
		if !exists {
			errs = append(errs, errors.DanglingSubordinate(key, node.Parent, node.Pos))
			continue
		}

		if cycle := h.findCycle(key); cycle != nil {
			if !inCycle[key] {
				for _, member := range cycle {
					inCycle[member] = true
				}
				errs = append(errs, errors.HierarchyCycle(cycle))
			}
			continue
		}

		if node.Level != "" && parent.Level != "" {
			childRank, childKnown := h.rank[node.Level]
			parentRank, parentKnown := h.rank[parent.Level]
			if childKnown && parentKnown && childRank <= parentRank {
				errs = append(errs, errors.LevelInversion(key, node.Level, node.Parent, parent.Level, node.Pos))
			}
		}
	}
	return errs
}

// findCycle follows the parent chain from start with a per-path
// visited set and returns the cycle it closes, or nil.
func (h *HierarchyChecker) findCycle(start string) []string {
	visited := make(map[string]bool)
	var path []string

	key := start
	for {
		if visited[key] {
			// trim the lead-in so the path starts at the cycle entry
			for i, member := range path {
				if member == key {
					return append(path[i:], key)
				}
			}
			return append(path, key)
		}
		visited[key] = true
		path = append(path, key)

		node, exists := h.nodes[key]
		if !exists || node.Parent == "" {
			return nil
		}
		key = node.Parent
	}
}

// Depths returns each node's distance from its root, for reporting and
// tooling. Nodes inside cycles are omitted.
func (h *HierarchyChecker) Depths() map[string]int {
	depths := make(map[string]int, len(h.nodes))
	for _, key := range h.order {
		if h.findCycle(key) != nil {
			continue
		}
		depth := 0
		for node := h.nodes[key]; node != nil && node.Parent != ""; node = h.nodes[node.Parent] {
			depth++
		}
		depths[key] = depth
	}
	return depths
}

// MutualExclusionPairs lists every enum declared mutually exclusive,
// for downstream consumers that need the constraint surfaced.
func MutualExclusionPairs(resolved *ResolvedProgram) []string {
	var names []string
	for name, enum := range resolved.Enums {
		if enum.MutuallyExclusive {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
