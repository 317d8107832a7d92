// Copyright (c) 2025 rrtplan authors
// SPDX-License-Identifier: MIT

package covertree

import "math"

// NodeHandle is an opaque, stable reference to a node owned by a Tree.
// It is an index into the tree's node pool, not a pointer: this mirrors
// the pool-allocator topology of the originating system while staying
// index-based, as index handles sidestep the aliasing concerns of
// cross-referencing pointers (parent/children back-references) that a
// pointer-heavy translation would otherwise carry.
//
// A handle remains valid until the next RemoveNode/RemoveSubtree/Reset
// that frees it; logical invalidation via useNN never frees a handle.
type NodeHandle int32

// InvalidHandle is the null NodeHandle, returned by operations that
// found nothing or made no structural change.
const InvalidHandle NodeHandle = -1

// treeNode is the structural payload behind a NodeHandle.
type treeNode struct {
	q            []float64
	parent       NodeHandle
	level        int
	children     []NodeHandle
	hasSelfChild bool
	userdata     uint32
	useNN        bool
}

func (n *treeNode) reset() {
	n.q = n.q[:0]
	n.parent = InvalidHandle
	n.level = 0
	n.children = n.children[:0]
	n.hasSelfChild = false
	n.userdata = 0
	n.useNN = false
}

// Tree is a cover-tree spatial index over dof-dimensional configuration
// vectors. The zero value is not ready to use; construct one with New.
//
// A Tree is single-writer: Insert, RemoveNode, RemoveSubtree,
// InvalidateNodesWithParent, Extend and Reset must be externally
// serialized. Read-only queries (FindNearest, GetVectorConfig,
// GetNodesVector, DumpTree) may run concurrently with each other only
// while no writer is active.
type Tree struct {
	cfg     Config
	oracles Oracles

	dof                int
	stepLength         float64
	maxDistance        float64
	base               float64
	fBaseInv           float64
	fBaseChildMult     float64
	fromGoal           bool
	extendIterationCap int

	minDistance    float64
	maxLevel       int
	minLevel       int
	fMaxLevelBound float64

	numNodes int
	root     NodeHandle
	pool     *pool
	levels   []*levelSet // indexed by encLevel(L); grown on demand, never shrunk

	// scratch buffers. removeCache is reused across RemoveNode calls to
	// avoid allocation; curFrontier and nextFrontier are only cleared by
	// Init, since FindNearest keeps its frontiers local to each call.
	curFrontier  []frontierEntry
	nextFrontier []frontierEntry
	removeCache  [][]NodeHandle
}

// frontierEntry pairs a candidate node with its distance to the query
// or inserted configuration during a single descent.
type frontierEntry struct {
	node NodeHandle
	dist float64
}

// New constructs a Tree ready for insertion.
func New(cfg Config, oracles Oracles) (*Tree, error) {
	if cfg.DOF <= 0 {
		return nil, errDOFMustBePositive
	}
	if oracles == nil {
		return nil, errOraclesRequired
	}
	if cfg.MaxDistance <= 0 {
		return nil, errMaxDistanceMustBePositive
	}
	t := &Tree{}
	t.Init(cfg, oracles)
	return t, nil
}

// Init (re)initializes the tree, discarding any existing nodes. It
// chooses base=2.0 by convention (unless overridden) and derives
// maxLevel from maxDistance, exactly as the originating system's
// Init(planner, dof, metric, stepLength, maxDistance).
func (t *Tree) Init(cfg Config, oracles Oracles) {
	cfg.setDefaults()

	t.cfg = cfg
	t.oracles = oracles
	t.dof = cfg.DOF
	t.stepLength = cfg.StepLength
	t.maxDistance = cfg.MaxDistance
	t.base = cfg.Base
	t.fBaseInv = 1 / cfg.Base
	t.fBaseChildMult = cfg.BaseChildMult
	t.fromGoal = cfg.FromGoal
	t.extendIterationCap = cfg.ExtendIterationCap

	t.minDistance = 0.001 * cfg.StepLength
	t.maxLevel = int(math.Ceil(math.Log(cfg.MaxDistance) / math.Log(cfg.Base)))
	t.minLevel = t.maxLevel - 1
	t.fMaxLevelBound = math.Pow(cfg.Base, float64(t.maxLevel))

	t.numNodes = 0
	t.root = InvalidHandle
	t.pool = newPool(cfg.DOF)
	t.levels = nil
	t.levelSetAt(t.maxLevel)

	t.curFrontier = t.curFrontier[:0]
	t.nextFrontier = t.nextFrontier[:0]
	t.removeCache = nil
}

// Reset discards all nodes and scratch state, keeping the tree's
// configuration and oracles. Equivalent to re-running Init with the
// same arguments.
func (t *Tree) Reset() {
	t.Init(t.cfg, t.oracles)
}

