// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package knowledge

import (
	"fmt"

	"github.com/poiesic/civicmind/core"
)

// GraphPartition is the directed, labeled relationship graph over
// departments, services, issues, and procedures. It is immutable after
// construction and safe for concurrent reads.
type GraphPartition struct {
	nodes      map[string]*core.GraphNode
	out        map[string][]core.GraphEdge
	procedures map[string]*core.Procedure
	edgeCount  int
}

// NewGraphPartition builds the graph from a snapshot.
//
// Structural edges are derived from entity records (service managed_by
// department, issue relates_to service) and the snapshot's explicit
// relationship list is added on top. Every edge endpoint must resolve
// to a known node; a dangling edge fails the whole partition since a
// graph with broken references cannot answer reliably.
func NewGraphPartition(snap *GraphSnapshot) (*GraphPartition, error) {
	if snap == nil {
		return nil, fmt.Errorf("nil graph snapshot")
	}

	g := &GraphPartition{
		nodes:      make(map[string]*core.GraphNode),
		out:        make(map[string][]core.GraphEdge),
		procedures: make(map[string]*core.Procedure),
	}

	for _, dept := range snap.Entities.Departments {
		node := &core.GraphNode{
			ID:       dept.ID,
			Kind:     core.NodeDepartment,
			Name:     dept.Name,
			Category: dept.Type,
		}
		if err := g.addNode(node); err != nil {
			return nil, err
		}
	}

	var edges []core.GraphEdge

	for _, svc := range snap.Entities.Services {
		node := &core.GraphNode{ID: svc.ID, Kind: core.NodeService, Name: svc.Name}
		if err := g.addNode(node); err != nil {
			return nil, err
		}
		edges = append(edges, core.GraphEdge{
			From: svc.ID, To: svc.Department, Relation: core.RelationManagedBy,
		})
	}

	for _, issue := range snap.Entities.Issues {
		node := &core.GraphNode{ID: issue.ID, Kind: core.NodeIssue, Name: issue.Name}
		if err := g.addNode(node); err != nil {
			return nil, err
		}
		edges = append(edges, core.GraphEdge{
			From: issue.ID, To: issue.Service, Relation: core.RelationRelatesTo,
		})
	}

	for id, rec := range snap.Procedures {
		node := &core.GraphNode{ID: id, Kind: core.NodeProcedure, Name: rec.Title}
		if err := g.addNode(node); err != nil {
			return nil, err
		}
		g.procedures[id] = &core.Procedure{
			ID:         id,
			Title:      rec.Title,
			Department: rec.Department,
			Steps:      rec.Steps,
			Documents:  rec.Documents,
			Fees:       feesText(rec.Fees),
			Timeline:   rec.Timeline,
			Contact:    rec.Contact,
		}
	}

	for _, rel := range snap.Relationships {
		label := core.RelationLabel(rel.Type)
		if err := core.ValidateRelation(label); err != nil {
			return nil, fmt.Errorf("relationship %s->%s: %w", rel.From, rel.To, err)
		}
		edges = append(edges, core.GraphEdge{From: rel.From, To: rel.To, Relation: label})
	}

	for _, edge := range edges {
		if err := g.addEdge(edge); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *GraphPartition) addNode(node *core.GraphNode) error {
	if err := core.ValidateNode(node); err != nil {
		return err
	}
	g.nodes[node.ID] = node
	return nil
}

func (g *GraphPartition) addEdge(edge core.GraphEdge) error {
	if _, ok := g.nodes[edge.From]; !ok {
		return fmt.Errorf("%w: %s -> %s (%s): unknown source",
			core.ErrDanglingEdge, edge.From, edge.To, edge.Relation)
	}
	if _, ok := g.nodes[edge.To]; !ok {
		return fmt.Errorf("%w: %s -> %s (%s): unknown target",
			core.ErrDanglingEdge, edge.From, edge.To, edge.Relation)
	}
	g.out[edge.From] = append(g.out[edge.From], edge)
	g.edgeCount++
	return nil
}

// Node returns a node by ID.
func (g *GraphPartition) Node(id string) (*core.GraphNode, bool) {
	node, ok := g.nodes[id]
	return node, ok
}

// Procedure returns the procedure attributes of a procedure node.
func (g *GraphPartition) Procedure(id string) (*core.Procedure, bool) {
	proc, ok := g.procedures[id]
	return proc, ok
}

// Successors returns the targets of all outgoing edges of the given
// node that carry the given relation, filtered to the given node kind.
// Results follow edge insertion order.
func (g *GraphPartition) Successors(id string, relation core.RelationLabel, kind core.NodeKind) []*core.GraphNode {
	var result []*core.GraphNode
	for _, edge := range g.out[id] {
		if edge.Relation != relation {
			continue
		}
		node, ok := g.nodes[edge.To]
		if !ok || node.Kind != kind {
			continue
		}
		result = append(result, node)
	}
	return result
}

// NodeCount returns the number of nodes in the graph.
func (g *GraphPartition) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *GraphPartition) EdgeCount() int { return g.edgeCount }
