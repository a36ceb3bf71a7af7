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


package strategy

import (
	"context"
	"strings"

	"github.com/poiesic/civicmind/core"
	"github.com/poiesic/civicmind/knowledge"
)

var procedureKeywords = []keywordEntry{
	{"new water connection", "water_connection_new"},
	{"water connection", "water_connection_new"},
	{"apply water", "water_connection_new"},
	{"property tax", "property_tax_payment"},
	{"pay tax", "property_tax_payment"},
	{"tax payment", "property_tax_payment"},
	{"street light", "street_light_repair"},
	{"light repair", "street_light_repair"},
	{"street lamp", "street_light_repair"},
	{"birth certificate", "birth_certificate"},
	{"birth cert", "birth_certificate"},
}

// issueKeywords maps query keywords to candidate issue node IDs, tried
// in order until one yields a complete chain.
var issueKeywords = []struct {
	keyword string
	issues  []string
}{
	{"water", []string{"no_water", "water_contamination", "pipeline_leak"}},
	{"sewage", []string{"sewage_overflow", "blocked_drain"}},
	{"garbage", []string{"garbage_not_collected"}},
	{"waste", []string{"garbage_not_collected"}},
	{"street light", []string{"street_light_not_working"}},
	{"road", []string{"pothole"}},
	{"electricity", []string{"power_cut"}},
	{"power", []string{"power_cut"}},
}

// ReasoningShape is a registrable template for multi-hop reasoning.
// Matches decides whether the shape applies to a query; Steps walks the
// graph and produces the ordered trace. A shape returning no steps is
// treated as not matching after all.
type ReasoningShape struct {
	Name    string
	Matches func(query string) bool
	Steps   func(query string, graph *knowledge.GraphPartition) []core.ReasoningStep
}

// GraphStrategy answers procedural and responsibility questions from
// the relationship graph. Resolution order: registered reasoning shapes
// first, then direct procedure lookup, then the issue -> service ->
// department chain. Partial chains are Empty, never partial answers.
type GraphStrategy struct {
	store  *knowledge.Store
	shapes []ReasoningShape
}

// GraphOption configures a GraphStrategy.
type GraphOption func(*GraphStrategy) error

// WithReasoningShape registers an additional reasoning shape. Shapes
// are tried in registration order after the built-in ones.
func WithReasoningShape(shape ReasoningShape) GraphOption {
	return func(s *GraphStrategy) error {
		s.shapes = append(s.shapes, shape)
		return nil
	}
}

// NewGraphStrategy creates the graph strategy with the built-in
// reasoning shapes (water repair, property tax) registered.
func NewGraphStrategy(store *knowledge.Store, opts ...GraphOption) (*GraphStrategy, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	s := &GraphStrategy{
		store:  store,
		shapes: []ReasoningShape{waterRepairShape(), propertyTaxShape()},
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *GraphStrategy) Kind() core.StrategyKind { return core.StrategyGraph }

func (s *GraphStrategy) Available() bool {
	_, err := s.store.Graph()
	return err == nil
}

func (s *GraphStrategy) Lookup(ctx context.Context, query string) core.StrategyResult {
	graph, err := s.store.Graph()
	if err != nil {
		return core.EmptyResult()
	}

	lower := strings.ToLower(query)

	for _, shape := range s.shapes {
		if !shape.Matches(lower) {
			continue
		}
		steps := shape.Steps(lower, graph)
		if len(steps) > 0 {
			return core.FoundResult(core.ReasoningChain{Steps: steps})
		}
	}

	if proc, ok := s.resolveProcedure(graph, lower); ok {
		return core.FoundResult(core.ProcedureAnswer{Procedure: proc})
	}

	if resolution, ok := s.resolveDepartment(graph, lower); ok {
		return core.FoundResult(resolution)
	}

	return core.EmptyResult()
}

// resolveProcedure matches procedure keywords against the query and
// returns the first procedure found in the graph.
func (s *GraphStrategy) resolveProcedure(graph *knowledge.GraphPartition, lower string) (*core.Procedure, bool) {
	for _, entry := range procedureKeywords {
		if !strings.Contains(lower, entry.keyword) {
			continue
		}
		if proc, ok := graph.Procedure(entry.key); ok {
			return proc, true
		}
	}
	return nil, false
}

// resolveDepartment walks issue -> service -> department. Only a
// complete two-hop chain produces a resolution.
func (s *GraphStrategy) resolveDepartment(graph *knowledge.GraphPartition, lower string) (core.DepartmentResolution, bool) {
	for _, entry := range issueKeywords {
		if !strings.Contains(lower, entry.keyword) {
			continue
		}
		for _, issueID := range entry.issues {
			issue, ok := graph.Node(issueID)
			if !ok {
				continue
			}
			services := graph.Successors(issueID, core.RelationRelatesTo, core.NodeService)
			if len(services) == 0 {
				continue
			}
			service := services[0]
			departments := graph.Successors(service.ID, core.RelationManagedBy, core.NodeDepartment)
			if len(departments) == 0 {
				continue
			}
			department := departments[0]
			return core.DepartmentResolution{
				IssueID:        issue.ID,
				IssueName:      issue.Name,
				ServiceID:      service.ID,
				ServiceName:    service.Name,
				DepartmentID:   department.ID,
				DepartmentName: department.Name,
			}, true
		}
	}
	return core.DepartmentResolution{}, false
}

// waterRepairShape traces a water or pipeline repair request down to
// the responsible department and its contact, with an extra zone step
// when the query names Anna Nagar.
func waterRepairShape() ReasoningShape {
	return ReasoningShape{
		Name: "water-repair",
		Matches: func(query string) bool {
			return strings.Contains(query, "repair") &&
				(strings.Contains(query, "water") || strings.Contains(query, "pipeline"))
		},
		Steps: func(query string, graph *knowledge.GraphPartition) []core.ReasoningStep {
			issue, ok := graph.Node("pipeline_leak")
			if !ok {
				return nil
			}
			services := graph.Successors(issue.ID, core.RelationRelatesTo, core.NodeService)
			if len(services) == 0 {
				return nil
			}
			service := services[0]
			departments := graph.Successors(service.ID, core.RelationManagedBy, core.NodeDepartment)
			if len(departments) == 0 {
				return nil
			}
			department := departments[0]

			steps := []core.ReasoningStep{
				{Step: 1, Action: "Identify Issue", Result: "Water pipeline repair needed", Node: issue.ID},
				{Step: 2, Action: "Find Responsible Service", Result: service.Name, Node: service.ID},
				{Step: 3, Action: "Find Responsible Department", Result: department.Name, Node: department.ID},
				{Step: 4, Action: "Get Contact Information",
					Result:  "Call CMWSSB complaint cell: 044-45674567",
					Details: "Available 24x7 for emergency repairs"},
			}
			if strings.Contains(query, "anna nagar") {
				steps = append(steps, core.ReasoningStep{
					Step: 5, Action: "Area-specific Contact",
					Result:  "Anna Nagar falls under North Zone",
					Details: "Zone contact: 044-28451300 Ext.233",
				})
			}
			return steps
		},
	}
}

// propertyTaxShape traces a property tax payment question to the
// corporation and its online procedure.
func propertyTaxShape() ReasoningShape {
	return ReasoningShape{
		Name: "property-tax",
		Matches: func(query string) bool {
			return strings.Contains(query, "property tax") &&
				(strings.Contains(query, "pay") || strings.Contains(query, "how"))
		},
		Steps: func(query string, graph *knowledge.GraphPartition) []core.ReasoningStep {
			service, ok := graph.Node("property_tax")
			if !ok {
				return nil
			}
			departments := graph.Successors(service.ID, core.RelationManagedBy, core.NodeDepartment)
			if len(departments) == 0 {
				return nil
			}
			department := departments[0]

			steps := []core.ReasoningStep{
				{Step: 1, Action: "Identify Service", Result: service.Name + " Payment", Node: service.ID},
				{Step: 2, Action: "Find Department", Result: department.Name, Node: department.ID},
			}
			if proc, ok := graph.Procedure("property_tax_payment"); ok {
				steps = append(steps, core.ReasoningStep{
					Step: 3, Action: "Get Procedure",
					Result: "Online payment procedure available", Node: proc.ID,
				})
			}
			return steps
		},
	}
}
