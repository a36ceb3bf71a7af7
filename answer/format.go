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

package answer

import (
	"fmt"
	"strings"

	"github.com/poiesic/civicmind/core"
)

// Provenance lines appended to formatted answers so callers can tell
// which knowledge representation produced them.
const (
	sourceCache     = "Source: cached civic directory"
	sourceGraph     = "Source: civic knowledge graph"
	sourceDocuments = "Source: indexed civic documents"
)

// formatResult renders a found result into user-facing text through a
// per-kind template. All templates are plain text with one field per
// line so answers read the same in a terminal and in a chat window.
func formatResult(result core.StrategyResult) (string, error) {
	if result.Status != core.ResultFound {
		return "", fmt.Errorf("%w: status %d", ErrUnformattableResult, result.Status)
	}

	switch p := result.Payload.(type) {
	case core.EmergencyContact:
		return formatEmergencyContact(p), nil
	case core.GovernmentContact:
		return formatGovernmentContact(p), nil
	case core.CivicService:
		return formatCivicService(p), nil
	case core.ZoneContact:
		return formatZoneContact(p), nil
	case core.QuickInfo:
		return formatQuickInfo(p), nil
	case core.AllContacts:
		return formatAllContacts(p), nil
	case core.WebsiteList:
		return formatWebsiteList(p), nil
	case core.ProcedureAnswer:
		return formatProcedure(p), nil
	case core.DepartmentResolution:
		return formatDepartmentResolution(p), nil
	case core.ReasoningChain:
		return formatReasoningChain(p), nil
	case core.DocumentHits:
		return formatDocumentHits(p), nil
	case core.Conversational:
		return p.Text, nil
	default:
		return "", fmt.Errorf("%w: kind %q", ErrUnformattableResult, result.Kind)
	}
}

func formatEmergencyContact(p core.EmergencyContact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Emergency Contact\n", p.Service)
	fmt.Fprintf(&b, "Number: %s\n", p.Number)
	if p.Availability != "" {
		fmt.Fprintf(&b, "Availability: %s\n", p.Availability)
	}
	b.WriteString(sourceCache)
	return b.String()
}

func formatGovernmentContact(p core.GovernmentContact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Office)
	fmt.Fprintf(&b, "Contact: %s\n", p.Number)
	if p.Timing != "" {
		fmt.Fprintf(&b, "Timing: %s\n", p.Timing)
	}
	b.WriteString(sourceCache)
	return b.String()
}

func formatCivicService(p core.CivicService) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Service)
	fmt.Fprintf(&b, "Helpline: %s\n", p.Helpline)
	if p.Timing != "" {
		fmt.Fprintf(&b, "Timing: %s\n", p.Timing)
	}
	b.WriteString(sourceCache)
	return b.String()
}

func formatZoneContact(p core.ZoneContact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Zone Office\n", p.Zone)
	fmt.Fprintf(&b, "Contact: %s\n", p.Contact)
	if p.Services != "" {
		fmt.Fprintf(&b, "Services: %s\n", p.Services)
	}
	b.WriteString(sourceCache)
	return b.String()
}

func formatQuickInfo(p core.QuickInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Topic)
	fmt.Fprintf(&b, "%s\n", p.Details)
	b.WriteString(sourceCache)
	return b.String()
}

func formatAllContacts(p core.AllContacts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Title)
	for _, contact := range p.Contacts {
		fmt.Fprintf(&b, "- %s: %s\n", contact.Label, contact.Value)
	}
	b.WriteString(sourceCache)
	return b.String()
}

func formatWebsiteList(p core.WebsiteList) string {
	var b strings.Builder
	b.WriteString("Official Websites\n")
	for _, site := range p.Sites {
		fmt.Fprintf(&b, "- %s: %s\n", site.Label, site.Value)
	}
	b.WriteString(sourceCache)
	return b.String()
}

func formatProcedure(p core.ProcedureAnswer) string {
	proc := p.Procedure

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", proc.Title)
	if proc.Department != "" {
		fmt.Fprintf(&b, "Department: %s\n", proc.Department)
	}
	b.WriteString("Steps:\n")
	for i, step := range proc.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	if len(proc.Documents) > 0 {
		fmt.Fprintf(&b, "Documents required: %s\n", strings.Join(proc.Documents, ", "))
	}
	if proc.Fees != "" {
		fmt.Fprintf(&b, "Fees: %s\n", proc.Fees)
	}
	if proc.Timeline != "" {
		fmt.Fprintf(&b, "Timeline: %s\n", proc.Timeline)
	}
	if proc.Contact != "" {
		fmt.Fprintf(&b, "Contact: %s\n", proc.Contact)
	}
	b.WriteString(sourceGraph)
	return b.String()
}

func formatDepartmentResolution(p core.DepartmentResolution) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Issue: %s\n", p.IssueName)
	fmt.Fprintf(&b, "Handled under: %s\n", p.ServiceName)
	fmt.Fprintf(&b, "Responsible department: %s\n", p.DepartmentName)
	fmt.Fprintf(&b, "%s (%s -> %s -> %s)", sourceGraph, p.IssueID, p.ServiceID, p.DepartmentID)
	return b.String()
}

func formatReasoningChain(p core.ReasoningChain) string {
	var b strings.Builder
	b.WriteString("Step-by-step resolution:\n")
	for _, step := range p.Steps {
		fmt.Fprintf(&b, "%d. %s: %s\n", step.Step, step.Action, step.Result)
		if step.Details != "" {
			fmt.Fprintf(&b, "   %s\n", step.Details)
		}
	}
	b.WriteString(sourceGraph)
	return b.String()
}

func formatDocumentHits(p core.DocumentHits) string {
	var b strings.Builder
	if len(p.Documents) > 0 {
		b.WriteString("From civic documents:\n")
		for i, hit := range p.Documents {
			fmt.Fprintf(&b, "[%d] %s (relevance %.2f)\n", i+1, hit.Chunk.Source, hit.Score)
			fmt.Fprintf(&b, "%s\n", hit.Chunk.Text)
		}
	}
	if len(p.WebSources) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("From web sources:\n")
		for i, item := range p.WebSources {
			fmt.Fprintf(&b, "[%d] %s", i+1, item.Title)
			if item.Source != "" {
				fmt.Fprintf(&b, " (%s)", item.Source)
			}
			b.WriteString("\n")
			if item.Snippet != "" {
				fmt.Fprintf(&b, "%s\n", item.Snippet)
			}
			if item.URL != "" {
				fmt.Fprintf(&b, "%s\n", item.URL)
			}
		}
	}
	// Web-only results carry their own attribution per item, so the
	// indexed-documents line only applies when local hits are present.
	if len(p.Documents) > 0 {
		b.WriteString(sourceDocuments)
	}
	return b.String()
}
