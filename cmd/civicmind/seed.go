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


package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poiesic/civicmind/knowledge"
	"github.com/urfave/cli/v2"
)

// seedCommand writes the sample Chennai snapshots: the contact cache,
// the relationship graph, and the civic document corpus.
func seedCommand(c *cli.Context) error {
	dir := c.String("data")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := writeJSON(filepath.Join(dir, "civic_cache.json"), seedCache()); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, "civic_knowledge.json"), seedGraph()); err != nil {
		return err
	}

	docsDir := filepath.Join(dir, "civic_docs")
	if err := os.MkdirAll(docsDir, 0755); err != nil {
		return fmt.Errorf("failed to create documents directory: %w", err)
	}
	for name, text := range seedDocuments() {
		if err := os.WriteFile(filepath.Join(docsDir, name), []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	fmt.Printf("Seeded %s: cache, knowledge graph, %d documents\n", dir, len(seedDocuments()))
	return nil
}

func writeJSON(path string, value any) error {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func seedCache() knowledge.CacheData {
	return knowledge.CacheData{
		knowledge.CategoryEmergency: {
			"fire":                  "101",
			"police":                "100",
			"ambulance":             "108",
			"chennai_corporation":   "1913",
			"cmwssb_complaint":      "044-45674567",
			"electricity_complaint": "044-25675765",
			"gas_leak":              "1906",
			"women_helpline":        "1091",
			"child_helpline":        "1098",
			"disaster_management":   "108",
			"flood_helpline":        "1913",
		},
		knowledge.CategoryGovernment: {
			"collector_office":   "044-28520314",
			"mayor_office":       "044-25384681",
			"district_collector": "044-25620314",
			"cm_cell":            "044-25675765",
			"tn_police_control":  "044-28447095",
		},
		knowledge.CategoryServices: {
			"property_tax":          "1913",
			"water_tax":             "044-28451300",
			"birth_certificate":     "044-25384680",
			"death_certificate":     "044-25384680",
			"trade_license":         "044-25384689",
			"building_permit":       "044-25384690",
			"marriage_registration": "044-25384685",
		},
		knowledge.CategoryZones: {
			"zone_1_north":      "044-28451300 Ext.233",
			"zone_2_north_east": "044-28451300 Ext.213",
			"zone_3_central":    "044-28451300 Ext.212",
			"zone_4_south_west": "044-28451300 Ext.386",
			"zone_5_south":      "044-28451300 Ext.211",
			"zone_6_adyar":      "044-24912345",
			"zone_7_anna_nagar": "044-26152345",
			"zone_8_teynampet":  "044-24332345",
		},
		knowledge.CategoryQuickInfo: {
			"corporation_office_hours": "9:30 AM to 5:30 PM (Monday to Friday)",
			"emergency_services":       "24x7 Available",
			"water_supply_timings":     "6 AM to 8 AM and 6 PM to 8 PM",
			"garbage_collection":       "Daily 6 AM to 10 AM",
			"property_tax_due_date":    "31st March every year",
			"water_tax_frequency":      "Bi-monthly",
			"corporation_website":      "https://chennaicorporation.gov.in",
			"cmwssb_website":           "https://cmwssb.tn.gov.in",
		},
	}
}

func seedGraph() *knowledge.GraphSnapshot {
	var snap knowledge.GraphSnapshot

	snap.Entities.Departments = []knowledge.DepartmentRecord{
		{ID: "gcc", Name: "Greater Chennai Corporation", Type: "government"},
		{ID: "cmwssb", Name: "Chennai Metro Water Supply and Sewerage Board", Type: "government"},
		{ID: "tneb", Name: "Tamil Nadu Electricity Board", Type: "government"},
		{ID: "tn_police", Name: "Tamil Nadu Police", Type: "government"},
		{ID: "fire_dept", Name: "Fire Department", Type: "emergency"},
		{ID: "health_dept", Name: "Health Department", Type: "government"},
	}
	snap.Entities.Services = []knowledge.ServiceRecord{
		{ID: "water_supply", Name: "Water Supply", Department: "cmwssb"},
		{ID: "sewage", Name: "Sewage Management", Department: "cmwssb"},
		{ID: "property_tax", Name: "Property Tax", Department: "gcc"},
		{ID: "waste_mgmt", Name: "Waste Management", Department: "gcc"},
		{ID: "street_lights", Name: "Street Lighting", Department: "gcc"},
		{ID: "roads", Name: "Road Maintenance", Department: "gcc"},
		{ID: "electricity", Name: "Electricity", Department: "tneb"},
		{ID: "birth_cert", Name: "Birth Certificate", Department: "gcc"},
		{ID: "death_cert", Name: "Death Certificate", Department: "gcc"},
	}
	snap.Entities.Issues = []knowledge.IssueRecord{
		{ID: "no_water", Name: "No Water Supply", Service: "water_supply"},
		{ID: "water_contamination", Name: "Water Contamination", Service: "water_supply"},
		{ID: "pipeline_leak", Name: "Pipeline Leak", Service: "water_supply"},
		{ID: "sewage_overflow", Name: "Sewage Overflow", Service: "sewage"},
		{ID: "blocked_drain", Name: "Blocked Drain", Service: "sewage"},
		{ID: "garbage_not_collected", Name: "Garbage Not Collected", Service: "waste_mgmt"},
		{ID: "street_light_not_working", Name: "Street Light Not Working", Service: "street_lights"},
		{ID: "pothole", Name: "Pothole on Road", Service: "roads"},
		{ID: "power_cut", Name: "Power Cut", Service: "electricity"},
	}

	snap.Procedures = map[string]knowledge.ProcedureRecord{
		"water_connection_new": {
			Title:      "Apply for New Water Connection",
			Department: "cmwssb",
			Steps: []string{
				"Visit CMWSSB website or nearest office",
				"Fill Form No. 1 (New Connection Application)",
				"Submit required documents: Property tax receipt, ID proof, Address proof",
				"Pay connection charges: ₹1,500 for 15mm, ₹2,500 for 20mm",
				"Schedule site inspection",
				"Connection provided within 15 working days",
			},
			Documents: []string{"Property tax receipt", "ID proof", "Address proof", "Property ownership documents"},
			Fees:      map[string]any{"15mm": 1500.0, "20mm": 2500.0, "25mm": 4000.0},
			Timeline:  "15 working days",
			Contact:   "044-28451300",
		},
		"property_tax_payment": {
			Title:      "Pay Property Tax Online",
			Department: "gcc",
			Steps: []string{
				"Visit Chennai Corporation website",
				"Click on 'Online Services' -> 'Property Tax'",
				"Enter Property Assessment Number or search by owner name",
				"Verify property details",
				"Select payment method (Net Banking/Card/UPI)",
				"Make payment and download receipt",
			},
			Documents: []string{"Property Assessment Number", "Mobile number for OTP"},
			Fees:      "As per assessment",
			Timeline:  "Immediate",
			Contact:   "1913",
		},
		"street_light_repair": {
			Title:      "Report Street Light Not Working",
			Department: "gcc",
			Steps: []string{
				"Call Chennai Corporation helpline: 1913",
				"Provide exact location details",
				"Note complaint reference number",
				"Track status online or via phone",
				"Follow up if not resolved in 3 days",
			},
			Documents: []string{"Location details"},
			Fees:      "Free",
			Timeline:  "3-5 working days",
			Contact:   "1913",
		},
		"birth_certificate": {
			Title:      "Apply for Birth Certificate",
			Department: "gcc",
			Steps: []string{
				"Visit Chennai Corporation citizen portal",
				"Fill online application with child details",
				"Upload hospital birth certificate",
				"Upload parents' ID proofs",
				"Pay online fees ₹15",
				"Download certificate or collect from office",
			},
			Documents: []string{"Hospital birth certificate", "Parents' ID proof", "Address proof"},
			Fees:      15.0,
			Timeline:  "Immediate (online) or 3 days (office)",
			Contact:   "044-25384680",
		},
	}

	snap.Relationships = []knowledge.RelationshipRecord{
		{From: "no_water", To: "cmwssb", Type: "handled_by"},
		{From: "water_contamination", To: "cmwssb", Type: "handled_by"},
		{From: "pipeline_leak", To: "cmwssb", Type: "handled_by"},
		{From: "sewage_overflow", To: "cmwssb", Type: "handled_by"},
		{From: "blocked_drain", To: "cmwssb", Type: "handled_by"},
		{From: "garbage_not_collected", To: "gcc", Type: "handled_by"},
		{From: "street_light_not_working", To: "gcc", Type: "handled_by"},
		{From: "pothole", To: "gcc", Type: "handled_by"},
		{From: "power_cut", To: "tneb", Type: "handled_by"},
		{From: "water_supply", To: "water_connection_new", Type: "procedure"},
		{From: "property_tax", To: "property_tax_payment", Type: "procedure"},
		{From: "street_lights", To: "street_light_repair", Type: "procedure"},
		{From: "birth_cert", To: "birth_certificate", Type: "procedure"},
	}

	return &snap
}

func seedDocuments() map[string]string {
	return map[string]string{
		"water_supply_guidelines.txt": `CHENNAI METRO WATER SUPPLY AND SEWERAGE BOARD
Water Supply Guidelines - October 2025

WATER SUPPLY TIMINGS:
- Morning: 6:00 AM to 8:00 AM
- Evening: 6:00 PM to 8:00 PM
- Total supply duration: 4 hours per day

ZONE WISE WATER SUPPLY:
Zone 1 (North): Anna Nagar, Kilpauk, Purasawalkam
Zone 2 (North East): Royapuram, Thiruvottiyur, Manali
Zone 3 (Central): Egmore, Chetpet, Nungambakkam
Zone 4 (South West): Kodambakkam, Saidapet, West Mambalam
Zone 5 (South): Adyar, Thiruvanmiyur, Sholinganallur

CONTACT INFORMATION:
24x7 Complaint Cell: 044-45674567
Customer Care: 044-28451300
Website: https://cmwssb.tn.gov.in`,

		"property_tax_rules_2025.txt": `GREATER CHENNAI CORPORATION
Property Tax Assessment Rules - 2025

PROPERTY TAX RATES:
Residential Properties:
- Built-up area up to 600 sq ft: ₹3 per sq ft
- Built-up area 600-1200 sq ft: ₹6 per sq ft
- Built-up area above 1200 sq ft: ₹10 per sq ft

DUE DATES AND PENALTIES:
- Annual due date: 31st March
- Late payment penalty: 2% per month

EXEMPTIONS AVAILABLE:
- Senior citizens (above 65): 25% discount
- Persons with disabilities: 50% discount`,

		"waste_management_schedule.txt": `GREATER CHENNAI CORPORATION
Solid Waste Management Schedule - October 2025

GARBAGE COLLECTION TIMINGS:
Residential Areas: 6:00 AM to 10:00 AM (Daily)
Commercial Areas: 10:00 PM to 2:00 AM (Daily)
Markets: 11:00 PM to 4:00 AM (Daily)

COMPLAINTS AND REPORTING:
- Namma Chennai App: Report missed collections
- Helpline: 1913 (24x7)
- WhatsApp: 94440 42097`,

		"emergency_services_directory.txt": `CHENNAI EMERGENCY SERVICES DIRECTORY
Updated: October 2025

FIRE AND RESCUE SERVICES:
Emergency Number: 101
Control Room: 044-28447788

POLICE SERVICES:
Emergency: 100
Control Room: 044-28447700
Women Helpline: 1091 (24x7)
Child Helpline: 1098

MEDICAL EMERGENCY:
Ambulance: 108 (Free service)
Blood bank emergency: 104`,
	}
}
