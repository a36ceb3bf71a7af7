package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poiesic/civicmind/knowledge"
)

func testCacheData() knowledge.CacheData {
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
			"flood_helpline":        "1913",
		},
		knowledge.CategoryGovernment: {
			"collector_office": "044-28520314",
			"mayor_office":     "044-25384681",
			"cm_cell":          "044-25675765",
		},
		knowledge.CategoryServices: {
			"property_tax":      "1913",
			"water_tax":         "044-28451300",
			"birth_certificate": "044-25384680",
			"trade_license":     "044-25384689",
		},
		knowledge.CategoryZones: {
			"zone_1_north":      "044-28451300 Ext.233",
			"zone_6_adyar":      "044-24912345",
			"zone_7_anna_nagar": "044-26152345",
		},
		knowledge.CategoryQuickInfo: {
			"corporation_office_hours": "9:30 AM to 5:30 PM (Monday to Friday)",
			"water_supply_timings":     "6 AM to 8 AM and 6 PM to 8 PM",
			"garbage_collection":       "Daily 6 AM to 10 AM",
			"property_tax_due_date":    "31st March every year",
			"corporation_website":      "https://chennaicorporation.gov.in",
			"cmwssb_website":           "https://cmwssb.tn.gov.in",
		},
	}
}

func testGraphSnapshot() *knowledge.GraphSnapshot {
	snap := &knowledge.GraphSnapshot{
		Procedures: map[string]knowledge.ProcedureRecord{
			"water_connection_new": {
				Title:      "Apply for New Water Connection",
				Department: "cmwssb",
				Steps: []string{
					"Visit CMWSSB website or nearest office",
					"Fill Form No. 1 (New Connection Application)",
					"Submit required documents",
					"Pay connection charges",
					"Schedule site inspection",
					"Connection provided within 15 working days",
				},
				Documents: []string{"Property tax receipt", "ID proof", "Address proof"},
				Fees:      map[string]any{"15mm": float64(1500), "20mm": float64(2500)},
				Timeline:  "15 working days",
				Contact:   "044-28451300",
			},
			"property_tax_payment": {
				Title:      "Pay Property Tax Online",
				Department: "gcc",
				Steps:      []string{"Visit Chennai Corporation website", "Enter assessment number", "Make payment"},
				Fees:       "As per assessment",
				Timeline:   "Immediate",
				Contact:    "1913",
			},
			"street_light_repair": {
				Title:      "Report Street Light Not Working",
				Department: "gcc",
				Steps:      []string{"Call helpline 1913", "Provide location", "Note reference number"},
				Fees:       "Free",
				Timeline:   "3-5 working days",
				Contact:    "1913",
			},
			"birth_certificate": {
				Title:      "Apply for Birth Certificate",
				Department: "gcc",
				Steps:      []string{"Visit citizen portal", "Fill application", "Pay fees", "Download certificate"},
				Fees:       float64(15),
				Timeline:   "Immediate (online) or 3 days (office)",
				Contact:    "044-25384680",
			},
		},
		Relationships: []knowledge.RelationshipRecord{
			{From: "no_water", To: "cmwssb", Type: "handled_by"},
			{From: "pipeline_leak", To: "cmwssb", Type: "handled_by"},
			{From: "sewage_overflow", To: "cmwssb", Type: "handled_by"},
			{From: "garbage_not_collected", To: "gcc", Type: "handled_by"},
			{From: "power_cut", To: "tneb", Type: "handled_by"},
			{From: "water_supply", To: "water_connection_new", Type: "procedure"},
			{From: "property_tax", To: "property_tax_payment", Type: "procedure"},
			{From: "street_lights", To: "street_light_repair", Type: "procedure"},
		},
	}
	snap.Entities.Departments = []knowledge.DepartmentRecord{
		{ID: "gcc", Name: "Greater Chennai Corporation", Type: "government"},
		{ID: "cmwssb", Name: "Chennai Metro Water Supply and Sewerage Board", Type: "government"},
		{ID: "tneb", Name: "Tamil Nadu Electricity Board", Type: "government"},
	}
	snap.Entities.Services = []knowledge.ServiceRecord{
		{ID: "water_supply", Name: "Water Supply", Department: "cmwssb"},
		{ID: "sewage", Name: "Sewage Management", Department: "cmwssb"},
		{ID: "property_tax", Name: "Property Tax", Department: "gcc"},
		{ID: "waste_mgmt", Name: "Waste Management", Department: "gcc"},
		{ID: "street_lights", Name: "Street Lighting", Department: "gcc"},
		{ID: "electricity", Name: "Electricity", Department: "tneb"},
	}
	snap.Entities.Issues = []knowledge.IssueRecord{
		{ID: "no_water", Name: "No Water Supply", Service: "water_supply"},
		{ID: "pipeline_leak", Name: "Pipeline Leak", Service: "water_supply"},
		{ID: "sewage_overflow", Name: "Sewage Overflow", Service: "sewage"},
		{ID: "garbage_not_collected", Name: "Garbage Not Collected", Service: "waste_mgmt"},
		{ID: "power_cut", Name: "Power Cut", Service: "electricity"},
	}
	return snap
}

func testStore(t *testing.T) *knowledge.Store {
	t.Helper()
	graph, err := knowledge.NewGraphPartition(testGraphSnapshot())
	require.NoError(t, err)
	return knowledge.NewStoreFromPartitions(knowledge.NewCachePartition(testCacheData()), graph, nil)
}
