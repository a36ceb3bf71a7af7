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
	"sort"
	"strings"

	"github.com/poiesic/civicmind/core"
	"github.com/poiesic/civicmind/knowledge"
)

// keywordEntry maps a query keyword to a cache table key. Entries are
// checked in slice order; the first match wins, so broader keywords
// belong later in the table.
type keywordEntry struct {
	keyword string
	key     string
}

var emergencyKeywords = []keywordEntry{
	{"fire", "fire"},
	{"police", "police"},
	{"ambulance", "ambulance"},
	{"medical", "ambulance"},
	{"hospital", "ambulance"},
	{"flood", "flood_helpline"},
	{"water emergency", "cmwssb_complaint"},
	{"electricity", "electricity_complaint"},
	{"gas", "gas_leak"},
	{"women", "women_helpline"},
	{"child", "child_helpline"},
	{"corporation", "chennai_corporation"},
}

// roundTheClock lists emergency services staffed 24x7; everything else
// in the emergency table answers during office hours only.
var roundTheClock = map[string]bool{
	"fire":      true,
	"police":    true,
	"ambulance": true,
}

var governmentKeywords = []keywordEntry{
	{"collector", "collector_office"},
	{"mayor", "mayor_office"},
	{"district", "district_collector"},
	{"chief minister", "cm_cell"},
	{"cm", "cm_cell"},
	{"police control", "tn_police_control"},
}

var serviceKeywords = []keywordEntry{
	{"property tax", "property_tax"},
	{"water tax", "water_tax"},
	{"birth certificate", "birth_certificate"},
	{"death certificate", "death_certificate"},
	{"trade license", "trade_license"},
	{"building permit", "building_permit"},
	{"marriage", "marriage_registration"},
}

var zoneKeywords = []keywordEntry{
	{"north east", "zone_2_north_east"},
	{"south west", "zone_4_south_west"},
	{"north", "zone_1_north"},
	{"central", "zone_3_central"},
	{"south", "zone_5_south"},
	{"adyar", "zone_6_adyar"},
	{"anna nagar", "zone_7_anna_nagar"},
	{"teynampet", "zone_8_teynampet"},
}

var quickInfoKeywords = []keywordEntry{
	{"office hours", "corporation_office_hours"},
	{"timing", "corporation_office_hours"},
	{"water supply", "water_supply_timings"},
	{"garbage", "garbage_collection"},
	{"tax due", "property_tax_due_date"},
}

var websiteKeys = []string{"corporation_website", "cmwssb_website"}

// CacheStrategy answers from the static cache partition: a coarse
// category classification, then the category's keyword table in order.
// It never fails; anything it can't match is Empty.
type CacheStrategy struct {
	store *knowledge.Store
}

// NewCacheStrategy creates the cache strategy over the store.
func NewCacheStrategy(store *knowledge.Store) (*CacheStrategy, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	return &CacheStrategy{store: store}, nil
}

func (s *CacheStrategy) Kind() core.StrategyKind { return core.StrategyCache }

func (s *CacheStrategy) Available() bool {
	_, err := s.store.Cache()
	return err == nil
}

func (s *CacheStrategy) Lookup(ctx context.Context, query string) core.StrategyResult {
	cache, err := s.store.Cache()
	if err != nil {
		return core.EmptyResult()
	}

	lower := strings.ToLower(query)

	if containsAny(lower, "emergency", "helpline", "contact", "phone", "number") {
		if result, ok := s.lookupEmergency(cache, lower); ok {
			return result
		}
	}
	if containsAny(lower, "office", "collector", "mayor", "government") {
		if result, ok := s.lookupGovernment(cache, lower); ok {
			return result
		}
	}
	if containsAny(lower, "tax", "certificate", "license", "permit") {
		if result, ok := s.lookupService(cache, lower); ok {
			return result
		}
	}
	if containsAny(lower, "zone", "area", "ward", "anna nagar", "adyar") {
		if result, ok := s.lookupZone(cache, lower); ok {
			return result
		}
	}
	if containsAny(lower, "timing", "hours", "schedule", "website") {
		if result, ok := s.lookupQuickInfo(cache, lower); ok {
			return result
		}
	}

	return core.EmptyResult()
}

func (s *CacheStrategy) lookupEmergency(cache *knowledge.CachePartition, lower string) (core.StrategyResult, bool) {
	for _, entry := range emergencyKeywords {
		if !strings.Contains(lower, entry.keyword) {
			continue
		}
		number, ok := cache.Entry(knowledge.CategoryEmergency, entry.key)
		if !ok {
			continue
		}
		availability := "Office hours"
		if roundTheClock[entry.key] {
			availability = "24x7"
		}
		return core.FoundResult(core.EmergencyContact{
			Service:      titleCase(entry.keyword),
			Number:       number,
			Availability: availability,
		}), true
	}

	// "all emergency contacts" style queries dump the whole table
	if strings.Contains(lower, "emergency") && strings.Contains(lower, "all") {
		table := cache.Category(knowledge.CategoryEmergency)
		if len(table) > 0 {
			return core.FoundResult(core.AllContacts{
				Title:    "All Emergency Contacts",
				Contacts: sortedContacts(table),
			}), true
		}
	}

	return core.StrategyResult{}, false
}

func (s *CacheStrategy) lookupGovernment(cache *knowledge.CachePartition, lower string) (core.StrategyResult, bool) {
	for _, entry := range governmentKeywords {
		if !strings.Contains(lower, entry.keyword) {
			continue
		}
		number, ok := cache.Entry(knowledge.CategoryGovernment, entry.key)
		if !ok {
			continue
		}
		return core.FoundResult(core.GovernmentContact{
			Office: titleCase(entry.keyword),
			Number: number,
			Timing: "Office hours (9:30 AM - 5:30 PM)",
		}), true
	}
	return core.StrategyResult{}, false
}

func (s *CacheStrategy) lookupService(cache *knowledge.CachePartition, lower string) (core.StrategyResult, bool) {
	for _, entry := range serviceKeywords {
		if !strings.Contains(lower, entry.keyword) {
			continue
		}
		helpline, ok := cache.Entry(knowledge.CategoryServices, entry.key)
		if !ok {
			continue
		}
		return core.FoundResult(core.CivicService{
			Service:  titleCase(entry.keyword),
			Helpline: helpline,
			Timing:   "Office hours",
		}), true
	}
	return core.StrategyResult{}, false
}

func (s *CacheStrategy) lookupZone(cache *knowledge.CachePartition, lower string) (core.StrategyResult, bool) {
	for _, entry := range zoneKeywords {
		if !strings.Contains(lower, entry.keyword) {
			continue
		}
		contact, ok := cache.Entry(knowledge.CategoryZones, entry.key)
		if !ok {
			continue
		}
		return core.FoundResult(core.ZoneContact{
			Zone:     titleCase(entry.keyword),
			Contact:  contact,
			Services: "Water supply, complaints, maintenance",
		}), true
	}
	return core.StrategyResult{}, false
}

func (s *CacheStrategy) lookupQuickInfo(cache *knowledge.CachePartition, lower string) (core.StrategyResult, bool) {
	if strings.Contains(lower, "website") {
		var sites []core.LabeledValue
		for _, key := range websiteKeys {
			if url, ok := cache.Entry(knowledge.CategoryQuickInfo, key); ok {
				sites = append(sites, core.LabeledValue{Label: labelFromKey(key), Value: url})
			}
		}
		if len(sites) > 0 {
			return core.FoundResult(core.WebsiteList{Sites: sites}), true
		}
	}

	for _, entry := range quickInfoKeywords {
		if !strings.Contains(lower, entry.keyword) {
			continue
		}
		details, ok := cache.Entry(knowledge.CategoryQuickInfo, entry.key)
		if !ok {
			continue
		}
		return core.FoundResult(core.QuickInfo{
			Topic:   titleCase(entry.keyword),
			Details: details,
		}), true
	}
	return core.StrategyResult{}, false
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// sortedContacts renders a cache table as label/value pairs in key
// order so listings are deterministic.
func sortedContacts(table map[string]string) []core.LabeledValue {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	contacts := make([]core.LabeledValue, 0, len(keys))
	for _, key := range keys {
		contacts = append(contacts, core.LabeledValue{Label: labelFromKey(key), Value: table[key]})
	}
	return contacts
}

// labelFromKey turns a snake_case cache key into a display label.
func labelFromKey(key string) string {
	return titleCase(strings.ReplaceAll(key, "_", " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
