package knowledge

// Cache snapshot category names.
const (
	CategoryEmergency  = "emergency_contacts"
	CategoryGovernment = "government_contacts"
	CategoryServices   = "civic_services_helplines"
	CategoryZones      = "zone_contacts"
	CategoryQuickInfo  = "quick_info"
)

// CachePartition holds the static contact and quick-info tables.
// It is immutable after construction and safe for concurrent reads.
type CachePartition struct {
	categories CacheData
}

// NewCachePartition builds a cache partition from snapshot data.
// The data is owned by the partition afterwards and must not be mutated.
func NewCachePartition(data CacheData) *CachePartition {
	if data == nil {
		data = CacheData{}
	}
	return &CachePartition{categories: data}
}

// Entry looks up a single value in a category table.
func (p *CachePartition) Entry(category, key string) (string, bool) {
	table, ok := p.categories[category]
	if !ok {
		return "", false
	}
	value, ok := table[key]
	return value, ok
}

// Category returns a whole category table. The returned map is shared
// and read-only. Returns nil if the category doesn't exist.
func (p *CachePartition) Category(category string) map[string]string {
	return p.categories[category]
}

// Size returns the total number of entries across all categories.
func (p *CachePartition) Size() int {
	total := 0
	for _, table := range p.categories {
		total += len(table)
	}
	return total
}
