// Package cache holds the last successful lead analysis per contact.
// Entries live for the process lifetime; there is no TTL, only explicit
// clears.
package cache

import (
	"sync"

	"cpace/internal/models"
)

// AnalysisCache is an in-memory cache of lead analysis results keyed by
// contact id.
type AnalysisCache struct {
	mutex sync.RWMutex
	items map[int]models.AnalysisResult
}

// New creates a new cache instance
func New() *AnalysisCache {
	return &AnalysisCache{
		items: make(map[int]models.AnalysisResult),
	}
}

// Get retrieves a cached analysis for a contact
func (c *AnalysisCache) Get(contactID int) (models.AnalysisResult, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	result, exists := c.items[contactID]
	return result, exists
}

// Put stores an analysis result, unconditionally overwriting any previous
// entry for the contact
func (c *AnalysisCache) Put(contactID int, result models.AnalysisResult) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items[contactID] = result
}

// Clear removes a single contact's cached analysis
func (c *AnalysisCache) Clear(contactID int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, contactID)
}

// ClearAll removes all cached analyses
func (c *AnalysisCache) ClearAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items = make(map[int]models.AnalysisResult)
}

// Size returns the number of cached analyses
func (c *AnalysisCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items)
}
