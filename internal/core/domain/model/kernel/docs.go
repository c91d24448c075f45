// Package kernel contains the shared value objects of the shop domain.
//
// The pagination types model offset-based paging independently of any
// transport: PageRequest describes which slice of a collection is wanted,
// SortOrder describes its ordering, and Page carries one slice together with
// the total element count so callers can derive page counts and navigation.
package kernel
