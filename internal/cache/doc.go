// Package cache provides a small generic LRU cache.
//
// The engine keeps unrotated shape sets here, keyed by the lattice spacing
// and disc diameter that fully determine them. Layers that share both share
// one entry; rotation never touches the cache.
//
//	c := cache.New[key, ShapeSet](16)
//	set := c.GetOrCreate(k, func() ShapeSet { return build(k) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
