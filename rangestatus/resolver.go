// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package rangestatus

import (
	"fmt"
	"slices"
	"time"

	"cloudeng.io/rangepicker/jalali"
	"cloudeng.io/rangepicker/monthgrid"
	"github.com/patrickmn/go-cache"
)

// Resolver memoizes the results of Resolve. Entries expire after a period
// of time and Flush discards all of them. A Resolver is safe for
// concurrent use.
type Resolver struct {
	cache *cache.Cache
}

const (
	// DefaultExpiration is the lifetime of entries created by a Resolver
	// returned by NewResolver.
	DefaultExpiration = 5 * time.Minute
	// DefaultCleanupInterval is the interval at which expired entries are
	// removed for a Resolver returned by NewResolver.
	DefaultCleanupInterval = time.Minute
)

// NewResolver returns a new, empty, Resolver that uses DefaultExpiration
// and DefaultCleanupInterval.
func NewResolver() *Resolver {
	return NewResolverWithExpiration(DefaultExpiration, DefaultCleanupInterval)
}

// NewResolverWithExpiration returns a new, empty, Resolver whose entries
// expire after expiration and are removed every cleanup interval.
// A cleanup interval of zero leaves expired entries in place until
// they are replaced or flushed.
func NewResolverWithExpiration(expiration, cleanup time.Duration) *Resolver {
	return &Resolver{cache: cache.New(expiration, cleanup)}
}

func key(r jalali.Range, g monthgrid.Grid) string {
	padded := len(g.Cells) != g.Days()
	first := ""
	if len(g.Cells) > 0 {
		first = g.Cells[0].ID
	}
	return fmt.Sprintf("%s:%s:%04d/%02d:%v:%s", r.Start, r.End, g.Year, int(g.Month), padded, first)
}

// Resolve is like the Resolve function but returns memoized results
// where possible. The returned Status is never shared with other
// callers.
func (rs *Resolver) Resolve(r jalali.Range, g monthgrid.Grid) Status {
	k := key(r, g)
	if v, ok := rs.cache.Get(k); ok {
		return clone(v.(Status))
	}
	st := Resolve(r, g)
	rs.cache.Set(k, clone(st), cache.DefaultExpiration)
	return st
}

// Len returns the number of memoized results, including expired results
// that have yet to be removed.
func (rs *Resolver) Len() int {
	return rs.cache.ItemCount()
}

// Flush discards all memoized results.
func (rs *Resolver) Flush() {
	rs.cache.Flush()
}

func clone(st Status) Status {
	st.Tags = slices.Clone(st.Tags)
	return st
}
