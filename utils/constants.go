// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// SlotCachePrefix is the prefix for cached slot query responses.
const SlotCachePrefix = "slots:"

// SlotCacheTTL keeps slot responses hot only briefly; appointment writes
// invalidate them anyway, but external calendar busy data can change
// without our knowledge.
const SlotCacheTTL = 60 * time.Second
