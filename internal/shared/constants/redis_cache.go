package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Ticketly application
// Pattern: ticketly:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG  = 24 * time.Hour // 24 hours - for very stable data
	TTL_STATIC_SHORT = 6 * time.Hour  // 6 hours - for account profiles
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 1 * time.Hour    // 1 hour - for concert details
	TTL_SEMI_STATIC_SHORT  = 15 * time.Minute // 15 minutes - for the catalog listing
)

// Dynamic Data (Short TTL: changes with every sale)
const (
	TTL_DYNAMIC_MEDIUM = 5 * time.Minute // 5 minutes - for per-account ticket lists
	TTL_DYNAMIC_SHORT  = 1 * time.Minute // 1 minute - for remaining ticket counts
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "ticketly"
)

// ================== CONCERTS MODULE ==================

// Concert Cache Keys
const (
	CACHE_KEY_CONCERTS_LIST  = CACHE_PREFIX + ":concerts:list"         // full catalog, id order
	CACHE_KEY_CONCERT_DETAIL = CACHE_PREFIX + ":concerts:detail:id:"   // + concert-id
	CACHE_KEY_CONCERT_LEFT   = CACHE_PREFIX + ":concerts:left:id:"     // + concert-id
)

// Concert Cache TTLs
const (
	TTL_CONCERTS_LIST  = TTL_SEMI_STATIC_SHORT  // 15 minutes
	TTL_CONCERT_DETAIL = TTL_SEMI_STATIC_MEDIUM // 1 hour
	TTL_CONCERT_LEFT   = TTL_DYNAMIC_SHORT      // 1 minute
)

// ================== TICKETS MODULE ==================

// Ticket Cache Keys
const (
	CACHE_KEY_ACCOUNT_TICKETS = CACHE_PREFIX + ":tickets:account:uuid:" // + account-id
	CACHE_KEY_TICKET_DETAIL   = CACHE_PREFIX + ":tickets:detail:"       // + ticket-id
)

// Ticket Cache TTLs
const (
	TTL_ACCOUNT_TICKETS = TTL_DYNAMIC_MEDIUM // 5 minutes
	TTL_TICKET_DETAIL   = TTL_STATIC_LONG    // 24 hours, tickets never change owner
)

// ================== AUTH MODULE ==================

// Auth Cache Keys
const (
	CACHE_KEY_ACCOUNT_PROFILE = CACHE_PREFIX + ":auth:account:profile:uuid:" // + account-id
)

// Auth Cache TTLs
const (
	TTL_ACCOUNT_PROFILE = TTL_STATIC_SHORT // 6 hours
)

// ================== CACHE INVALIDATION PATTERNS ==================

// Patterns for cache invalidation (used with Redis KEYS command or manual invalidation)
const (
	PATTERN_INVALIDATE_CONCERTS_ALL = CACHE_PREFIX + ":concerts:*"
	PATTERN_INVALIDATE_TICKETS_ALL  = CACHE_PREFIX + ":tickets:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildConcertDetailKey(concertID uint32) string {
	return CACHE_KEY_CONCERT_DETAIL + fmt.Sprintf("%d", concertID)
}

func BuildConcertLeftKey(concertID uint32) string {
	return CACHE_KEY_CONCERT_LEFT + fmt.Sprintf("%d", concertID)
}

func BuildAccountTicketsKey(accountID string) string {
	return CACHE_KEY_ACCOUNT_TICKETS + accountID
}

func BuildTicketDetailKey(ticketID string) string {
	return CACHE_KEY_TICKET_DETAIL + ticketID
}

func BuildAccountProfileKey(accountID string) string {
	return CACHE_KEY_ACCOUNT_PROFILE + accountID
}
