// Package model defines domain types for ctxline token accounting.
package model

import "math"

// Usage holds the four token counters reported in a transcript's message.usage block.
type Usage struct {
	InputTokens              int64
	OutputTokens             int64
	CacheCreationInputTokens int64
	CacheReadInputTokens     int64
}

// Total returns the sum of all four counters, saturating at math.MaxInt64.
func (u Usage) Total() int64 {
	t := satAdd(u.InputTokens, u.OutputTokens)
	t = satAdd(t, u.CacheCreationInputTokens)
	return satAdd(t, u.CacheReadInputTokens)
}

// Add accumulates other into u. Each counter saturates at math.MaxInt64.
func (u *Usage) Add(other Usage) {
	u.InputTokens = satAdd(u.InputTokens, other.InputTokens)
	u.OutputTokens = satAdd(u.OutputTokens, other.OutputTokens)
	u.CacheCreationInputTokens = satAdd(u.CacheCreationInputTokens, other.CacheCreationInputTokens)
	u.CacheReadInputTokens = satAdd(u.CacheReadInputTokens, other.CacheReadInputTokens)
}

// IsZero reports whether no tokens have been counted.
func (u Usage) IsZero() bool {
	return u == Usage{}
}

// satAdd adds two non-negative counters without wrapping.
func satAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
