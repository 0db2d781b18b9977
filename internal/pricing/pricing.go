// Package pricing maps Claude model identifiers to per-million-token rates
// and computes entry costs from token counts.
package pricing

import "strings"

// Tier holds USD rates per million tokens for one pricing bracket.
type Tier struct {
	Name        string
	DisplayName string
	Input       float64
	Output      float64
	CacheWrite  float64
	CacheRead   float64
}

// Cost returns the USD cost for the given token counts at this tier's rates.
func (t Tier) Cost(input, output, cacheWrite, cacheRead int64) float64 {
	return (float64(input)*t.Input +
		float64(output)*t.Output +
		float64(cacheWrite)*t.CacheWrite +
		float64(cacheRead)*t.CacheRead) / 1e6
}

// tierRule pairs a tier with the model-name substrings that select it.
// Rules are evaluated in declared order: more specific version suffixes
// ("4.5", "4.1") come before their shorter prefixes ("4"), otherwise
// "opus-4" would shadow "opus-4-1". Both dash and dot version spellings
// occur in the wild, as do reversed forms like "3-5-sonnet".
type tierRule struct {
	tier     Tier
	patterns []string
}

var tierRules = []tierRule{
	{
		tier:     Tier{Name: "opus-4.5", DisplayName: "Claude Opus 4.5", Input: 5.0, Output: 25.0, CacheWrite: 6.25, CacheRead: 0.5},
		patterns: []string{"opus-4-5", "opus-4.5"},
	},
	{
		tier:     Tier{Name: "opus-4.1", DisplayName: "Claude Opus 4.1", Input: 15.0, Output: 75.0, CacheWrite: 18.75, CacheRead: 1.5},
		patterns: []string{"opus-4-1", "opus-4.1"},
	},
	{
		tier:     Tier{Name: "opus-4", DisplayName: "Claude Opus 4", Input: 15.0, Output: 75.0, CacheWrite: 18.75, CacheRead: 1.5},
		patterns: []string{"opus-4", "4-opus"},
	},
	{
		tier:     Tier{Name: "opus-3", DisplayName: "Claude Opus 3", Input: 15.0, Output: 75.0, CacheWrite: 18.75, CacheRead: 1.5},
		patterns: []string{"opus-3", "3-opus"},
	},
	{
		tier:     Tier{Name: "sonnet-4.5", DisplayName: "Claude Sonnet 4.5", Input: 3.0, Output: 15.0, CacheWrite: 3.75, CacheRead: 0.3},
		patterns: []string{"sonnet-4-5", "sonnet-4.5"},
	},
	{
		tier:     Tier{Name: "sonnet-4", DisplayName: "Claude Sonnet 4", Input: 3.0, Output: 15.0, CacheWrite: 3.75, CacheRead: 0.3},
		patterns: []string{"sonnet-4", "4-sonnet"},
	},
	{
		tier:     Tier{Name: "sonnet-3.7", DisplayName: "Claude Sonnet 3.7", Input: 3.0, Output: 15.0, CacheWrite: 3.75, CacheRead: 0.3},
		patterns: []string{"sonnet-3-7", "sonnet-3.7", "3-7-sonnet"},
	},
	{
		tier:     Tier{Name: "sonnet-3.5", DisplayName: "Claude Sonnet 3.5", Input: 3.0, Output: 15.0, CacheWrite: 3.75, CacheRead: 0.3},
		patterns: []string{"sonnet-3-5", "sonnet-3.5", "3-5-sonnet"},
	},
	{
		tier:     Tier{Name: "haiku-4.5", DisplayName: "Claude Haiku 4.5", Input: 1.0, Output: 5.0, CacheWrite: 1.25, CacheRead: 0.1},
		patterns: []string{"haiku-4-5", "haiku-4.5"},
	},
	{
		tier:     Tier{Name: "haiku-3.5", DisplayName: "Claude Haiku 3.5", Input: 0.8, Output: 4.0, CacheWrite: 1.0, CacheRead: 0.08},
		patterns: []string{"haiku-3-5", "haiku-3.5", "3-5-haiku"},
	},
	{
		tier:     Tier{Name: "haiku-3", DisplayName: "Claude Haiku 3", Input: 0.25, Output: 1.25, CacheWrite: 0.3, CacheRead: 0.03},
		patterns: []string{"haiku-3", "3-haiku"},
	},
}

// Resolve returns the pricing tier for a model identifier. Matching is
// case-insensitive substring matching in declared rule order. The second
// return value is false when no tier matches; callers treat such entries
// as zero-cost.
func Resolve(model string) (Tier, bool) {
	lower := strings.ToLower(model)
	for _, rule := range tierRules {
		for _, p := range rule.patterns {
			if strings.Contains(lower, p) {
				return rule.tier, true
			}
		}
	}
	return Tier{}, false
}

// DisplayName returns a human-readable label for a model identifier,
// applying the same precedence as Resolve. Unmatched input is returned
// unchanged.
func DisplayName(model string) string {
	if tier, ok := Resolve(model); ok {
		return tier.DisplayName
	}
	return model
}
