package quotes

import "sort"

type SortPolicy string

const (
	SortByCost      SortPolicy = "cost"
	SortRecommended SortPolicy = "recommended"
)

// FilterByServiceLevel returns the quotes matching the given service level.
// An empty level or "all" keeps everything.
func FilterByServiceLevel(in []CarrierQuote, level string) []CarrierQuote {
	if level == "" || level == "all" {
		return in
	}
	out := make([]CarrierQuote, 0, len(in))
	for _, q := range in {
		if string(q.ServiceLevel) == level {
			out = append(out, q)
		}
	}
	return out
}

// Rank orders quotes for presentation. "cost" is a stable ascending sort on
// TotalCost. "recommended" pins the quote matching recommendedCarrier first,
// regardless of its cost rank, and orders the rest ascending by TotalCost.
// The input slice is not modified.
func Rank(in []CarrierQuote, policy SortPolicy, recommendedCarrier string) []CarrierQuote {
	out := make([]CarrierQuote, len(in))
	copy(out, in)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalCost < out[j].TotalCost
	})

	if policy != SortRecommended || recommendedCarrier == "" {
		return out
	}

	for i, q := range out {
		if q.CarrierName == recommendedCarrier {
			pinned := out[i]
			copy(out[1:i+1], out[:i])
			out[0] = pinned
			break
		}
	}
	return out
}

// AssignBadges tags the globally cheapest quote "Best Price" and the quote
// matching recommendedCarrier "AI Recommended". When both land on the same
// quote the recommendation badge wins. Badges are presentation only and do
// not affect ordering.
func AssignBadges(qs []CarrierQuote, recommendedCarrier string) {
	if len(qs) == 0 {
		return
	}

	cheapest := 0
	for i := range qs {
		qs[i].Badge = ""
		if qs[i].TotalCost < qs[cheapest].TotalCost {
			cheapest = i
		}
	}
	qs[cheapest].Badge = BadgeBestPrice

	if recommendedCarrier == "" {
		return
	}
	for i := range qs {
		if qs[i].CarrierName == recommendedCarrier {
			qs[i].Badge = BadgeAIRecommended
			break
		}
	}
}
