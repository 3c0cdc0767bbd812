package quotes

import "testing"

func sampleQuotes() []CarrierQuote {
	return []CarrierQuote{
		{CarrierName: "Blue Dart", ServiceLevel: ServiceExpress, TotalCost: 950, EstimatedDeliveryDays: 2},
		{CarrierName: "Delhivery", ServiceLevel: ServiceStandard, TotalCost: 640, EstimatedDeliveryDays: 4},
		{CarrierName: "DTDC", ServiceLevel: ServiceEconomy, TotalCost: 520, EstimatedDeliveryDays: 6},
		{CarrierName: "FedEx", ServiceLevel: ServiceOvernight, TotalCost: 1480, EstimatedDeliveryDays: 1},
		{CarrierName: "DHL", ServiceLevel: ServiceExpress, TotalCost: 1210, EstimatedDeliveryDays: 2},
	}
}

func TestRankByCost(t *testing.T) {
	ranked := Rank(sampleQuotes(), SortByCost, "")

	for i := 1; i < len(ranked); i++ {
		if ranked[i].TotalCost < ranked[i-1].TotalCost {
			t.Fatalf("costs not non-decreasing at %d: %v after %v", i, ranked[i].TotalCost, ranked[i-1].TotalCost)
		}
	}
	if ranked[0].CarrierName != "DTDC" {
		t.Fatalf("cheapest first, got %s", ranked[0].CarrierName)
	}
}

func TestRankByCostStable(t *testing.T) {
	in := []CarrierQuote{
		{CarrierName: "A", TotalCost: 500},
		{CarrierName: "B", TotalCost: 500},
		{CarrierName: "C", TotalCost: 400},
	}
	ranked := Rank(in, SortByCost, "")
	if ranked[1].CarrierName != "A" || ranked[2].CarrierName != "B" {
		t.Fatalf("equal-cost order not preserved: %s, %s", ranked[1].CarrierName, ranked[2].CarrierName)
	}
}

func TestRankRecommendedPinsFirst(t *testing.T) {
	// DHL is nowhere near cheapest; it still goes first.
	ranked := Rank(sampleQuotes(), SortRecommended, "DHL")

	if ranked[0].CarrierName != "DHL" {
		t.Fatalf("recommended carrier not pinned, got %s", ranked[0].CarrierName)
	}
	// The rest stay ascending by cost.
	for i := 2; i < len(ranked); i++ {
		if ranked[i].TotalCost < ranked[i-1].TotalCost {
			t.Fatalf("tail not sorted at %d", i)
		}
	}
}

func TestRankRecommendedUnknownCarrier(t *testing.T) {
	ranked := Rank(sampleQuotes(), SortRecommended, "Nonexistent")
	if ranked[0].CarrierName != "DTDC" {
		t.Fatalf("unknown recommendation should fall back to cost order, got %s", ranked[0].CarrierName)
	}
}

func TestRankDoesNotModifyInput(t *testing.T) {
	in := sampleQuotes()
	first := in[0].CarrierName
	_ = Rank(in, SortByCost, "")
	if in[0].CarrierName != first {
		t.Fatal("input slice was reordered")
	}
}

func TestFilterByServiceLevel(t *testing.T) {
	in := sampleQuotes()

	express := FilterByServiceLevel(in, "express")
	if len(express) != 2 {
		t.Fatalf("want 2 express quotes, got %d", len(express))
	}
	for _, q := range express {
		if q.ServiceLevel != ServiceExpress {
			t.Fatalf("unexpected level %s", q.ServiceLevel)
		}
	}

	if got := FilterByServiceLevel(in, "all"); len(got) != len(in) {
		t.Fatalf("'all' must be a no-op, got %d", len(got))
	}
	if got := FilterByServiceLevel(in, ""); len(got) != len(in) {
		t.Fatalf("empty level must be a no-op, got %d", len(got))
	}
}

func TestAssignBadges(t *testing.T) {
	qs := sampleQuotes()
	AssignBadges(qs, "DHL")

	var bestPrice, recommended string
	for _, q := range qs {
		switch q.Badge {
		case BadgeBestPrice:
			bestPrice = q.CarrierName
		case BadgeAIRecommended:
			recommended = q.CarrierName
		}
	}
	if bestPrice != "DTDC" {
		t.Fatalf("best price on %q", bestPrice)
	}
	if recommended != "DHL" {
		t.Fatalf("recommendation on %q", recommended)
	}
}

func TestAssignBadgesRecommendationWins(t *testing.T) {
	// Cheapest and recommended are the same quote: one badge, the
	// recommendation one.
	qs := sampleQuotes()
	AssignBadges(qs, "DTDC")

	for _, q := range qs {
		if q.CarrierName == "DTDC" && q.Badge != BadgeAIRecommended {
			t.Fatalf("want %q, got %q", BadgeAIRecommended, q.Badge)
		}
		if q.CarrierName != "DTDC" && q.Badge == BadgeBestPrice {
			t.Fatalf("best price leaked to %s", q.CarrierName)
		}
	}
}

func TestAssignBadgesEmpty(t *testing.T) {
	AssignBadges(nil, "DHL") // must not panic
}
