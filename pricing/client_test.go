package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ShwetaRajputsk/xfasbackend-sub001/quotes"
)

func testRequest() quotes.RateRequest {
	return quotes.RateRequest{
		ShipmentType:  quotes.ShipmentParcel,
		OriginCountry: "IN",
		DestCountry:   "IN",
		Parcels:       []quotes.Parcel{{WeightKg: 2, Quantity: 1}},
		ChargeableKg:  2,
	}
}

func TestGetRatesSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/rates" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("missing bearer token, got %q", got)
		}

		var req quotes.RateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.ChargeableKg != 2 {
			t.Errorf("chargeable weight %v, want 2", req.ChargeableKg)
		}

		json.NewEncoder(w).Encode(RateResponse{
			Quotes: []RawQuote{
				{CarrierName: "Delhivery", ServiceLevel: "standard", TotalCost: 640, EstimatedDeliveryDays: 4},
				{CarrierName: "Blue Dart", ServiceLevel: "express", TotalCost: 950, EstimatedDeliveryDays: 2},
			},
			RecommendedCarrier: "Blue Dart",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", srv.Client())
	resp, err := client.GetRates(context.Background(), testRequest())
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Quotes) != 2 {
		t.Fatalf("want 2 quotes, got %d", len(resp.Quotes))
	}
	if resp.RecommendedCarrier != "Blue Dart" {
		t.Fatalf("recommended %q", resp.RecommendedCarrier)
	}
}

func TestGetRatesMapsClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", srv.Client())
	_, err := client.GetRates(context.Background(), testRequest())
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("want ErrBadRequest, got %v", err)
	}
}

func TestGetRatesMapsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", srv.Client())
	_, err := client.GetRates(context.Background(), testRequest())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestGetRatesMapsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, "", nil)
	_, err := client.GetRates(context.Background(), testRequest())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestGetRatesMapsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", srv.Client())
	_, err := client.GetRates(context.Background(), testRequest())
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("want ErrBadResponse, got %v", err)
	}
}

func TestGetRatesMissingQuotesField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"recommended_carrier":"DHL"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", srv.Client())
	_, err := client.GetRates(context.Background(), testRequest())
	if !errors.Is(err, ErrBadResponse) {
		t.Fatalf("want ErrBadResponse, got %v", err)
	}
}
