package distance

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

type stubCache struct {
	entries map[string]float64
	puts    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]float64)}
}

func (c *stubCache) Get(ctx context.Context, origin, destination domain.Point) (float64, bool, error) {
	km, ok := c.entries[cacheKey(origin, destination)]
	return km, ok, nil
}

func (c *stubCache) Put(ctx context.Context, origin, destination domain.Point, km float64) error {
	c.entries[cacheKey(origin, destination)] = km
	c.puts++
	return nil
}

func newTestProvider(srv *httptest.Server, cache ports.DistanceCache) *OSRMDistanceProvider {
	return &OSRMDistanceProvider{
		session: srv.Client(),
		baseURL: srv.URL,
		profile: "driving",
		cache:   cache,
	}
}

func TestDistanceFromRouteResponse(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":5000}]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv, nil)
	res, err := p.Distance(context.Background(), domain.Point{Lat: 1, Lon: 2}, domain.Point{Lat: 3, Lon: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Km != 5.0 {
		t.Fatalf("distance = %f km, want 5.0", res.Km)
	}
	if res.Source != ports.SourceNetwork {
		t.Fatalf("source = %q, want network", res.Source)
	}

	// OSRM expects lon,lat ordering in the path.
	if !strings.HasPrefix(gotPath, "/route/v1/driving/2.000000,1.000000;4.000000,3.000000") {
		t.Fatalf("unexpected request path %q", gotPath)
	}
	if !strings.Contains(gotQuery, "overview=false") {
		t.Fatalf("query %q missing overview=false", gotQuery)
	}
}

func TestDistanceFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	origin := domain.Point{Lat: 0, Lon: 0}
	dest := domain.Point{Lat: 0, Lon: 1}

	p := newTestProvider(srv, nil)
	res, err := p.Distance(context.Background(), origin, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Source != ports.SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
	if want := domain.Haversine(origin, dest); res.Km != want {
		t.Fatalf("distance = %f, want haversine %f", res.Km, want)
	}
}

func TestDistanceFallsBackOnMalformedRoute(t *testing.T) {
	responses := []string{
		`{"code":"NoRoute","routes":[]}`,
		`{"code":"Ok","routes":[]}`,
		`not json`,
	}

	origin := domain.Point{Lat: 10, Lon: 10}
	dest := domain.Point{Lat: 11, Lon: 11}

	for _, body := range responses {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))

		p := newTestProvider(srv, nil)
		res, err := p.Distance(context.Background(), origin, dest)
		srv.Close()
		if err != nil {
			t.Fatalf("body %q: unexpected error: %v", body, err)
		}

		if res.Source != ports.SourceFallback {
			t.Errorf("body %q: source = %q, want fallback", body, res.Source)
		}
		if want := domain.Haversine(origin, dest); res.Km != want {
			t.Errorf("body %q: distance = %f, want haversine %f", body, res.Km, want)
		}
	}
}

func TestDistanceFallsBackOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":5000}]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv, nil)
	p.session = &http.Client{Timeout: 20 * time.Millisecond}

	res, err := p.Distance(context.Background(), domain.Point{Lat: 0, Lon: 0}, domain.Point{Lat: 0, Lon: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Source != ports.SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
}

func TestDistanceUsesCache(t *testing.T) {
	serverCalled := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverCalled = true
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":5000}]}`))
	}))
	defer srv.Close()

	origin := domain.Point{Lat: 1, Lon: 1}
	dest := domain.Point{Lat: 2, Lon: 2}

	cache := newStubCache()
	p := newTestProvider(srv, cache)

	// Cold cache: fetch from the network and store.
	res, err := p.Distance(context.Background(), origin, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !serverCalled {
		t.Fatal("expected network fetch on cold cache")
	}
	if cache.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", cache.puts)
	}

	// Warm cache: the server must not be touched again.
	serverCalled = false
	res2, err := p.Distance(context.Background(), origin, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if serverCalled {
		t.Fatal("server was called despite warm cache")
	}
	if res2.Km != res.Km || res2.Source != ports.SourceNetwork {
		t.Fatalf("cached result = %+v, want %+v with network source", res2, res)
	}
}

func TestFallbackDistanceNotCached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cache := newStubCache()
	p := newTestProvider(srv, cache)

	if _, err := p.Distance(context.Background(), domain.Point{Lat: 0, Lon: 0}, domain.Point{Lat: 1, Lon: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.puts != 0 {
		t.Fatalf("cache puts = %d, want 0 for fallback values", cache.puts)
	}
}

func TestGeometryReordersCoordinates(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":1000,"geometry":{"coordinates":[[2,1],[2.5,1.5],[4,3]]}}]}`))
	}))
	defer srv.Close()

	p := newTestProvider(srv, nil)
	res, err := p.Geometry(context.Background(), domain.Point{Lat: 1, Lon: 2}, domain.Point{Lat: 3, Lon: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Source != ports.SourceNetwork {
		t.Fatalf("source = %q, want network", res.Source)
	}

	want := []domain.Point{{Lat: 1, Lon: 2}, {Lat: 1.5, Lon: 2.5}, {Lat: 3, Lon: 4}}
	if len(res.Points) != len(want) {
		t.Fatalf("geometry has %d points, want %d", len(res.Points), len(want))
	}
	for i := range want {
		if res.Points[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, res.Points[i], want[i])
		}
	}

	if !strings.Contains(gotQuery, "overview=full") || !strings.Contains(gotQuery, "geometries=geojson") {
		t.Fatalf("query %q missing full geojson overview", gotQuery)
	}
}

func TestGeometryFallsBackToStraightLine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	origin := domain.Point{Lat: 5, Lon: 6}
	dest := domain.Point{Lat: 7, Lon: 8}

	p := newTestProvider(srv, nil)
	res, err := p.Geometry(context.Background(), origin, dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Source != ports.SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
	if len(res.Points) != 2 || res.Points[0] != origin || res.Points[1] != dest {
		t.Fatalf("geometry = %v, want [%v %v]", res.Points, origin, dest)
	}
}

func cacheKey(o, d domain.Point) string {
	return fmt.Sprintf("%.5f,%.5f|%.5f,%.5f", o.Lat, o.Lon, d.Lat, d.Lon)
}
