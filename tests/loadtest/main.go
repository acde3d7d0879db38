package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 50
	testDuration = 10 * time.Second
)

var rarities = []string{"common", "uncommon", "rare", "epic", "legendary", "mythic"}

var cardIDs = []string{
	"bbq_dad_001", "lawn_dad_001", "couch_dad_001", "office_dad_001",
	"car_dad_001", "chef_dad_001", "bbq_dad_002", "lawn_dad_002",
}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== DadDeck Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n\n", numWorkers, testDuration)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Phase 1: Seed the collection with generated packs
	fmt.Println("\n--- Phase 1: Seeding packs (POST /packs/generate) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doGeneratePacks(rng)
	})

	fmt.Println("\nWaiting 2s before mixed load...")
	time.Sleep(2 * time.Second)

	// Phase 2: Mixed read/write load
	fmt.Println("\n--- Phase 2: Mixed load (40% POST, 60% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.30:
			return doGeneratePacks(rng)
		case r < 0.40:
			return doAddWishlist(rng)
		case r < 0.60:
			return doGetCollection(rng)
		case r < 0.80:
			return doGetCards(rng)
		case r < 0.90:
			return doGetCard(rng)
		default:
			return doGet("GET /wishlist", baseURL+"/wishlist")
		}
	})

	// Phase 3: Read-heavy load
	fmt.Println("\n--- Phase 3: Read-heavy load (5% POST, 95% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.05:
			return doGeneratePacks(rng)
		case r < 0.40:
			return doGetCollection(rng)
		case r < 0.70:
			return doGetCards(rng)
		case r < 0.85:
			return doGetCard(rng)
		case r < 0.95:
			return doGet("GET /collection/export", baseURL+"/collection/export")
		default:
			return doGet("GET /wishlist", baseURL+"/wishlist")
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-28s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 94))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-28s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 94))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

// doGet issues a GET and treats anything but 200 as an error.
func doGet(endpoint, url string) result {
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != 200}
}

// doPost issues a JSON POST; wantStatus is the expected success code.
func doPost(endpoint, url string, body map[string]interface{}, wantStatus int) result {
	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(url, "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != wantStatus}
}

func doGeneratePacks(rng *rand.Rand) result {
	packType := "standard"
	if rng.Float64() < 0.3 {
		packType = "premium"
	}
	return doPost("POST /packs/generate", baseURL+"/packs/generate", map[string]interface{}{
		"packType": packType,
		"count":    rng.Intn(3) + 1,
	}, 201)
}

func doGetCollection(rng *rand.Rand) result {
	url := baseURL + "/collection?page=1&pageSize=50"
	if rng.Float64() < 0.4 {
		url += "&rarity=" + rarities[rng.Intn(len(rarities))]
	}
	return doGet("GET /collection", url)
}

func doGetCards(rng *rand.Rand) result {
	url := baseURL + "/cards?page=1"
	if rng.Float64() < 0.5 {
		url += "&rarity=" + rarities[rng.Intn(len(rarities))]
	}
	return doGet("GET /cards", url)
}

func doGetCard(rng *rand.Rand) result {
	return doGet("GET /card", baseURL+"/card?id="+cardIDs[rng.Intn(len(cardIDs))])
}

func doAddWishlist(rng *rand.Rand) result {
	return doPost("POST /wishlist", baseURL+"/wishlist", map[string]interface{}{
		"cardId": cardIDs[rng.Intn(len(cardIDs))],
	}, 201)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
