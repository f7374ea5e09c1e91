package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DebugMux returns an HTTP mux mirroring the BF.* command surface for
// curl-friendly debugging and exposing /metrics, the same role the
// teacher's cluster.go startHTTPServer plays for /put, /get, /delete.
func (s *BloomFilterServer) DebugMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/bf/reserve", s.handleReserve)
	mux.HandleFunc("/bf/add", s.handleAdd)
	mux.HandleFunc("/bf/exists", s.handleExists)
	mux.HandleFunc("/bf/info", s.handleInfo)
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func (s *BloomFilterServer) handleReserve(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "missing key", http.StatusBadRequest)
		return
	}
	capacity, errorRate, expansion := s.reserveDefaults()
	if v := r.URL.Query().Get("capacity"); v != "" {
		fmt.Sscanf(v, "%d", &capacity)
	}
	if v := r.URL.Query().Get("error_rate"); v != "" {
		fmt.Sscanf(v, "%g", &errorRate)
	}
	if v := r.URL.Query().Get("expansion"); v != "" {
		fmt.Sscanf(v, "%d", &expansion)
	}

	if err := s.store.Reserve([]byte(key), capacity, errorRate, expansion); err != nil {
		writeJSONError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *BloomFilterServer) reserveDefaults() (capacity uint32, errorRate float64, expansion uint16) {
	return s.defaultCapacity, s.defaultErrorRate, s.defaultExpansion
}

func (s *BloomFilterServer) handleAdd(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	item := r.URL.Query().Get("item")
	if key == "" || item == "" {
		http.Error(w, "missing key or item", http.StatusBadRequest)
		return
	}
	result, err := s.store.Add([]byte(key), []byte(item))
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, map[string]string{"result": result.String()})
}

func (s *BloomFilterServer) handleExists(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	item := r.URL.Query().Get("item")
	if key == "" || item == "" {
		http.Error(w, "missing key or item", http.StatusBadRequest)
		return
	}
	found, err := s.store.Exists([]byte(key), []byte(item))
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, map[string]bool{"exists": found})
}

func (s *BloomFilterServer) handleInfo(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "missing key", http.StatusBadRequest)
		return
	}
	info, err := s.store.Info([]byte(key))
	if err != nil {
		writeJSONError(w, err)
		return
	}
	writeJSON(w, info)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
