// Package grocytest provides an in-process fake Grocy server for tests.
//
// The fake implements the generic object store with full CRUD semantics,
// a small stock model on top of it, and the summary/detail endpoint pairs
// the client hydrates from. Tests that need endpoints beyond the built-in
// set can register extra routes on Router before the first request.
package grocytest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// APIKey is the key the fake accepts. Requests with any other key get a
// 401 with a Grocy-style error body.
const APIKey = "test-api-key"

// Server is a fake Grocy backend bound to an httptest listener.
type Server struct {
	// Router handles everything under /api/. Tests may add routes before
	// issuing requests.
	Router chi.Router

	// Volatile is returned verbatim by GET /api/stock/volatile.
	Volatile map[string]any

	mu       sync.Mutex
	objects  map[string]map[int]map[string]any
	nextID   map[string]int
	stockLog []map[string]any
	requests []string
	failures map[string]int

	httpServer *httptest.Server
}

// New starts a fake server. It is shut down automatically when the test
// finishes.
func New(t interface {
	Cleanup(func())
	Helper()
}) *Server {
	t.Helper()
	s := &Server{
		Router:   chi.NewRouter(),
		Volatile: map[string]any{},
		objects:  make(map[string]map[int]map[string]any),
		nextID:   make(map[string]int),
		failures: make(map[string]int),
	}
	s.routes()

	mux := chi.NewRouter()
	mux.Use(s.record, s.auth)
	mux.Mount("/api", s.Router)
	s.httpServer = httptest.NewServer(mux)
	t.Cleanup(s.httpServer.Close)
	return s
}

// URL returns the listener base URL split into host and port, the way the
// client's Config wants them.
func (s *Server) URL() (base string, port int) {
	u := s.httpServer.URL // http://127.0.0.1:PORT
	i := strings.LastIndexByte(u, ':')
	port, _ = strconv.Atoi(u[i+1:])
	return u[:i], port
}

// Requests returns every request seen so far as "METHOD /path" strings.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// FailOn makes the next request for "METHOD /path" fail with the given
// status and a Grocy-style error body.
func (s *Server) FailOn(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = status
}

// Seed inserts an object with a fixed id into the store and returns it.
func (s *Server) Seed(entity string, id int, fields map[string]any) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := map[string]any{"id": id, "row_created_timestamp": timestamp()}
	for k, v := range fields {
		record[k] = v
	}
	if s.objects[entity] == nil {
		s.objects[entity] = make(map[int]map[string]any)
	}
	s.objects[entity][id] = record
	if id >= s.nextID[entity] {
		s.nextID[entity] = id + 1
	}
	return record
}

// Object returns a stored object or nil.
func (s *Server) Object(entity string, id int) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.objects[entity][id]
}

// StockLog returns every stock booking recorded so far.
func (s *Server) StockLog() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.stockLog...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		s.mu.Lock()
		s.requests = append(s.requests, key)
		status, failing := s.failures[key]
		if failing {
			delete(s.failures, key)
		}
		s.mu.Unlock()
		if failing {
			writeError(w, status, "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("GROCY-API-KEY") != APIKey {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) routes() {
	r := s.Router

	r.Get("/objects/{entity}", s.listObjects)
	r.Post("/objects/{entity}", s.createObject)
	r.Get("/objects/{entity}/{id}", s.getObject)
	r.Put("/objects/{entity}/{id}", s.updateObject)
	r.Delete("/objects/{entity}/{id}", s.deleteObject)

	r.Get("/stock", s.currentStock)
	r.Get("/stock/volatile", s.volatileStock)
	r.Get("/stock/products/{id}", s.productDetails)
	r.Post("/stock/products/{id}/add", s.stockAdd)
	r.Post("/stock/products/{id}/consume", s.stockConsume)
	r.Post("/stock/products/{id}/open", s.stockOpen)

	r.Get("/chores", s.listChores)
	r.Get("/chores/{id}", s.choreDetails)
	r.Post("/chores/{id}/execute", s.executeChore)

	r.Get("/batteries", s.listBatteries)
	r.Get("/batteries/{id}", s.batteryDetails)
	r.Post("/batteries/{id}/charge", s.chargeBattery)

	r.Get("/tasks", s.listTasks)
	r.Post("/tasks/{id}/complete", s.completeTask)

	r.Get("/users", s.listUsers)

	r.Get("/system/info", s.systemInfo)
}

func urlID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func timestamp() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error_message": msg})
}

// --- generic object store ---

func (s *Server) listObjects(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	filters := r.URL.Query()["query[]"]

	s.mu.Lock()
	var records []map[string]any
	ids := make([]int, 0, len(s.objects[entity]))
	for id := range s.objects[entity] {
		ids = append(ids, id)
	}
	// Grocy returns objects ordered by id.
	sort.Ints(ids)
	for _, id := range ids {
		record := s.objects[entity][id]
		if matchesFilters(record, filters) {
			records = append(records, record)
		}
	}
	s.mu.Unlock()

	if records == nil {
		records = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, records)
}

// matchesFilters applies "field=value" query expressions. Only equality
// is supported, which is all the client library emits in tests.
func matchesFilters(record map[string]any, filters []string) bool {
	for _, f := range filters {
		field, want, ok := strings.Cut(f, "=")
		if !ok {
			continue
		}
		if fmt.Sprint(record[field]) != want {
			return false
		}
	}
	return true
}

func (s *Server) createObject(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	if s.nextID[entity] == 0 {
		s.nextID[entity] = 1
	}
	id := s.nextID[entity]
	s.nextID[entity]++
	record := map[string]any{"id": id, "row_created_timestamp": timestamp()}
	for k, v := range fields {
		record[k] = v
	}
	if s.objects[entity] == nil {
		s.objects[entity] = make(map[int]map[string]any)
	}
	s.objects[entity][id] = record
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"created_object_id": id})
}

func (s *Server) getObject(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid object id")
		return
	}

	s.mu.Lock()
	record := s.objects[entity][id]
	s.mu.Unlock()

	if record == nil {
		writeError(w, http.StatusNotFound, "object not found")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) updateObject(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid object id")
		return
	}
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	record := s.objects[entity][id]
	if record != nil {
		for k, v := range fields {
			record[k] = v
		}
	}
	s.mu.Unlock()

	if record == nil {
		writeError(w, http.StatusNotFound, "object not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteObject(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid object id")
		return
	}

	s.mu.Lock()
	_, exists := s.objects[entity][id]
	if exists {
		delete(s.objects[entity], id)
	}
	s.mu.Unlock()

	if !exists {
		writeError(w, http.StatusNotFound, "object not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- stock model ---

// stockAmount sums the bookings of one product.
func (s *Server) stockAmount(productID int) float64 {
	var total float64
	for _, entry := range s.stockLog {
		pid, _ := entry["product_id"].(int)
		if pid != productID {
			continue
		}
		amount, _ := entry["amount"].(float64)
		total += amount
	}
	return total
}

func (s *Server) currentStock(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	var rows []map[string]any
	for id, product := range s.objects["products"] {
		amount := s.stockAmount(id)
		if amount <= 0 {
			continue
		}
		rows = append(rows, map[string]any{
			"product_id":               id,
			"amount":                   amount,
			"best_before_date":         "2999-12-31",
			"amount_opened":            0,
			"amount_aggregated":        amount,
			"amount_opened_aggregated": 0,
			"is_aggregated_amount":     false,
			"product":                  product,
		})
	}
	s.mu.Unlock()

	if rows == nil {
		rows = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) volatileStock(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Volatile)
}

func (s *Server) productDetails(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	s.mu.Lock()
	product := s.objects["products"][id]
	var barcodes []map[string]any
	for _, bc := range s.objects["product_barcodes"] {
		pid, _ := bc["product_id"].(int)
		if pid == id {
			barcodes = append(barcodes, bc)
		}
	}
	amount := s.stockAmount(id)
	s.mu.Unlock()

	if product == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	if barcodes == nil {
		barcodes = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"product":             product,
		"stock_amount":        amount,
		"stock_amount_opened": 0,
		"quantity_unit_stock": map[string]any{
			"id": 1, "name": "Piece", "row_created_timestamp": timestamp(),
		},
		"default_quantity_unit_purchase": map[string]any{
			"id": 1, "name": "Piece", "row_created_timestamp": timestamp(),
		},
		"product_barcodes": barcodes,
	})
}

// booking appends a stock log entry and returns it. Transaction and stock
// ids are UUIDs, like the real server's.
func (s *Server) booking(productID int, amount float64, transactionType string) map[string]any {
	entry := map[string]any{
		"id":               len(s.stockLog) + 1,
		"product_id":       productID,
		"amount":           amount,
		"best_before_date": "2999-12-31",
		"purchased_date":   time.Now().UTC().Format("2006-01-02"),
		"spoiled":          false,
		"stock_id":         uuid.NewString(),
		"transaction_id":   uuid.NewString(),
		"transaction_type": transactionType,
	}
	s.stockLog = append(s.stockLog, entry)
	return entry
}

func (s *Server) stockAction(w http.ResponseWriter, r *http.Request, sign float64, transactionType string) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	product := s.objects["products"][id]
	var entry map[string]any
	if product != nil {
		entry = s.booking(id, sign*body.Amount, transactionType)
	}
	s.mu.Unlock()

	if product == nil {
		writeError(w, http.StatusBadRequest, "product does not exist or is inactive")
		return
	}
	writeJSON(w, http.StatusOK, []map[string]any{entry})
}

func (s *Server) stockAdd(w http.ResponseWriter, r *http.Request) {
	s.stockAction(w, r, 1, "purchase")
}

func (s *Server) stockConsume(w http.ResponseWriter, r *http.Request) {
	s.stockAction(w, r, -1, "consume")
}

func (s *Server) stockOpen(w http.ResponseWriter, r *http.Request) {
	s.stockAction(w, r, 0, "product-opened")
}

// --- chores ---

func (s *Server) listChores(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	var rows []map[string]any
	for id := range s.objects["chores"] {
		rows = append(rows, map[string]any{
			"chore_id":                      id,
			"last_tracked_time":             s.lastTracked(id),
			"next_estimated_execution_time": nil,
		})
	}
	s.mu.Unlock()

	if rows == nil {
		rows = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) lastTracked(choreID int) any {
	ids := make([]int, 0, len(s.objects["chores_log"]))
	for id := range s.objects["chores_log"] {
		ids = append(ids, id)
	}
	// Log ids are assigned in execution order, so the highest matching
	// id carries the latest tracked time.
	sort.Ints(ids)
	var last any
	for _, id := range ids {
		entry := s.objects["chores_log"][id]
		cid, _ := entry["chore_id"].(int)
		if cid == choreID {
			last = entry["tracked_time"]
		}
	}
	return last
}

func (s *Server) choreDetails(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chore id")
		return
	}

	s.mu.Lock()
	chore := s.objects["chores"][id]
	count := 0
	for _, entry := range s.objects["chores_log"] {
		cid, _ := entry["chore_id"].(int)
		if cid == id {
			count++
		}
	}
	s.mu.Unlock()

	if chore == nil {
		writeError(w, http.StatusNotFound, "chore not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"chore":       chore,
		"track_count": count,
	})
}

func (s *Server) executeChore(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chore id")
		return
	}
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	chore := s.objects["chores"][id]
	if chore != nil {
		if s.objects["chores_log"] == nil {
			s.objects["chores_log"] = make(map[int]map[string]any)
		}
		if s.nextID["chores_log"] == 0 {
			s.nextID["chores_log"] = 1
		}
		logID := s.nextID["chores_log"]
		s.nextID["chores_log"]++
		s.objects["chores_log"][logID] = map[string]any{
			"id":                    logID,
			"chore_id":              id,
			"tracked_time":          body["tracked_time"],
			"done_by_user_id":       1,
			"undone":                false,
			"skipped":               body["skipped"],
			"row_created_timestamp": timestamp(),
		}
	}
	s.mu.Unlock()

	if chore == nil {
		writeError(w, http.StatusNotFound, "chore not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{})
}

// --- batteries ---

func (s *Server) listBatteries(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	var rows []map[string]any
	for id := range s.objects["batteries"] {
		rows = append(rows, map[string]any{
			"id":                         id,
			"last_tracked_time":          nil,
			"next_estimated_charge_time": nil,
		})
	}
	s.mu.Unlock()

	if rows == nil {
		rows = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) batteryDetails(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid battery id")
		return
	}

	s.mu.Lock()
	battery := s.objects["batteries"][id]
	count := 0
	for _, entry := range s.objects["battery_charge_cycles"] {
		bid, _ := entry["battery_id"].(int)
		if bid == id {
			count++
		}
	}
	s.mu.Unlock()

	if battery == nil {
		writeError(w, http.StatusNotFound, "battery not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"battery":             battery,
		"charge_cycles_count": count,
	})
}

func (s *Server) chargeBattery(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid battery id")
		return
	}
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	battery := s.objects["batteries"][id]
	if battery != nil {
		if s.objects["battery_charge_cycles"] == nil {
			s.objects["battery_charge_cycles"] = make(map[int]map[string]any)
		}
		if s.nextID["battery_charge_cycles"] == 0 {
			s.nextID["battery_charge_cycles"] = 1
		}
		cycleID := s.nextID["battery_charge_cycles"]
		s.nextID["battery_charge_cycles"]++
		s.objects["battery_charge_cycles"][cycleID] = map[string]any{
			"id":           cycleID,
			"battery_id":   id,
			"tracked_time": body["tracked_time"],
		}
	}
	s.mu.Unlock()

	if battery == nil {
		writeError(w, http.StatusNotFound, "battery not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{})
}

// --- tasks ---

func (s *Server) listTasks(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	var rows []map[string]any
	for _, task := range s.objects["tasks"] {
		done, _ := task["done"].(int)
		if done == 0 {
			rows = append(rows, task)
		}
	}
	s.mu.Unlock()

	if rows == nil {
		rows = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) completeTask(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	task := s.objects["tasks"][id]
	if task != nil {
		task["done"] = 1
		task["done_timestamp"] = body["done_time"]
	}
	s.mu.Unlock()

	if task == nil {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{})
}

// --- users / system ---

func (s *Server) listUsers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	var rows []map[string]any
	for _, user := range s.objects["users"] {
		rows = append(rows, user)
	}
	s.mu.Unlock()

	if rows == nil {
		rows = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) systemInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"grocy_version": map[string]any{
			"Version":     "4.0.3",
			"ReleaseDate": "2023-12-21",
		},
		"php_version":    "8.2.0",
		"sqlite_version": "3.41.2",
		"os":             "Linux",
		"client":         "grocytest",
	})
}
