// Package fakeapi is an in-memory Orders API for tests. It records every
// request it receives.
package fakeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"seroter.com/orderconsole/model"
)

type Request struct {
	Method    string
	Path      string
	Query     string
	Body      string
	RequestID string
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
	orders   map[int64]*model.OrderView
	nextID   int64
	nextItem int64
	today    string
}

// New starts a fake serving the orders collection under prefix.
func New(prefix string) *Server {
	s := &Server{
		orders:   make(map[int64]*model.OrderView),
		nextID:   1,
		nextItem: 1,
		today:    time.Now().Format("2006-01-02"),
	}

	r := mux.NewRouter()
	r.Use(s.record)
	o := r.PathPrefix(prefix).Subrouter()
	o.HandleFunc("", s.createOrder).Methods(http.MethodPost)
	o.HandleFunc("", s.searchOrders).Methods(http.MethodGet)
	o.HandleFunc("/{id:[0-9]+}", s.getOrder).Methods(http.MethodGet)
	o.HandleFunc("/{id:[0-9]+}", s.updateOrder).Methods(http.MethodPut)
	o.HandleFunc("/{id:[0-9]+}", s.deleteOrder).Methods(http.MethodDelete)
	o.HandleFunc("/{id:[0-9]+}/cancel", s.cancelOrder).Methods(http.MethodPut)
	o.HandleFunc("/{id:[0-9]+}/items", s.createItem).Methods(http.MethodPost)
	o.HandleFunc("/{id:[0-9]+}/items", s.listItems).Methods(http.MethodGet)
	o.HandleFunc("/{id:[0-9]+}/items/{item:[0-9]+}", s.getItem).Methods(http.MethodGet)
	o.HandleFunc("/{id:[0-9]+}/items/{item:[0-9]+}", s.updateItem).Methods(http.MethodPut)
	o.HandleFunc("/{id:[0-9]+}/items/{item:[0-9]+}", s.deleteItem).Methods(http.MethodDelete)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "The requested URL was not found on the server.")
	})

	s.Server = httptest.NewServer(r)
	return s
}

// Requests returns what has been received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Seed stores an order as if it had been created, assigning ids.
func (s *Server) Seed(customerID int64, status string, items ...model.ItemView) model.OrderView {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := &model.OrderView{Id: s.nextID, CustomerId: customerID, Status: status, CreatedOn: s.today, UpdatedOn: s.today, Items: []model.ItemView{}}
	s.nextID++
	for _, it := range items {
		it.Id = s.nextItem
		s.nextItem++
		it.OrderId = o.Id
		it.CreatedOn, it.UpdatedOn = s.today, s.today
		o.Items = append(o.Items, it)
	}
	s.orders[o.Id] = o
	return *o
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		r.Body.Close()
		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: string(b), RequestID: r.Header.Get("X-Request-ID")})
		s.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(b))
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"status":  status,
		"error":   http.StatusText(status),
		"message": message,
	})
}

func pathID(r *http.Request, name string) int64 {
	n, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return n
}

// lookup must be called with mu held.
func (s *Server) lookup(w http.ResponseWriter, id int64) *model.OrderView {
	o, ok := s.orders[id]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Order with id '%d' was not found.", id))
		return nil
	}
	return o
}

func (s *Server) sortedOrders() []model.OrderView {
	out := make([]model.OrderView, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}

// known accepts the API's statuses plus OPEN, the status the documented
// create example sends.
func known(status string) bool {
	for _, st := range model.Statuses {
		if st == status {
			return true
		}
	}
	return status == "OPEN"
}
