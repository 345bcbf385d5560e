package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"seroter.com/orderconsole/model"
)

type orderBody struct {
	CustomerId *int64 `json:"customer_id"`
	Status     string `json:"status"`
}

type itemBody struct {
	ProductId *int64   `json:"product_id"`
	Quantity  *int64   `json:"quantity"`
	Price     *float64 `json:"price"`
}

func decodeOrder(w http.ResponseWriter, r *http.Request) (orderBody, bool) {
	var b orderBody
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Order: body of request contained bad or no data")
		return b, false
	}
	if b.CustomerId == nil {
		writeError(w, http.StatusBadRequest, "Invalid Order: missing customer_id")
		return b, false
	}
	if b.Status != "" && !known(b.Status) {
		writeError(w, http.StatusBadRequest, "Invalid attribute: "+b.Status)
		return b, false
	}
	return b, true
}

func decodeItem(w http.ResponseWriter, r *http.Request) (itemBody, bool) {
	var b itemBody
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Order: body of request contained bad or no data")
		return b, false
	}
	switch {
	case b.ProductId == nil:
		writeError(w, http.StatusBadRequest, "Invalid Order: missing product_id")
		return b, false
	case b.Quantity == nil:
		writeError(w, http.StatusBadRequest, "Invalid Order: missing quantity")
		return b, false
	case b.Price == nil:
		writeError(w, http.StatusBadRequest, "Invalid Order: missing price")
		return b, false
	}
	return b, true
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	b, ok := decodeOrder(w, r)
	if !ok {
		return
	}
	status := b.Status
	if status == "" {
		status = model.StatusConfirmed
	}
	o := s.Seed(*b.CustomerId, status)
	w.Header().Set("Location", fmt.Sprintf("%s/%d", r.URL.Path, o.Id))
	writeJSON(w, http.StatusCreated, o)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o := s.lookup(w, pathID(r, "id")); o != nil {
		writeJSON(w, http.StatusOK, o)
	}
}

// searchOrders filters on every parameter it is given.
func (s *Server) searchOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []model.OrderView{}
	for _, o := range s.sortedOrders() {
		if v := q.Get("customer_id"); v != "" && v != strconv.FormatInt(o.CustomerId, 10) {
			continue
		}
		if v := q.Get("status"); v != "" && v != o.Status {
			continue
		}
		if v := q.Get("product_id"); v != "" && !hasProduct(o, v) {
			continue
		}
		out = append(out, o)
	}
	writeJSON(w, http.StatusOK, out)
}

func hasProduct(o model.OrderView, productID string) bool {
	for _, it := range o.Items {
		if strconv.FormatInt(it.ProductId, 10) == productID {
			return true
		}
	}
	return false
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	b, ok := decodeOrder(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.lookup(w, pathID(r, "id"))
	if o == nil {
		return
	}
	o.CustomerId = *b.CustomerId
	if b.Status != "" {
		o.Status = b.Status
	}
	o.UpdatedOn = s.today
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.lookup(w, pathID(r, "id"))
	if o == nil {
		return
	}
	if o.Status == model.StatusShipped || o.Status == model.StatusDelivered {
		writeError(w, http.StatusConflict, fmt.Sprintf("Order with id '%d' has been %s and cannot be cancelled.", o.Id, o.Status))
		return
	}
	o.Status = model.StatusCancelled
	o.UpdatedOn = s.today
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, pathID(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	b, ok := decodeItem(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.lookup(w, pathID(r, "id"))
	if o == nil {
		return
	}
	it := model.ItemView{
		Id:        s.nextItem,
		OrderId:   o.Id,
		ProductId: *b.ProductId,
		Quantity:  *b.Quantity,
		Price:     *b.Price,
		CreatedOn: s.today,
		UpdatedOn: s.today,
	}
	s.nextItem++
	o.Items = append(o.Items, it)
	writeJSON(w, http.StatusCreated, it)
}

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o := s.lookup(w, pathID(r, "id")); o != nil {
		items := append([]model.ItemView{}, o.Items...)
		writeJSON(w, http.StatusOK, items)
	}
}

// findItem must be called with mu held.
func (s *Server) findItem(w http.ResponseWriter, r *http.Request) (*model.OrderView, int) {
	o := s.lookup(w, pathID(r, "id"))
	if o == nil {
		return nil, -1
	}
	itemID := pathID(r, "item")
	for i := range o.Items {
		if o.Items[i].Id == itemID {
			return o, i
		}
	}
	writeError(w, http.StatusNotFound, fmt.Sprintf("Item with id '%d' was not found.", itemID))
	return nil, -1
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, i := s.findItem(w, r); o != nil {
		writeJSON(w, http.StatusOK, o.Items[i])
	}
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	b, ok := decodeItem(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, i := s.findItem(w, r)
	if o == nil {
		return
	}
	it := &o.Items[i]
	it.ProductId = *b.ProductId
	it.Quantity = *b.Quantity
	it.Price = *b.Price
	it.UpdatedOn = s.today
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.lookup(w, pathID(r, "id"))
	if o == nil {
		return
	}
	itemID := pathID(r, "item")
	kept := o.Items[:0]
	for _, it := range o.Items {
		if it.Id != itemID {
			kept = append(kept, it)
		}
	}
	o.Items = kept
	w.WriteHeader(http.StatusNoContent)
}
