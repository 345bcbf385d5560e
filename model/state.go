package model

import "strconv"

// OrderForm holds the order fields as typed into the page.
// ProductId is the third search filter.
type OrderForm struct {
	Id         string `json:"order_id" form:"order_id"`
	CustomerId string `json:"customer_id" form:"order_customer_id"`
	Status     string `json:"status" form:"order_status"`
	ProductId  string `json:"product_id" form:"order_product_id"`
	CreatedOn  string `json:"created_on" form:"order_created_on"`
	UpdatedOn  string `json:"updated_on" form:"order_updated_on"`
}

type ItemForm struct {
	Id        string `json:"item_id" form:"item_id"`
	OrderId   string `json:"order_id" form:"item_order_id"`
	ProductId string `json:"product_id" form:"item_product_id"`
	Price     string `json:"price" form:"item_price"`
	Quantity  string `json:"quantity" form:"item_quantity"`
	CreatedOn string `json:"created_on" form:"item_created_on"`
	UpdatedOn string `json:"updated_on" form:"item_updated_on"`
}

// State is everything the console page shows. Handlers take one and
// return the next.
type State struct {
	Order  OrderForm   `json:"order"`
	Item   ItemForm    `json:"item"`
	Flash  string      `json:"flash"`
	Orders []OrderView `json:"orders,omitempty"`
	Items  []ItemView  `json:"items,omitempty"`
}

// Fill copies o into the order form.
func (f *OrderForm) Fill(o OrderView) {
	f.Id = strconv.FormatInt(o.Id, 10)
	f.CustomerId = strconv.FormatInt(o.CustomerId, 10)
	f.Status = o.Status
	f.CreatedOn = o.CreatedOn
	f.UpdatedOn = o.UpdatedOn
}

// Clear resets the order fields but keeps the order id.
func (f *OrderForm) Clear() {
	f.CustomerId = ""
	f.Status = ""
	f.CreatedOn = ""
	f.UpdatedOn = ""
}

func (f *ItemForm) Fill(i ItemView) {
	f.Id = strconv.FormatInt(i.Id, 10)
	f.OrderId = strconv.FormatInt(i.OrderId, 10)
	f.ProductId = strconv.FormatInt(i.ProductId, 10)
	f.Price = strconv.FormatFloat(i.Price, 'f', -1, 64)
	f.Quantity = strconv.FormatInt(i.Quantity, 10)
	f.CreatedOn = i.CreatedOn
	f.UpdatedOn = i.UpdatedOn
}

// Clear resets the item fields but keeps the order and item ids.
func (f *ItemForm) Clear() {
	f.ProductId = ""
	f.Price = ""
	f.Quantity = ""
	f.CreatedOn = ""
	f.UpdatedOn = ""
}
