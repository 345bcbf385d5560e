package model

// Order statuses known to the Orders API.
const (
	StatusConfirmed  = "CONFIRMED"
	StatusInProgress = "IN_PROGRESS"
	StatusShipped    = "SHIPPED"
	StatusDelivered  = "DELIVERED"
	StatusCancelled  = "CANCELLED"
)

var Statuses = []string{StatusConfirmed, StatusInProgress, StatusShipped, StatusDelivered, StatusCancelled}

type OrderView struct {
	Id         int64      `json:"id"`
	CustomerId int64      `json:"customer_id"`
	Status     string     `json:"status"`
	CreatedOn  string     `json:"created_on"`
	UpdatedOn  string     `json:"updated_on"`
	Items      []ItemView `json:"items"`
}

type ItemView struct {
	Id        int64   `json:"id"`
	OrderId   int64   `json:"order_id"`
	ProductId int64   `json:"product_id"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
	CreatedOn string  `json:"created_on"`
	UpdatedOn string  `json:"updated_on"`
}

// OrderRequest is the body of create and update order calls.
type OrderRequest struct {
	CustomerId int64  `json:"customer_id"`
	Status     string `json:"status,omitempty"`
}

type ItemRequest struct {
	ProductId int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	OrderId   int64   `json:"order_id"`
	Price     float64 `json:"price"`
}
