package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"seroter.com/orderconsole/model"
)

// Filter selects orders by a single attribute. When several are set only the
// first by precedence is sent: CustomerId, then Status, then ProductId.
type Filter struct {
	CustomerId *int64
	Status     string
	ProductId  *int64
}

// Query returns the encoded query string, empty when no filter is set.
func (f Filter) Query() string {
	v := url.Values{}
	switch {
	case f.CustomerId != nil:
		v.Set("customer_id", strconv.FormatInt(*f.CustomerId, 10))
	case f.Status != "":
		v.Set("status", f.Status)
	case f.ProductId != nil:
		v.Set("product_id", strconv.FormatInt(*f.ProductId, 10))
	}
	return v.Encode()
}

func (c *Client) orderPath(id int64) string {
	return fmt.Sprintf("%s/%d", c.prefix, id)
}

func (c *Client) CreateOrder(ctx context.Context, req model.OrderRequest) (model.OrderView, error) {
	var order model.OrderView
	err := c.do(ctx, http.MethodPost, c.prefix, req, &order)
	return order, err
}

func (c *Client) GetOrder(ctx context.Context, id int64) (model.OrderView, error) {
	var order model.OrderView
	err := c.do(ctx, http.MethodGet, c.orderPath(id), nil, &order)
	return order, err
}

func (c *Client) SearchOrders(ctx context.Context, f Filter) ([]model.OrderView, error) {
	path := c.prefix
	if q := f.Query(); q != "" {
		path += "?" + q
	}
	var orders []model.OrderView
	err := c.do(ctx, http.MethodGet, path, nil, &orders)
	return orders, err
}

func (c *Client) UpdateOrder(ctx context.Context, id int64, req model.OrderRequest) (model.OrderView, error) {
	var order model.OrderView
	err := c.do(ctx, http.MethodPut, c.orderPath(id), req, &order)
	return order, err
}

func (c *Client) CancelOrder(ctx context.Context, id int64) (model.OrderView, error) {
	var order model.OrderView
	err := c.do(ctx, http.MethodPut, c.orderPath(id)+"/cancel", nil, &order)
	return order, err
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.orderPath(id), nil, nil)
}
