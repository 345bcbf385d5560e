package console

import (
	"context"

	log "github.com/sirupsen/logrus"

	"seroter.com/orderconsole/client"
	"seroter.com/orderconsole/model"
)

const (
	MsgSuccess        = "Success"
	MsgOrderCancelled = "Order has been CANCELLED!"
	MsgOrderDeleted   = "Order has been Deleted!"
	MsgItemDeleted    = "Item has been Deleted!"
)

// OrdersAPI is the remote side of the console. *client.Client implements it.
type OrdersAPI interface {
	CreateOrder(ctx context.Context, req model.OrderRequest) (model.OrderView, error)
	GetOrder(ctx context.Context, id int64) (model.OrderView, error)
	SearchOrders(ctx context.Context, f client.Filter) ([]model.OrderView, error)
	UpdateOrder(ctx context.Context, id int64, req model.OrderRequest) (model.OrderView, error)
	CancelOrder(ctx context.Context, id int64) (model.OrderView, error)
	DeleteOrder(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, orderID int64, req model.ItemRequest) (model.ItemView, error)
	ListItems(ctx context.Context, orderID int64) ([]model.ItemView, error)
	GetItem(ctx context.Context, orderID, itemID int64) (model.ItemView, error)
	UpdateItem(ctx context.Context, orderID, itemID int64, req model.ItemRequest) (model.ItemView, error)
	DeleteItem(ctx context.Context, orderID, itemID int64) error
}

// Controller binds console actions to the Orders API. It keeps no state of
// its own: every handler receives the page state and returns the next one.
type Controller struct {
	api OrdersAPI
	log *log.Entry
}

func NewController(api OrdersAPI, logger *log.Entry) *Controller {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Controller{api: api, log: logger}
}

// Handler is one console action.
type Handler func(ctx context.Context, s model.State) model.State

// Handlers maps the action names posted by the page's buttons.
func (c *Controller) Handlers() map[string]Handler {
	return map[string]Handler{
		"create":        c.CreateOrder,
		"retrieve":      c.RetrieveOrder,
		"search":        c.SearchOrders,
		"update":        c.UpdateOrder,
		"cancel":        c.CancelOrder,
		"delete":        c.DeleteOrder,
		"clear":         c.ClearOrder,
		"create-item":   c.CreateItem,
		"list-item":     c.ListItems,
		"retrieve-item": c.RetrieveItem,
		"update-item":   c.UpdateItem,
		"delete-item":   c.DeleteItem,
		"clear-item":    c.ClearItem,
	}
}

func (c *Controller) invalid(s model.State, action string) model.State {
	c.log.WithField("action", action).Info("rejected by local validation")
	s.Flash = ValidationMessage
	return s
}

func (c *Controller) failed(s model.State, action string, err error) model.State {
	c.log.WithError(err).WithField("action", action).Warn("console action failed")
	s.Flash = client.Message(err)
	return s
}

func (c *Controller) CreateOrder(ctx context.Context, s model.State) model.State {
	in := orderInput{CustomerId: trim(s.Order.CustomerId), Status: trim(s.Order.Status)}
	if !check(in) {
		return c.invalid(s, "create")
	}
	n, ok := ids(in.CustomerId)
	if !ok {
		return c.invalid(s, "create")
	}

	order, err := c.api.CreateOrder(ctx, model.OrderRequest{CustomerId: n[0], Status: in.Status})
	if err != nil {
		return c.failed(s, "create", err)
	}
	s.Order.Fill(order)
	s.Flash = MsgSuccess
	return s
}

func (c *Controller) RetrieveOrder(ctx context.Context, s model.State) model.State {
	in := orderKey{OrderId: trim(s.Order.Id)}
	if !check(in) {
		return c.invalid(s, "retrieve")
	}
	n, ok := ids(in.OrderId)
	if !ok {
		return c.invalid(s, "retrieve")
	}

	order, err := c.api.GetOrder(ctx, n[0])
	if err != nil {
		s.Order.Clear()
		return c.failed(s, "retrieve", err)
	}
	s.Order.Fill(order)
	s.Flash = MsgSuccess
	return s
}

// SearchOrders sends a single filter, picked customer id first, then
// status, then product id.
func (c *Controller) SearchOrders(ctx context.Context, s model.State) model.State {
	in := searchInput{
		CustomerId: trim(s.Order.CustomerId),
		Status:     trim(s.Order.Status),
		ProductId:  trim(s.Order.ProductId),
	}

	var f client.Filter
	switch {
	case in.CustomerId != "":
		n, ok := ids(in.CustomerId)
		if !ok {
			return c.invalid(s, "search")
		}
		f.CustomerId = &n[0]
	case in.Status != "":
		f.Status = in.Status
	case in.ProductId != "":
		n, ok := ids(in.ProductId)
		if !ok {
			return c.invalid(s, "search")
		}
		f.ProductId = &n[0]
	}

	orders, err := c.api.SearchOrders(ctx, f)
	if err != nil {
		s.Orders = nil
		return c.failed(s, "search", err)
	}
	s.Orders = orders
	if len(orders) > 0 {
		s.Order.Fill(orders[0])
	} else {
		s.Order.Clear()
	}
	s.Flash = MsgSuccess
	return s
}

func (c *Controller) UpdateOrder(ctx context.Context, s model.State) model.State {
	in := orderUpdate{
		OrderId:    trim(s.Order.Id),
		CustomerId: trim(s.Order.CustomerId),
		Status:     trim(s.Order.Status),
	}
	if !check(in) {
		return c.invalid(s, "update")
	}
	n, ok := ids(in.OrderId, in.CustomerId)
	if !ok {
		return c.invalid(s, "update")
	}

	order, err := c.api.UpdateOrder(ctx, n[0], model.OrderRequest{CustomerId: n[1], Status: in.Status})
	if err != nil {
		return c.failed(s, "update", err)
	}
	s.Order.Fill(order)
	s.Flash = MsgSuccess
	return s
}

func (c *Controller) CancelOrder(ctx context.Context, s model.State) model.State {
	in := orderKey{OrderId: trim(s.Order.Id)}
	if !check(in) {
		return c.invalid(s, "cancel")
	}
	n, ok := ids(in.OrderId)
	if !ok {
		return c.invalid(s, "cancel")
	}

	order, err := c.api.CancelOrder(ctx, n[0])
	if err != nil {
		s.Order.Clear()
		return c.failed(s, "cancel", err)
	}
	s.Order.Fill(order)
	s.Flash = MsgOrderCancelled
	return s
}

func (c *Controller) DeleteOrder(ctx context.Context, s model.State) model.State {
	in := orderKey{OrderId: trim(s.Order.Id)}
	if !check(in) {
		return c.invalid(s, "delete")
	}
	n, ok := ids(in.OrderId)
	if !ok {
		return c.invalid(s, "delete")
	}

	err := c.api.DeleteOrder(ctx, n[0])
	s.Order.Clear()
	if err != nil {
		return c.failed(s, "delete", err)
	}
	s.Flash = MsgOrderDeleted
	return s
}

// ClearOrder resets the whole order form, id included. No request is made.
func (c *Controller) ClearOrder(_ context.Context, s model.State) model.State {
	s.Order = model.OrderForm{}
	s.Flash = ""
	return s
}
