package console

import (
	"context"

	"seroter.com/orderconsole/model"
)

func (c *Controller) itemRequest(in itemInput) (int64, model.ItemRequest, bool) {
	n, ok := ids(in.OrderId, in.ProductId, in.Quantity)
	if !ok {
		return 0, model.ItemRequest{}, false
	}
	p, ok := price(in.Price)
	if !ok {
		return 0, model.ItemRequest{}, false
	}
	return n[0], model.ItemRequest{OrderId: n[0], ProductId: n[1], Quantity: n[2], Price: p}, true
}

func readItemInput(f model.ItemForm) itemInput {
	return itemInput{
		OrderId:   trim(f.OrderId),
		ProductId: trim(f.ProductId),
		Quantity:  trim(f.Quantity),
		Price:     trim(f.Price),
	}
}

func (c *Controller) CreateItem(ctx context.Context, s model.State) model.State {
	in := readItemInput(s.Item)
	if !check(in) {
		return c.invalid(s, "create-item")
	}
	orderID, req, ok := c.itemRequest(in)
	if !ok {
		return c.invalid(s, "create-item")
	}

	item, err := c.api.CreateItem(ctx, orderID, req)
	if err != nil {
		return c.failed(s, "create-item", err)
	}
	s.Item.Fill(item)
	s.Flash = MsgSuccess
	return s
}

func (c *Controller) ListItems(ctx context.Context, s model.State) model.State {
	in := orderKey{OrderId: trim(s.Item.OrderId)}
	if !check(in) {
		return c.invalid(s, "list-item")
	}
	n, ok := ids(in.OrderId)
	if !ok {
		return c.invalid(s, "list-item")
	}

	items, err := c.api.ListItems(ctx, n[0])
	if err != nil {
		s.Items = nil
		s.Item.Clear()
		return c.failed(s, "list-item", err)
	}
	s.Items = items
	if len(items) > 0 {
		s.Item.Fill(items[0])
	} else {
		s.Item.Clear()
	}
	s.Flash = MsgSuccess
	return s
}

func (c *Controller) RetrieveItem(ctx context.Context, s model.State) model.State {
	in := itemKey{OrderId: trim(s.Item.OrderId), ItemId: trim(s.Item.Id)}
	if !check(in) {
		return c.invalid(s, "retrieve-item")
	}
	n, ok := ids(in.OrderId, in.ItemId)
	if !ok {
		return c.invalid(s, "retrieve-item")
	}

	item, err := c.api.GetItem(ctx, n[0], n[1])
	if err != nil {
		s.Item.Clear()
		return c.failed(s, "retrieve-item", err)
	}
	s.Item.Fill(item)
	s.Flash = MsgSuccess
	return s
}

func (c *Controller) UpdateItem(ctx context.Context, s model.State) model.State {
	in := itemUpdate{itemInput: readItemInput(s.Item), ItemId: trim(s.Item.Id)}
	if !check(in) {
		return c.invalid(s, "update-item")
	}
	orderID, req, ok := c.itemRequest(in.itemInput)
	if !ok {
		return c.invalid(s, "update-item")
	}
	n, ok := ids(in.ItemId)
	if !ok {
		return c.invalid(s, "update-item")
	}

	item, err := c.api.UpdateItem(ctx, orderID, n[0], req)
	if err != nil {
		return c.failed(s, "update-item", err)
	}
	s.Item.Fill(item)
	s.Flash = MsgSuccess
	return s
}

func (c *Controller) DeleteItem(ctx context.Context, s model.State) model.State {
	in := itemKey{OrderId: trim(s.Item.OrderId), ItemId: trim(s.Item.Id)}
	if !check(in) {
		return c.invalid(s, "delete-item")
	}
	n, ok := ids(in.OrderId, in.ItemId)
	if !ok {
		return c.invalid(s, "delete-item")
	}

	err := c.api.DeleteItem(ctx, n[0], n[1])
	s.Item.Clear()
	if err != nil {
		return c.failed(s, "delete-item", err)
	}
	s.Flash = MsgItemDeleted
	return s
}

func (c *Controller) ClearItem(_ context.Context, s model.State) model.State {
	s.Item = model.ItemForm{}
	s.Flash = ""
	return s
}
