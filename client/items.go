package client

import (
	"context"
	"fmt"
	"net/http"

	"seroter.com/orderconsole/model"
)

func (c *Client) itemsPath(orderID int64) string {
	return fmt.Sprintf("%s/%d/items", c.prefix, orderID)
}

func (c *Client) itemPath(orderID, itemID int64) string {
	return fmt.Sprintf("%s/%d", c.itemsPath(orderID), itemID)
}

func (c *Client) CreateItem(ctx context.Context, orderID int64, req model.ItemRequest) (model.ItemView, error) {
	var item model.ItemView
	err := c.do(ctx, http.MethodPost, c.itemsPath(orderID), req, &item)
	return item, err
}

func (c *Client) ListItems(ctx context.Context, orderID int64) ([]model.ItemView, error) {
	var items []model.ItemView
	err := c.do(ctx, http.MethodGet, c.itemsPath(orderID), nil, &items)
	return items, err
}

func (c *Client) GetItem(ctx context.Context, orderID, itemID int64) (model.ItemView, error) {
	var item model.ItemView
	err := c.do(ctx, http.MethodGet, c.itemPath(orderID, itemID), nil, &item)
	return item, err
}

func (c *Client) UpdateItem(ctx context.Context, orderID, itemID int64, req model.ItemRequest) (model.ItemView, error) {
	var item model.ItemView
	err := c.do(ctx, http.MethodPut, c.itemPath(orderID, itemID), req, &item)
	return item, err
}

func (c *Client) DeleteItem(ctx context.Context, orderID, itemID int64) error {
	return c.do(ctx, http.MethodDelete, c.itemPath(orderID, itemID), nil, nil)
}
