package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seroter.com/orderconsole/model"
)

func TestOrderFormFillAndClear(t *testing.T) {
	f := model.OrderForm{ProductId: "3"}

	f.Fill(model.OrderView{Id: 42, CustomerId: 7, Status: "OPEN", CreatedOn: "2024-01-02", UpdatedOn: "2024-01-03"})
	assert.Equal(t, model.OrderForm{Id: "42", CustomerId: "7", Status: "OPEN", ProductId: "3", CreatedOn: "2024-01-02", UpdatedOn: "2024-01-03"}, f)

	f.Clear()
	assert.Equal(t, model.OrderForm{Id: "42", ProductId: "3"}, f)
}

func TestItemFormFillAndClear(t *testing.T) {
	var f model.ItemForm

	f.Fill(model.ItemView{Id: 2, OrderId: 1, ProductId: 9, Price: 10, Quantity: 3, CreatedOn: "a", UpdatedOn: "b"})
	assert.Equal(t, model.ItemForm{Id: "2", OrderId: "1", ProductId: "9", Price: "10", Quantity: "3", CreatedOn: "a", UpdatedOn: "b"}, f)

	f.Fill(model.ItemView{Price: 0.1})
	assert.Equal(t, "0.1", f.Price)

	f.Clear()
	assert.Equal(t, model.ItemForm{Id: "0", OrderId: "0"}, f)
}
