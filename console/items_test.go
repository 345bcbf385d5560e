package console_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seroter.com/orderconsole/console"
	"seroter.com/orderconsole/model"
)

func TestCreateItem(t *testing.T) {
	ctrl, srv := setup(t)
	srv.Seed(5, model.StatusConfirmed)

	s := ctrl.CreateItem(context.Background(), model.State{
		Item: model.ItemForm{OrderId: "1", ProductId: "11", Quantity: "2", Price: "19.99"},
	})

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/api/orders/1/items", reqs[0].Path)
	assert.JSONEq(t, `{"product_id":11,"quantity":2,"order_id":1,"price":19.99}`, reqs[0].Body)

	assert.Equal(t, "1", s.Item.Id)
	assert.Equal(t, "19.99", s.Item.Price)
	assert.Equal(t, console.MsgSuccess, s.Flash)
}

func TestCreateItemPriceFormats(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{".5", `{"product_id":11,"quantity":2,"order_id":1,"price":0.5}`},
		{"1e2", `{"product_id":11,"quantity":2,"order_id":1,"price":100}`},
		{"0", `{"product_id":11,"quantity":2,"order_id":1,"price":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			ctrl, srv := setup(t)
			srv.Seed(5, model.StatusConfirmed)

			s := ctrl.CreateItem(context.Background(), model.State{
				Item: model.ItemForm{OrderId: "1", ProductId: "11", Quantity: "2", Price: tt.price},
			})

			reqs := srv.Requests()
			require.Len(t, reqs, 1)
			assert.JSONEq(t, tt.want, reqs[0].Body)
			assert.Equal(t, console.MsgSuccess, s.Flash)
		})
	}
}

func TestCreateItemFailureKeepsFields(t *testing.T) {
	ctrl, _ := setup(t)
	in := model.State{Item: model.ItemForm{OrderId: "8", ProductId: "11", Quantity: "2", Price: "3"}}

	s := ctrl.CreateItem(context.Background(), in)

	assert.Equal(t, in.Item, s.Item)
	assert.Equal(t, "Order with id '8' was not found.", s.Flash)
}

func TestListItems(t *testing.T) {
	ctrl, srv := setup(t)
	srv.Seed(5, model.StatusConfirmed,
		model.ItemView{ProductId: 11, Quantity: 1, Price: 1.5},
		model.ItemView{ProductId: 12, Quantity: 3, Price: 2},
	)

	s := ctrl.ListItems(context.Background(), model.State{Item: model.ItemForm{OrderId: "1"}})

	require.Len(t, s.Items, 2)
	assert.Equal(t, int64(11), s.Items[0].ProductId)
	assert.Equal(t, int64(12), s.Items[1].ProductId)

	want := model.ItemForm{
		Id:        "1",
		OrderId:   "1",
		ProductId: "11",
		Price:     "1.5",
		Quantity:  "1",
		CreatedOn: s.Items[0].CreatedOn,
		UpdatedOn: s.Items[0].UpdatedOn,
	}
	if diff := cmp.Diff(want, s.Item); diff != "" {
		t.Fatalf("item form mismatch (-want +got):\n%s", diff)
	}
}

func TestListItemsEmptyClearsForm(t *testing.T) {
	ctrl, srv := setup(t)
	srv.Seed(5, model.StatusConfirmed)

	s := ctrl.ListItems(context.Background(), model.State{
		Item: model.ItemForm{OrderId: "1", Id: "4", ProductId: "2", Price: "3", Quantity: "1"},
	})

	assert.Empty(t, s.Items)
	assert.Equal(t, model.ItemForm{OrderId: "1", Id: "4"}, s.Item)
	assert.Equal(t, console.MsgSuccess, s.Flash)
}

func TestListItemsFailure(t *testing.T) {
	ctrl, _ := setup(t)

	s := ctrl.ListItems(context.Background(), model.State{
		Item:  model.ItemForm{OrderId: "3", ProductId: "2", Price: "3", Quantity: "1"},
		Items: []model.ItemView{{Id: 1}},
	})

	assert.Nil(t, s.Items)
	assert.Equal(t, model.ItemForm{OrderId: "3"}, s.Item)
	assert.Equal(t, "Order with id '3' was not found.", s.Flash)
}

func TestRetrieveItem(t *testing.T) {
	ctrl, srv := setup(t)
	srv.Seed(5, model.StatusConfirmed, model.ItemView{ProductId: 11, Quantity: 1, Price: 4})

	s := ctrl.RetrieveItem(context.Background(), model.State{Item: model.ItemForm{OrderId: "1", Id: "1"}})
	assert.Equal(t, "11", s.Item.ProductId)
	assert.Equal(t, "4", s.Item.Price)
	assert.Equal(t, console.MsgSuccess, s.Flash)

	s = ctrl.RetrieveItem(context.Background(), model.State{Item: model.ItemForm{OrderId: "1", Id: "9", ProductId: "11"}})
	assert.Equal(t, model.ItemForm{OrderId: "1", Id: "9"}, s.Item)
	assert.Equal(t, "Item with id '9' was not found.", s.Flash)

	assert.Equal(t, "/api/orders/1/items/9", srv.Requests()[1].Path)
}

func TestUpdateItem(t *testing.T) {
	ctrl, srv := setup(t)
	srv.Seed(5, model.StatusConfirmed, model.ItemView{ProductId: 11, Quantity: 1, Price: 4})

	s := ctrl.UpdateItem(context.Background(), model.State{
		Item: model.ItemForm{OrderId: "1", Id: "1", ProductId: "12", Quantity: "6", Price: "3.25"},
	})

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, "/api/orders/1/items/1", reqs[0].Path)
	assert.JSONEq(t, `{"product_id":12,"quantity":6,"order_id":1,"price":3.25}`, reqs[0].Body)
	assert.Equal(t, "12", s.Item.ProductId)
	assert.Equal(t, "6", s.Item.Quantity)
	assert.Equal(t, console.MsgSuccess, s.Flash)
}

func TestUpdateItemFailureKeepsFields(t *testing.T) {
	ctrl, srv := setup(t)
	srv.Seed(5, model.StatusConfirmed)
	in := model.State{Item: model.ItemForm{OrderId: "1", Id: "7", ProductId: "12", Quantity: "6", Price: "3"}}

	s := ctrl.UpdateItem(context.Background(), in)

	assert.Equal(t, in.Item, s.Item)
	assert.Equal(t, "Item with id '7' was not found.", s.Flash)
}

func TestDeleteItem(t *testing.T) {
	ctrl, srv := setup(t)
	srv.Seed(5, model.StatusConfirmed, model.ItemView{ProductId: 11, Quantity: 1, Price: 4})

	s := ctrl.DeleteItem(context.Background(), model.State{
		Item: model.ItemForm{OrderId: "1", Id: "1", ProductId: "11", Quantity: "1", Price: "4"},
	})

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodDelete, reqs[0].Method)
	assert.Equal(t, "/api/orders/1/items/1", reqs[0].Path)
	assert.Equal(t, model.ItemForm{OrderId: "1", Id: "1"}, s.Item)
	assert.Equal(t, console.MsgItemDeleted, s.Flash)

	s = ctrl.DeleteItem(context.Background(), model.State{Item: model.ItemForm{OrderId: "2", Id: "1", Price: "4"}})
	assert.Equal(t, model.ItemForm{OrderId: "2", Id: "1"}, s.Item)
	assert.Equal(t, "Order with id '2' was not found.", s.Flash)
}

func TestClearItem(t *testing.T) {
	ctrl, _ := setup(t)
	order := model.OrderForm{Id: "1"}

	s := ctrl.ClearItem(context.Background(), model.State{
		Order: order,
		Item:  model.ItemForm{OrderId: "1", Id: "2", Price: "3"},
		Flash: "Success",
	})

	assert.Equal(t, model.ItemForm{}, s.Item)
	assert.Equal(t, order, s.Order)
	assert.Empty(t, s.Flash)
}
