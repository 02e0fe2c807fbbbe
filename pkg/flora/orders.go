package flora

import (
	"context"
	"fmt"
	"net/http"
)

// SubmitCheckout posts the checkout payload and returns the created order.
func (c *Client) SubmitCheckout(ctx context.Context, token string, req CheckoutRequest) (*Order, error) {
	var order Order
	if err := c.sendJSON(ctx, token, http.MethodPost, "/flora/checkout", req, "checkout", &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderHistory fetches the calling customer's orders, newest first.
func (c *Client) OrderHistory(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.getJSON(ctx, token, "/flora/history", nil, "order history", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrders fetches every order (admin surface).
func (c *Client) ListOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.getJSON(ctx, token, "/flora", nil, "list orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus advances an order's shipping status.
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, orderID int64, status ShippingStatus) (*Order, error) {
	var order Order
	path := fmt.Sprintf("/flora/%d/status/%s", orderID, status)
	req, err := c.newRequest(ctx, token, http.MethodPut, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if err := c.doJSON(req, "update order status", &order); err != nil {
		return nil, err
	}
	return &order, nil
}
