package flora

import (
	"context"
	"fmt"
	"net/http"
)

// Login exchanges credentials for an upstream bearer token plus the
// account's username and role.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.sendJSON(ctx, "", http.MethodPost, "/auth/login", req, "login", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account of the given type (customer/admin/bankuser).
// The upstream consumes multipart form data with an optional avatar image.
func (c *Client) Register(ctx context.Context, accountType string, fields []FormField, img *FormFile) (string, error) {
	path := "/auth/register/" + accountType
	req, err := c.sendMultipart(ctx, "", http.MethodPost, path, fields, img, "register")
	if err != nil {
		return "", err
	}
	return c.doText(req, "register")
}

// ChangePassword rotates the account password.
func (c *Client) ChangePassword(ctx context.Context, token string, userID int64, req ChangePasswordRequest) error {
	path := fmt.Sprintf("/auth/%d/change-password", userID)
	return c.sendJSON(ctx, token, http.MethodPut, path, req, "change password", nil)
}

// GetProfile fetches the logged-in account's profile.
func (c *Client) GetProfile(ctx context.Context, token string) (*UserProfile, error) {
	var profile UserProfile
	if err := c.getJSON(ctx, token, "/user/profile", nil, "get profile", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile updates account fields as multipart form data with an
// optional avatar image.
func (c *Client) UpdateProfile(ctx context.Context, token string, userID int64, fields []FormField, img *FormFile) error {
	path := fmt.Sprintf("/user/%d", userID)
	req, err := c.sendMultipart(ctx, token, http.MethodPut, path, fields, img, "update profile")
	if err != nil {
		return err
	}
	return c.doJSON(req, "update profile", nil)
}
