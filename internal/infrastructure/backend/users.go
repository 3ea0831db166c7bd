package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// ListUsers GET /api/users.
func (c *Client) ListUsers(ctx context.Context, token string, p dto.PageRequest) (*entity.Page[entity.User], error) {
	var out entity.Page[entity.User]
	if err := c.do(ctx, http.MethodGet, "/api/users", token, pageQuery(p.Page, p.Size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUserRole PATCH /api/users/{id}/role.
func (c *Client) UpdateUserRole(ctx context.Context, token, id string, in dto.UpdateRoleRequest) (*entity.User, error) {
	var out entity.User
	if err := c.do(ctx, http.MethodPatch, "/api/users/"+escapeID(id)+"/role", token, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser DELETE /api/users/{id}.
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+escapeID(id), token, nil, nil, nil)
}
