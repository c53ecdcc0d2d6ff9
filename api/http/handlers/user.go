package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/accounts/api/http/presenter"
	"github.com/artem13815/accounts/pkg/account"
	"github.com/artem13815/accounts/pkg/credential"
	"github.com/artem13815/accounts/pkg/security/jwt"
)

type UserHandler struct {
	accounts account.UseCase
	creds    credential.UseCase
}

func NewUserHandler(accounts account.UseCase, creds credential.UseCase) *UserHandler {
	return &UserHandler{accounts: accounts, creds: creds}
}

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// userResponse lists exactly the public fields; password material never
// appears in any response shape.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func publicUser(u account.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// Create handles account creation.
// @Summary Create user
// @Tags    user
// @Accept  json
// @Produce json
// @Param   input body createUserRequest true "registration payload"
// @Success 201 {object} userResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /user/create [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	user, err := h.accounts.Create(c.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidEmail):
			return presenter.Error(c, http.StatusBadRequest, "invalid email address")
		case errors.Is(err, account.ErrWeakPassword):
			return presenter.Error(c, http.StatusBadRequest, "password is too short")
		case errors.Is(err, account.ErrEmailTaken):
			return presenter.Error(c, http.StatusBadRequest, "email already registered")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to create user")
		}
	}

	return presenter.JSON(c, http.StatusCreated, publicUser(user))
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Token issues a bearer token for valid credentials. Unknown email, wrong
// password and inactive account all produce the same response.
// @Summary Obtain token
// @Tags    user
// @Accept  json
// @Produce json
// @Param   input body tokenRequest true "login payload"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /user/token [post]
func (h *UserHandler) Token(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	token, err := h.creds.Authenticate(c.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, credential.ErrMissingCredentials):
			return presenter.Error(c, http.StatusBadRequest, "email and password are required")
		case errors.Is(err, credential.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusBadRequest, "unable to authenticate with provided credentials")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to issue token")
		}
	}

	return presenter.JSON(c, http.StatusOK, tokenResponse{Token: token})
}

// Me returns the authenticated user's profile.
// @Summary Own profile
// @Tags    user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /user/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, ok := c.Locals(jwt.LocalsUser).(account.User)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "not authenticated")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"name":  user.Name,
		"email": user.Email,
	})
}

type updateMeRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// UpdateMe applies a partial profile update to the caller's own record.
// @Summary Update own profile
// @Tags    user
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body updateMeRequest true "fields to change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /user/me [patch]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	user, ok := c.Locals(jwt.LocalsUser).(account.User)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "not authenticated")
	}

	var req updateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	updated, err := h.accounts.Update(c.Context(), user.ID, user.ID, account.Patch{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, account.ErrWeakPassword):
			return presenter.Error(c, http.StatusBadRequest, "password is too short")
		case errors.Is(err, account.ErrForbidden):
			return presenter.Error(c, http.StatusForbidden, "cannot modify another user's record")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to update user")
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"name":  updated.Name,
		"email": updated.Email,
	})
}

// MeNotAllowed rejects POST on the profile resource.
// @Summary Method not permitted
// @Tags    user
// @Router  /user/me [post]
func (h *UserHandler) MeNotAllowed(c *fiber.Ctx) error {
	return presenter.Error(c, http.StatusMethodNotAllowed, "method not allowed")
}

// Logout revokes the presented token's session.
// @Summary Revoke current token
// @Tags    user
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /user/logout [post]
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	token, ok := c.Locals(jwt.LocalsToken).(string)
	if !ok || token == "" {
		return presenter.Error(c, http.StatusUnauthorized, "not authenticated")
	}
	if err := h.creds.Revoke(c.Context(), token); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to revoke token")
	}
	return c.SendStatus(http.StatusNoContent)
}

// List returns a page of users; staff only.
// @Summary List users
// @Tags    user
// @Produce json
// @Security BearerAuth
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Success 200 {array} userResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /user/list [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	caller, ok := c.Locals(jwt.LocalsUser).(account.User)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "not authenticated")
	}
	if !caller.IsStaff {
		return presenter.Error(c, http.StatusForbidden, "staff access required")
	}

	limit, offset := parseLimitOffset(c, 50)
	users, err := h.accounts.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list users")
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, publicUser(u))
	}
	return presenter.JSON(c, http.StatusOK, out)
}
