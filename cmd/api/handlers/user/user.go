package handlers

import (
	"context"
	"net/http"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/user/service"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/response"
	"VideoHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type UserService interface {
	Register(ctx context.Context, req service.RegisterParam) (*model.User, error)
	Login(ctx context.Context, identifier, password string) (identity.Caller, error)
	GetCurrentUser(ctx context.Context, caller identity.Caller) (*model.User, error)
}

type Handler struct {
	users   UserService
	tempDir string
}

func New(users UserService, tempDir string) *Handler {
	return &Handler{users: users, tempDir: tempDir}
}

type RegisterParam struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	FullName string `json:"fullName" form:"fullName"`
	Password string `json:"password" form:"password"`
}

type LoginParam struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (h *Handler) Register(ctx context.Context, c *app.RequestContext) {
	var req RegisterParam
	if err := response.Bind(c, &req); err != nil {
		response.SendError(ctx, c, err)
		return
	}
	avatar, err := utils.SaveFormFile(c, "avatar", h.tempDir)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	defer utils.RemoveFiles(avatar)

	user, err := h.users.Register(ctx, service.RegisterParam{
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   req.Password,
		AvatarPath: avatar,
	})
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	hlog.CtxInfof(ctx, "user %s registered", user.ID.Hex())
	response.SendResponse(c, http.StatusCreated, user, "User registered successfully")
}

// Authenticate checks the login body. It backs the JWT login handler.
func (h *Handler) Authenticate(ctx context.Context, c *app.RequestContext) (identity.Caller, error) {
	var req LoginParam
	if err := response.Bind(c, &req); err != nil {
		return identity.Caller{}, err
	}
	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		return identity.Caller{}, errno.ParamErr.WithMessage("Username or email is required")
	}
	return h.users.Login(ctx, identifier, req.Password)
}

func (h *Handler) CurrentUser(ctx context.Context, c *app.RequestContext) {
	caller, err := identity.FromRequest(c)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	user, err := h.users.GetCurrentUser(ctx, caller)
	if err != nil {
		response.SendError(ctx, c, err)
		return
	}
	response.SendResponse(c, http.StatusOK, user, "Current user fetched successfully")
}
