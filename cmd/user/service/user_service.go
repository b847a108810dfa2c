package service

import (
	"context"
	"strings"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/oss"
	"VideoHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is implemented by db.UserDB.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	GetUserInfo(ctx context.Context, userID primitive.ObjectID) (*model.User, error)
	FindUser(ctx context.Context, username, email string) (*model.User, error)
}

// MediaStore is implemented by oss.Storage.
type MediaStore interface {
	FPut(ctx context.Context, prefix, path string) (oss.Object, error)
	Remove(ctx context.Context, key string) error
}

type RegisterParam struct {
	Username string
	Email    string
	FullName string
	Password string
	// AvatarPath is a local upload, optional.
	AvatarPath string
}

type UserService struct {
	users UserStore
	media MediaStore
}

func NewUserService(users UserStore, media MediaStore) *UserService {
	return &UserService{users: users, media: media}
}

func (s *UserService) Register(ctx context.Context, req RegisterParam) (*model.User, error) {
	if utils.Blank(req.Username) || utils.Blank(req.Email) || utils.Blank(req.FullName) || utils.Blank(req.Password) {
		return nil, errno.ParamErr.WithMessage("All fields are required")
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, errno.ParamErr.WithMessage("Invalid email address")
	}
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.FindUser(ctx, username, email); err == nil {
		return nil, errno.UserExistErr
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, errors.WithMessage(err, "dao.FindUser failed")
	}

	hashed, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "Password fail to crypt")
	}

	user := &model.User{
		Username: username,
		Email:    email,
		FullName: strings.TrimSpace(req.FullName),
		Password: hashed,
	}
	var avatar oss.Object
	if req.AvatarPath != "" && s.media != nil {
		if avatar, err = s.media.FPut(ctx, oss.AvatarPrefix, req.AvatarPath); err != nil {
			hlog.CtxErrorf(ctx, "avatar upload failed: %v", err)
			return nil, errno.OssErr.WithMessage("Failed to upload avatar")
		}
		user.Avatar = avatar.URL
	}

	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		s.dropAvatar(ctx, avatar)
		if errors.Is(err, database.ErrDuplicate) {
			return nil, errno.UserExistErr
		}
		return nil, errors.WithMessage(err, "dao.CreateUser failed")
	}
	created, err := s.users.GetUserInfo(ctx, id)
	if err != nil {
		hlog.CtxErrorf(ctx, "user %s missing after insert: %v", id.Hex(), err)
		return nil, errno.ServiceErr.WithMessage("Something went wrong while registering the user")
	}
	return created, nil
}

func (s *UserService) dropAvatar(ctx context.Context, avatar oss.Object) {
	if avatar.Key == "" {
		return
	}
	if err := s.media.Remove(ctx, avatar.Key); err != nil {
		hlog.CtxWarnf(ctx, "remove orphaned avatar %s: %v", avatar.Key, err)
	}
}

// Login verifies credentials. identifier is a username or an email.
func (s *UserService) Login(ctx context.Context, identifier, password string) (identity.Caller, error) {
	if utils.Blank(identifier) || password == "" {
		return identity.Caller{}, errno.ParamErr.WithMessage("Username or email and password are required")
	}
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	user, err := s.users.FindUser(ctx, identifier, identifier)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return identity.Caller{}, errno.NotFoundErr.WithMessage("User does not exist")
		}
		return identity.Caller{}, errors.WithMessage(err, "dao.FindUser failed")
	}
	if !utils.VerifyPassword(password, user.Password) {
		return identity.Caller{}, errno.AuthorizationFailedErr.WithMessage("Invalid user credentials")
	}
	return identity.Caller{UserID: user.ID.Hex(), Username: user.Username}, nil
}

func (s *UserService) GetCurrentUser(ctx context.Context, caller identity.Caller) (*model.User, error) {
	uid, err := caller.ObjectID()
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetUserInfo(ctx, uid)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, errno.NotFoundErr.WithMessage("User not found")
		}
		return nil, errors.WithMessage(err, "dao.GetUserInfo failed")
	}
	return user, nil
}
