package jwt

import (
	"context"
	"net/http"
	"time"

	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/response"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"
	"github.com/pkg/errors"
)

const (
	usernameClaim = "username"
	errKey        = "jwt_error"
)

type Options struct {
	Secret     string
	Timeout    time.Duration
	MaxRefresh time.Duration
}

// Authenticator checks login credentials and returns the identity.Caller to sign.
type Authenticator func(ctx context.Context, c *app.RequestContext) (identity.Caller, error)

// Token is the data of a login or refresh envelope.
type Token struct {
	AccessToken string    `json:"accessToken"`
	Expire      time.Time `json:"expire"`
}

// New builds the JWT middleware. Verified requests carry an identity.Caller
// under identity.ContextKey.
func New(opts Options, authenticate Authenticator) (*jwt.HertzJWTMiddleware, error) {
	if opts.Secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = time.Hour
	}
	if opts.MaxRefresh <= 0 {
		opts.MaxRefresh = 24 * time.Hour
	}

	mw, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "videohub",
		Key:           []byte(opts.Secret),
		Timeout:       opts.Timeout,
		MaxRefresh:    opts.MaxRefresh,
		IdentityKey:   identity.ContextKey,
		TokenLookup:   "header: Authorization, query: token, cookie: accessToken",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			return authenticate(ctx, c)
		},
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if caller, ok := data.(identity.Caller); ok {
				return jwt.MapClaims{
					identity.ContextKey: caller.UserID,
					usernameClaim:       caller.Username,
				}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			return CallerFromClaims(jwt.ExtractClaims(ctx, c))
		},
		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			caller, ok := data.(identity.Caller)
			return ok && caller.UserID != ""
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			response.SendResponse(c, http.StatusOK, Token{AccessToken: token, Expire: expire}, "User logged in successfully")
		},
		RefreshResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			response.SendResponse(c, http.StatusOK, Token{AccessToken: token, Expire: expire}, "Access token refreshed")
		},
		HTTPStatusMessageFunc: func(e error, ctx context.Context, c *app.RequestContext) string {
			var Err errno.ErrNo
			if errors.As(e, &Err) {
				c.Set(errKey, Err)
				return Err.ErrMsg
			}
			hlog.CtxDebugf(ctx, "jwt rejected request: %v", e)
			return errno.TokenInvalidErr.ErrMsg
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			if v, ok := c.Get(errKey); ok {
				if Err, ok := v.(errno.ErrNo); ok {
					c.AbortWithStatusJSON(Err.StatusCode, response.FromErr(Err))
					return
				}
			}
			c.AbortWithStatusJSON(code, response.New(code, nil, message))
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "init jwt middleware")
	}
	return mw, nil
}

// CallerFromClaims rebuilds the identity signed by PayloadFunc.
func CallerFromClaims(claims jwt.MapClaims) identity.Caller {
	var caller identity.Caller
	if v, ok := claims[identity.ContextKey].(string); ok {
		caller.UserID = v
	}
	if v, ok := claims[usernameClaim].(string); ok {
		caller.Username = v
	}
	return caller
}
