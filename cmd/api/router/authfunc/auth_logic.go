package authfunc

import (
	"context"

	"VideoHub.com/pkg/identity"
	"VideoHub.com/pkg/response"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"
)

// Auth returns the chain protecting every route that needs a caller.
func Auth(mw *jwt.HertzJWTMiddleware) []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		mw.MiddlewareFunc(),
		RequireCaller(),
	)
}

// RequireCaller aborts with 401 unless a usable identity.Caller is bound.
func RequireCaller() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		caller, err := identity.FromRequest(c)
		if err == nil {
			_, err = caller.ObjectID()
		}
		if err != nil {
			env := response.FromErr(err)
			c.AbortWithStatusJSON(env.StatusCode, env)
			return
		}
		c.Next(ctx)
	}
}
