package response

import (
	"context"

	"VideoHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Envelope is the body of every API response, successful or not.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

func New(status int, data interface{}, message string) Envelope {
	return Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	}
}

// FromErr builds the error envelope for err.
func FromErr(err error) Envelope {
	Err := errno.ConvertErr(err)
	return New(Err.StatusCode, nil, Err.ErrMsg)
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, status int, data interface{}, message string) {
	c.JSON(status, New(status, data, message))
}

// SendError writes err as an envelope. Errors that do not carry an ErrNo are
// logged here since the client only sees the generic message.
func SendError(ctx context.Context, c *app.RequestContext, err error) {
	env := FromErr(err)
	if env.StatusCode >= 500 {
		hlog.CtxErrorf(ctx, "%s %s failed: %v", c.Method(), c.Path(), err)
	}
	c.JSON(env.StatusCode, env)
}
