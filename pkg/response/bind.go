package response

import (
	"VideoHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// Bind decodes path, query and body into req. Malformed input is a ParamErr.
func Bind(c *app.RequestContext, req interface{}) error {
	if err := c.BindAndValidate(req); err != nil {
		return errno.ParamErr.WithMessage(err.Error())
	}
	return nil
}
