package flow

import (
	"context"
	"net/http"

	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/response"
	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	sconfig "github.com/alibaba/sentinel-golang/core/config"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// Resource is the sentinel resource every API request is counted against.
const Resource = "videohub-api"

// Init starts sentinel and loads a reject rule of qps requests per second.
// qps <= 0 leaves flow control off.
func Init(qps float64, logDir string) (bool, error) {
	if qps <= 0 {
		hlog.Info("flow control disabled")
		return false, nil
	}
	conf := sconfig.NewDefaultConfig()
	conf.Sentinel.App.Name = "videohub"
	if logDir != "" {
		conf.Sentinel.Log.Dir = logDir
	}
	if err := sentinel.InitWithConfig(conf); err != nil {
		return false, errors.Wrap(err, "init sentinel")
	}
	if _, err := flow.LoadRules([]*flow.Rule{Rule(qps)}); err != nil {
		return false, errors.Wrap(err, "load flow rules")
	}
	hlog.Infof("flow control enabled: %s limited to %.0f qps", Resource, qps)
	return true, nil
}

func Rule(qps float64) *flow.Rule {
	return &flow.Rule{
		Resource:               Resource,
		TokenCalculateStrategy: flow.Direct,
		ControlBehavior:        flow.Reject,
		Threshold:              qps,
		StatIntervalInMs:       1000,
	}
}

// Middleware rejects requests over the loaded threshold with 429.
func Middleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		entry, blocked := sentinel.Entry(Resource, sentinel.WithTrafficType(base.Inbound))
		if blocked != nil {
			hlog.CtxWarnf(ctx, "%s %s blocked by flow control", c.Method(), c.Path())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.FromErr(errno.TooManyRequestsErr))
			return
		}
		defer entry.Exit()
		c.Next(ctx)
	}
}
