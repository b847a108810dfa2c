package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	interactionh "VideoHub.com/cmd/api/handlers/interaction"
	relationh "VideoHub.com/cmd/api/handlers/relation"
	userh "VideoHub.com/cmd/api/handlers/user"
	videoh "VideoHub.com/cmd/api/handlers/video"
	"VideoHub.com/cmd/api/router/flow"
	interactiondb "VideoHub.com/cmd/interaction/dal/db"
	"VideoHub.com/cmd/interaction/infras/redis"
	interactionservice "VideoHub.com/cmd/interaction/service"
	relationdb "VideoHub.com/cmd/relation/dal/db"
	relationservice "VideoHub.com/cmd/relation/service"
	userdb "VideoHub.com/cmd/user/dal/db"
	userservice "VideoHub.com/cmd/user/service"
	videodb "VideoHub.com/cmd/video/dal/db"
	videoservice "VideoHub.com/cmd/video/service"
	"VideoHub.com/config"
	"VideoHub.com/config/pprof"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/jwt"
	"VideoHub.com/pkg/mq"
	"VideoHub.com/pkg/oss"
	"VideoHub.com/pkg/response"
	"VideoHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
)

func logLevel(level string) hlog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	default:
		return hlog.LevelInfo
	}
}

func main() {
	config.Init()
	conf := config.ConfigInfo
	hlog.SetLevel(logLevel(conf.Server.LogLevel))
	pprof.Load(conf.Server.PprofAddr)

	ctx := context.Background()

	client, mdb, err := database.Init(ctx, conf.Mongo.URI, conf.Mongo.Database, conf.Mongo.Timeout)
	if err != nil {
		hlog.Fatalf("mongo: %v", err)
	}
	var specs []database.IndexSpec
	specs = append(specs, userdb.Indexes()...)
	specs = append(specs, videodb.Indexes()...)
	specs = append(specs, interactiondb.Indexes()...)
	specs = append(specs, relationdb.Indexes()...)
	if err = database.EnsureIndexes(ctx, mdb, specs...); err != nil {
		hlog.Fatalf("mongo indexes: %v", err)
	}

	storage, err := oss.InitMinio(ctx, oss.Options{
		Endpoint:  conf.Minio.Endpoint,
		AccessKey: conf.Minio.AccessKey,
		SecretKey: conf.Minio.SecretKey,
		UseSSL:    conf.Minio.UseSSL,
		Bucket:    conf.Minio.Bucket,
		PublicURL: conf.Minio.PublicURL,
	})
	if err != nil {
		hlog.Fatalf("minio: %v", err)
	}

	var limiter interactionservice.CommentLimiter
	rdb, err := redis.Init(ctx, conf.Redis.Addr, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		hlog.Fatalf("redis: %v", err)
	}
	if rdb != nil {
		limiter = redis.NewCommentGuard(rdb, redis.GuardOptions{
			RateLimit:       conf.Comment.RateLimit,
			RateWindow:      conf.Comment.RateWindow,
			DuplicateWindow: conf.Comment.DuplicateWindow,
		})
	}

	var events mq.Publisher = mq.NopPublisher{}
	var producer *mq.Producer
	if url := conf.RabbitMq.URL(); url != "" {
		if producer, err = mq.NewProducer(url); err != nil {
			hlog.Fatalf("rabbitmq: %v", err)
		}
		events = producer
	}

	users := userdb.NewUserDB(mdb)
	videos := videodb.NewVideoDB(mdb)
	playlists := videodb.NewPlaylistDB(mdb)
	comments := interactiondb.NewCommentDB(mdb)
	likes := interactiondb.NewLikeDB(mdb)
	tweets := interactiondb.NewTweetDB(mdb)
	subscriptions := relationdb.NewSubscriptionDB(mdb)

	tempDir := conf.Upload.TempDir
	userHandler := userh.New(userservice.NewUserService(users, storage), tempDir)
	handlers := apiHandlers{
		users: userHandler,
		interaction: interactionh.New(
			interactionservice.NewCommentService(comments, videos, limiter, events),
			interactionservice.NewLikeService(likes, videos, comments, tweets, events),
			interactionservice.NewTweetService(tweets),
		),
		relation: relationh.New(relationservice.NewRelationService(subscriptions, users, events)),
		video: videoh.New(
			videoservice.NewVideoService(videos, storage, utils.FFmpegProber{}, events, tempDir),
			videoservice.NewPlaylistService(playlists, videos),
			videoservice.NewDashboardService(videos, subscriptions, likes),
			tempDir,
		),
	}

	mw, err := jwt.New(jwt.Options{
		Secret:     conf.Jwt.Secret,
		Timeout:    conf.Jwt.Timeout,
		MaxRefresh: conf.Jwt.MaxRefresh,
	}, userHandler.Authenticate)
	if err != nil {
		hlog.Fatalf("jwt: %v", err)
	}

	h := server.New(
		server.WithHostPorts(conf.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(conf.Server.MaxRequestBodySize),
	)

	h.Use(cors.New(cors.Config{
		AllowOrigins:     conf.Cors.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.FromErr(errno.ServiceErr))
		})))

	enabled, err := flow.Init(conf.Flow.QPS, "")
	if err != nil {
		hlog.Fatalf("flow control: %v", err)
	}
	if enabled {
		h.Use(flow.Middleware())
	}

	register(h.Engine, handlers, mw)

	h.OnShutdown = append(h.OnShutdown, func(ctx context.Context) {
		if producer != nil {
			if err := producer.Close(); err != nil {
				hlog.CtxWarnf(ctx, "close rabbitmq producer: %v", err)
			}
		}
		if rdb != nil {
			_ = rdb.Close()
		}
		if err := client.Disconnect(ctx); err != nil {
			hlog.CtxWarnf(ctx, "disconnect mongo: %v", err)
		}
	})

	h.Spin()
}
