package main

import (
	"context"
	"net/http"

	interactionh "VideoHub.com/cmd/api/handlers/interaction"
	relationh "VideoHub.com/cmd/api/handlers/relation"
	userh "VideoHub.com/cmd/api/handlers/user"
	videoh "VideoHub.com/cmd/api/handlers/video"
	"VideoHub.com/cmd/api/router/authfunc"
	"VideoHub.com/pkg/response"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/hertz-contrib/jwt"
)

type apiHandlers struct {
	users       *userh.Handler
	interaction *interactionh.Handler
	relation    *relationh.Handler
	video       *videoh.Handler
}

// register mounts every route under /api/v1. Only register, login and
// refresh-token are reachable without a token.
func register(r *route.Engine, h apiHandlers, mw *jwt.HertzJWTMiddleware) {
	r.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		response.SendResponse(c, http.StatusOK, "pong", "OK")
	})

	v1 := r.Group("/api/v1")
	auth := authfunc.Auth(mw)

	users := v1.Group("/users")
	users.POST("/register", h.users.Register)
	users.POST("/login", mw.LoginHandler)
	users.GET("/refresh-token", mw.RefreshHandler)
	users.GET("/me", append(auth, h.users.CurrentUser)...)

	comments := v1.Group("/comments", auth...)
	comments.GET("/:videoId", h.interaction.ListComment)
	comments.POST("/:videoId", h.interaction.CreateComment)
	comments.PATCH("/c/:commentId", h.interaction.UpdateComment)
	comments.DELETE("/c/:commentId", h.interaction.DeleteComment)

	likes := v1.Group("/likes", auth...)
	likes.POST("/toggle/v/:videoId", h.interaction.LikeVideo())
	likes.POST("/toggle/c/:commentId", h.interaction.LikeComment())
	likes.POST("/toggle/t/:tweetId", h.interaction.LikeTweet())
	likes.GET("/videos", h.interaction.LikedVideos)

	tweets := v1.Group("/tweets", auth...)
	tweets.POST("", h.interaction.CreateTweet)
	tweets.GET("/user/:userId", h.interaction.UserTweets)
	tweets.PATCH("/:tweetId", h.interaction.UpdateTweet)
	tweets.DELETE("/:tweetId", h.interaction.DeleteTweet)

	subscriptions := v1.Group("/subscriptions", auth...)
	subscriptions.POST("/c/:channelId", h.relation.ToggleSubscription)
	subscriptions.GET("/c/:channelId", h.relation.ChannelSubscribers)
	subscriptions.GET("/u/:subscriberId", h.relation.SubscribedChannels)

	playlists := v1.Group("/playlist", auth...)
	playlists.POST("", h.video.CreatePlaylist)
	playlists.GET("/:playlistId", h.video.GetPlaylist)
	playlists.PATCH("/:playlistId", h.video.UpdatePlaylist)
	playlists.DELETE("/:playlistId", h.video.DeletePlaylist)
	playlists.PATCH("/add/:videoId/:playlistId", h.video.AddToPlaylist)
	playlists.PATCH("/remove/:videoId/:playlistId", h.video.RemoveFromPlaylist)
	playlists.GET("/user/:userId", h.video.UserPlaylists)

	videos := v1.Group("/videos", auth...)
	videos.GET("", h.video.ListVideos)
	videos.POST("", h.video.PublishVideo)
	videos.GET("/:videoId", h.video.GetVideo)
	videos.PATCH("/:videoId", h.video.UpdateVideo)
	videos.DELETE("/:videoId", h.video.DeleteVideo)
	videos.PATCH("/toggle/publish/:videoId", h.video.TogglePublish)

	dashboard := v1.Group("/dashboard", auth...)
	dashboard.GET("/stats", h.video.ChannelStats)
	dashboard.GET("/videos", h.video.ChannelVideos)
}
