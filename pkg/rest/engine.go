package rest

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewEngine builds the gin engine with CORS. Without configured origins every
// origin may read the mirror list.
func NewEngine(allowOrigin []string) *gin.Engine {
	r := gin.Default()

	if len(allowOrigin) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = allowOrigin
		corsConfig.AllowCredentials = true
		r.Use(cors.New(corsConfig))
	} else {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowHeaders:    []string{"Accept", "Accept-Encoding", "Accept-Language", "Cache-Control", "Content-Type", "If-Modified-Since", "Origin", "User-Agent", "X-Requested-With"},
			AllowMethods:    []string{"GET", "HEAD", "OPTIONS", "POST", "PUT", "DELETE"},
			ExposeHeaders:   []string{"Content-Length", "Content-Type"},
		}))
	}
	return r
}
