package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/hasancaglar07/tarfcomtr-sub001/admin"
	"github.com/hasancaglar07/tarfcomtr-sub001/cache"
	"github.com/hasancaglar07/tarfcomtr-sub001/common"
	"github.com/hasancaglar07/tarfcomtr-sub001/database"
	"github.com/hasancaglar07/tarfcomtr-sub001/metrics"
	"github.com/hasancaglar07/tarfcomtr-sub001/middleware"
	"github.com/hasancaglar07/tarfcomtr-sub001/site"
	"github.com/hasancaglar07/tarfcomtr-sub001/store"
)

func main() {
	common.LoadEnv()

	db := common.ConnectDb()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := admin.EnsureAdminUser(db); err != nil {
		log.Fatal("Failed to ensure admin user:", err)
	}

	memo := cache.NewStore(cache.DefaultTTL)
	pages := cache.NewPageCache(cache.DefaultTTL)
	invalidator := cache.NewInvalidator(memo, pages)
	contentStore := store.New(db, memo, invalidator)

	router := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}

	cookieStore := cookie.NewStore([]byte(sessionSecret))
	cookieStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	})

	router.Use(sessions.Sessions("tarfcomtr-session", cookieStore))
	router.Use(middleware.RequestID())
	router.Use(metrics.Middleware())
	router.Use(cache.Middleware(pages))

	router.SetFuncMap(map[string]interface{}{
		"now": func() time.Time {
			return time.Now()
		},
		"domain": func() string {
			d := os.Getenv("DOMAIN")
			if d == "" {
				return "http://localhost:8080"
			}
			return d
		},
	})

	// LoadHTMLGlob panics on an empty match, so only load views when
	// some are deployed alongside the binary.
	if matches, _ := filepath.Glob("*/views/*.html"); len(matches) > 0 {
		router.LoadHTMLGlob("*/views/*.html")
	} else {
		log.Println("no view templates found; HTML routes will fail until */views/*.html is deployed")
	}

	router.Static("/public", "./public")

	router.GET("/metrics", metrics.Handler())

	adminModule := admin.NewAdminModule(db, contentStore)
	adminModule.RegisterRoutes(router)

	siteModule := site.NewSiteModule(contentStore)
	siteModule.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
