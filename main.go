package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/nutanixdev/payments-api/endpoints"
	"github.com/nutanixdev/payments-api/endpoints/payments"
	"github.com/nutanixdev/payments-api/kernel"
	"github.com/nutanixdev/payments-api/middleware"
)

func main() {
	art := kernel.LoadConfig()
	art.Context = context.Background()

	if art.DeploymentEnvironment == "production" {
		log.Printf(" === RUNNING IN PRODUCTION MODE ===")
		gin.SetMode(gin.ReleaseMode)
	}

	cleanupFunc, err := art.SetupOtel()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanupFunc()

	span, _ := art.Diagnostic.BeginTracing(art.Context, "main")
	defer span.End()

	if err = art.PrepareDatabase(); err != nil {
		span.RecordError(err)
		log.Fatal(err)
	}

	r := gin.Default()
	err = r.SetTrustedProxies([]string{})
	if err != nil {
		span.RecordError(err)
		log.Fatal(err)
	}

	if art.DeploymentEnvironment == "production" {
		r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "a panic occurred, request aborted",
			})
		}))
		corsCfg := cors.Config{
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type"},
			ExposeHeaders:    []string{"Content-Length", "Access-Control-Allow-Origin", "Access-Control-Allow-Headers", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           7 * time.Hour * 24,
		}
		if art.CorsOrigins == "*" {
			corsCfg.AllowAllOrigins = true
		} else {
			corsCfg.AllowOrigins = strings.Split(art.CorsOrigins, ",")
		}
		r.Use(cors.New(corsCfg))
	}

	r.Use(otelgin.Middleware(art.ServiceName))
	r.Use(middleware.TracerMiddleware(art))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, &gin.Error{
			Err: errors.New("route not found"),
		})
	})

	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")

	r.GET("/", endpoints.Index)
	r.GET("/info", endpoints.Info)
	r.POST("/process_form_data", endpoints.ProcessFormData)

	api := r.Group("/")
	payments.RegisterController(api)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	err = r.Run(art.Host)
	if err != nil {
		span.RecordError(err)
		log.Fatal(err)
	}
}
