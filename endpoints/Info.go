package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutanixdev/payments-api/kernel"
)

// Info exposes the account settings the form page is configured with.
func Info(c *gin.Context) {
	rt := c.MustGet("rt").(*kernel.RequestRuntime)
	art := rt.AppRuntime

	c.JSON(http.StatusOK, gin.H{
		"account_name": art.AccountName,
		"currencies":   art.Currencies,
	})
}
