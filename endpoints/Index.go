package endpoints

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nutanixdev/payments-api/kernel"
)

// Index serves the payment form, listing the configured currencies.
func Index(c *gin.Context) {
	rt := c.MustGet("rt").(*kernel.RequestRuntime)
	art := rt.AppRuntime

	c.HTML(http.StatusOK, "index.html", gin.H{
		"AccountName": art.AccountName,
		"Currencies":  strings.Split(art.Currencies, ","),
	})
}
