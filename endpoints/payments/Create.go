package payments

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutanixdev/payments-api/assert"
	"github.com/nutanixdev/payments-api/kernel"
)

// validationResponse is the 422 body: every failing field plus the raw
// request body echoed back.
type validationResponse struct {
	Errors []FieldError `json:"errors"`
	Body   string       `json:"body"`
}

func CreatePayment(c *gin.Context) {
	rt := c.MustGet("rt").(*kernel.RequestRuntime)

	assert.NotNil(rt.DB, "database client != nil")

	// Keep the raw body around: validation failures echo it back.
	raw, err := c.GetRawData()
	if err != nil {
		rt.Ef(http.StatusBadRequest, "bad request: could not read body: %v", err)
		return
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	var dto PaymentCreate
	if err := c.ShouldBindJSON(&dto); err != nil {
		rt.MakeErrorf("failed to bind json: %v", err)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, &validationResponse{
			Errors: []FieldError{{Field: "body", Message: err.Error()}},
			Body:   string(raw),
		})
		return
	}

	svc := NewService(NewStore(rt.DB))

	stored, err := svc.Intake(rt.SpanContext, &dto)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			rt.MakeError(verr)
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, &validationResponse{
				Errors: verr.Fields,
				Body:   string(raw),
			})
		case errors.Is(err, ErrConstraint):
			rt.Ef(http.StatusBadRequest, "payment rejected: %v", err)
		default:
			rt.Ef(http.StatusInternalServerError, "failed to store payment: %v", err)
		}
		return
	}

	c.JSON(http.StatusCreated, stored)
}
