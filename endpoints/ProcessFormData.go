package endpoints

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nutanixdev/payments-api/kernel"
)

type FormDataDto struct {
	Payee       string  `form:"payee" json:"payee"`
	Currency    string  `form:"currency" json:"currency"`
	Amount      float64 `form:"amount" json:"amount"`
	Description string  `form:"description" json:"description"`
}

// ProcessFormData relays a browser form submission to the JSON intake
// endpoint on this same service and translates the outcome back. Any
// non-201 upstream status is propagated to the browser unchanged.
func ProcessFormData(c *gin.Context) {
	rt := c.MustGet("rt").(*kernel.RequestRuntime)
	art := rt.AppRuntime

	var dto FormDataDto
	if err := c.ShouldBind(&dto); err != nil {
		rt.Ef(http.StatusBadRequest, "bad request: %v", err)
		return
	}

	j, err := json.Marshal(&dto)
	if err != nil {
		rt.Ef(http.StatusInternalServerError, "could not marshal form data: %v", err)
		return
	}

	url := art.SelfURL + "/payments/"
	r, err := http.NewRequestWithContext(rt.SpanContext, http.MethodPost, url, bytes.NewBuffer(j))
	if err != nil {
		rt.Ef(http.StatusInternalServerError, "could not create request: %v", err)
		return
	}

	requestId, err := kernel.UuidV7()
	if err != nil {
		rt.Ef(http.StatusInternalServerError, "could not generate request id: %v", err)
		return
	}

	r.Header.Add("Content-Type", "application/json")
	r.Header.Add("X-Request-ID", requestId)

	client := &http.Client{}
	rsp, err := client.Do(r)
	if err != nil {
		rt.Ef(http.StatusInternalServerError, "could not relay form data: %v", err)
		return
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			log.Warn().Err(err).Msg("could not close response body")
		}
	}(rsp.Body)

	if rsp.StatusCode != http.StatusCreated {
		body, err := io.ReadAll(rsp.Body)
		if err != nil {
			rt.Ef(http.StatusInternalServerError, "failed to read response body: %v", err)
			return
		}

		rt.Ef(rsp.StatusCode, "payments endpoint returned %d: %s", rsp.StatusCode, string(body))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Form data processed successfully"})
}
