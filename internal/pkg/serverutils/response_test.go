package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Subject string `validate:"required"`
	Email   string `validate:"omitempty,email"`
}

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(sampleRequest{Subject: "Refund", Email: "a@b.com"})
	assert.NoError(t, err)
}

func TestValidateRequestMissingRequired(t *testing.T) {
	err := ValidateRequest(sampleRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Subject")
}

func TestValidateRequestBadEmail(t *testing.T) {
	err := ValidateRequest(sampleRequest{Subject: "Hi", Email: "not-an-email"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email")
}

func TestResponseEnvelopes(t *testing.T) {
	ok := SuccessResponse("done", map[string]int{"n": 1})
	assert.Equal(t, 200, ok.Code)
	assert.Equal(t, "done", ok.Message)

	bad := ErrorResponse(404, "not found")
	assert.Equal(t, 404, bad.Code)
	assert.Equal(t, "not found", bad.Message)
	assert.Nil(t, bad.Data)
}
