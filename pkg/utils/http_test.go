package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/order-model/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `validate:"required"`
}

type basket struct {
	Owner string `validate:"required,email"`
	Items []item `validate:"dive"`
}

func TestWriteValidationError(t *testing.T) {
	err := validator.New().Struct(basket{Owner: "nope", Items: []item{{}}})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, utils.WriteValidationError(rr, err))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var res utils.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	assert.Equal(t, "invalid request", res.Message)
	assert.Equal(t, map[string]string{
		"Owner":         "email",
		"Items[0].Name": "required",
	}, res.Fields)
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, utils.WriteError(rr, "insufficient stock", http.StatusConflict))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"message":"insufficient stock"}`, rr.Body.String())
}
