package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "corral/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(t *testing.T, method, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestDeviceHandler_DeleteDevice_Validation(t *testing.T) {
	h := NewDeviceHandler(nil, nil)

	tests := []struct {
		name        string
		body        string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "missing device_id",
			body:        `{"keep_data":"true"}`,
			wantCode:    domainerrors.CodeMissingParameters,
			wantMessage: "Device_id is missing",
		},
		{
			name:        "missing keep_data",
			body:        `{"device_id":"f3b9c6ae-0000-4000-8000-000000000001"}`,
			wantCode:    domainerrors.CodeMissingParameters,
			wantMessage: "Keep_data is missing",
		},
		{
			name:        "keep_data not a boolean string",
			body:        `{"device_id":"f3b9c6ae-0000-4000-8000-000000000001","keep_data":"yes"}`,
			wantCode:    domainerrors.CodeWrongParameters,
			wantMessage: "Keep_data is wrong",
		},
		{
			name:        "device_id not a uuid",
			body:        `{"device_id":"not-a-uuid","keep_data":"false"}`,
			wantCode:    domainerrors.CodeWrongParameters,
			wantMessage: "Wrong device_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newJSONContext(t, http.MethodDelete, tt.body)

			err := h.DeleteDevice(c)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
			assert.Equal(t, tt.wantMessage, appErr.Message())
		})
	}
}

func TestDeviceHandler_RegisterDevice_MissingName(t *testing.T) {
	h := NewDeviceHandler(nil, nil)

	c := newJSONContext(t, http.MethodPost, `{}`)

	err := h.RegisterDevice(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeMissingParameters, appErr.ErrorCode())
	assert.Equal(t, "Device name is missing", appErr.Message())
}

func TestGroupHandler_CreateGroup_MissingName(t *testing.T) {
	h := NewGroupHandler(nil, nil)

	c := newJSONContext(t, http.MethodPost, `{}`)

	err := h.CreateGroup(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.CodeMissingParameters, appErr.ErrorCode())
	assert.Equal(t, "Group name is missing", appErr.Message())
}
