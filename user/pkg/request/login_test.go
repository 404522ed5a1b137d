package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequest(t *testing.T) {
	expectedMap := map[string]string{"name": "dave", "password": "***"}
	expected, _ := json.Marshal(expectedMap)
	loginReq := LoginRequest{Name: "dave", Password: "secret"}

	actual, _ := json.Marshal(loginReq)

	assert.EqualValues(t, expected, actual)
	assert.EqualValues(t, "secret", loginReq.Password)
}

func TestRegisterRequest(t *testing.T) {
	expectedMap := map[string]string{"name": "dave", "password": "***"}
	expected, _ := json.Marshal(expectedMap)
	registerReq := RegisterRequest{Name: "dave", Password: "secret"}

	actual, _ := json.Marshal(registerReq)

	assert.EqualValues(t, expected, actual)
	assert.EqualValues(t, "secret", registerReq.Password)
}
