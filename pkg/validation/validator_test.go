package validation

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required,username"`
	Phone    string `json:"phoneNumber" validate:"required,npphone"`
	Password string `json:"password" validate:"required,pwd"`
	Role     string `json:"role" validate:"required,oneof=buyer seller"`
	Age      int    `json:"age" validate:"required_if=Role buyer,omitempty,buyerage"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func TestRegister_Valid(t *testing.T) {
	v := newValidator()
	err := v.Struct(signup{Username: "asha", Phone: "9812345678", Password: "longenough", Role: "buyer", Age: 25})
	assert.NoError(t, err)

	err = v.Struct(signup{Username: "ravi", Phone: "9800000000", Password: "longenough", Role: "seller"})
	assert.NoError(t, err)
}

func TestToDetails_Messages(t *testing.T) {
	v := newValidator()
	err := v.Struct(signup{Username: "asha99", Phone: "9712345678", Password: "short", Role: "admin"})
	require.Error(t, err)

	d := ToDetails(err)
	assert.Equal(t, "must contain letters only", d["username"])
	assert.Equal(t, "must start with 98 and be 10 digits", d["phoneNumber"])
	assert.Equal(t, "must be at least 8 characters long", d["password"])
	assert.Equal(t, "must be one of: buyer, seller", d["role"])
}

func TestToDetails_BuyerAge(t *testing.T) {
	v := newValidator()

	d := ToDetails(v.Struct(signup{Username: "asha", Phone: "9812345678", Password: "longenough", Role: "buyer"}))
	assert.Equal(t, "is required", d["age"])

	d = ToDetails(v.Struct(signup{Username: "asha", Phone: "9812345678", Password: "longenough", Role: "buyer", Age: 51}))
	assert.Equal(t, "must be between 18 and 50", d["age"])
}

func TestToDetails_InvalidJSON(t *testing.T) {
	var x map[string]any
	err := json.Unmarshal([]byte("{"), &x)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
	assert.Nil(t, ToDetails(nil))
}
