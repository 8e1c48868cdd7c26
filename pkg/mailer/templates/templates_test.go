package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musemarket/musemarket-api/config"
)

func TestRender_OrderConfirmation(t *testing.T) {
	cfg := &config.Config{CompanyName: "MuseMarket", AppName: "musemarket"}
	data := NewOrderConfirmationData(cfg, "Asha", "asha@example.com", OrderDetails{
		OrderID:         "ord-1",
		ArtworkTitle:    "Himalayan <Dawn>",
		Amount:          1500,
		ShippingAddress: "Kathmandu",
	})

	subject, text, html, err := Render(OrderConfirmation, data)
	require.NoError(t, err)

	assert.Equal(t, "Order Confirmation - MuseMarket", subject)
	assert.Contains(t, text, "Rs. 1500")
	assert.Contains(t, text, "Himalayan <Dawn>")
	assert.NotContains(t, text, "Payment:")
	assert.Contains(t, html, "Himalayan &lt;Dawn&gt;")
	assert.Contains(t, html, "ord-1")
}

func TestRender_WelcomeSeller(t *testing.T) {
	cfg := &config.Config{}
	data := NewWelcomeData(cfg, "Ravi", "ravi@example.com", WithUsername("ravi"), WithRole("seller"))

	subject, text, _, err := Render(Welcome, data)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to MuseMarket", subject)
	assert.Contains(t, text, "upload artworks")
}

func TestRender_Unknown(t *testing.T) {
	_, _, _, err := Render("login_otp", map[string]any{})
	assert.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "Rs. 1500", FormatAmount(1500))
	assert.Equal(t, "Rs. 99.5", FormatAmount(99.5))
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "fallback", defaultFn("fallback", nil))
	assert.Equal(t, "fallback", defaultFn("fallback", "  "))
	assert.Equal(t, "set", defaultFn("fallback", "set"))
	assert.Equal(t, 0.0, defaultFn("fallback", 0.0))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(OrderConfirmation))
	assert.True(t, Known(Welcome))
	assert.False(t, Known("universal"))
}
