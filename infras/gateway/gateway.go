package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=./mocks/gateway_mock.go -package=mocks

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"syncguard/config"
	"syncguard/infras/otel"
	"syncguard/shared/constant"
	"syncguard/shared/failure"

	"github.com/razorpay/razorpay-go"
)

const currencyINR = "INR"

// Order is the provider-side order a client completes payment against.
type Order struct {
	ID       string  `json:"id"`
	Amount   int64   `json:"amount"`
	Currency string  `json:"currency"`
	KeyID    string  `json:"key_id"`
	Rupees   float64 `json:"rupees"`
}

type Gateway interface {
	CreateOrder(ctx context.Context, amount float64, receipt string) (Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
	Enabled() bool
}

type gatewayImpl struct {
	client *razorpay.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Gateway {
	impl := &gatewayImpl{
		cfg:  cfg,
		otel: otel,
	}

	if impl.Enabled() {
		impl.client = razorpay.NewClient(cfg.External.Gateway.KeyID, cfg.External.Gateway.KeySecret)
	}

	return impl
}

func (g *gatewayImpl) Enabled() bool {
	return g.cfg.External.Gateway.KeyID != constant.Empty && g.cfg.External.Gateway.KeySecret != constant.Empty
}

// CreateOrder registers a collect order with the provider. Amount is in
// rupees and converted to minor units on the wire.
func (g *gatewayImpl) CreateOrder(ctx context.Context, amount float64, receipt string) (res Order, err error) {
	_, scope := g.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !g.Enabled() {
		return res, failure.Configuration("payment gateway credentials are not configured") // nolint:wrapcheck
	}

	minor := int64(amount * constant.CurrencyMinorUnitFactor)

	data := map[string]interface{}{
		"amount":   minor,
		"currency": currencyINR,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return res, failure.Upstream("payment gateway", err) // nolint:wrapcheck
	}

	orderID, ok := body["id"].(string)
	if !ok {
		return res, failure.Upstream("payment gateway", fmt.Errorf("order response missing id")) // nolint:wrapcheck
	}

	return Order{
		ID:       orderID,
		Amount:   minor,
		Currency: currencyINR,
		KeyID:    g.cfg.External.Gateway.KeyID,
		Rupees:   amount,
	}, nil
}

// VerifySignature checks the provider callback signature: HMAC-SHA256 over
// "<orderID>|<paymentID>" keyed with the secret, hex encoded, compared in
// constant time.
func (g *gatewayImpl) VerifySignature(orderID, paymentID, signature string) bool {
	if !g.Enabled() {
		return false
	}

	mac := hmac.New(sha256.New, []byte(g.cfg.External.Gateway.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
