package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config holds Daraja credentials and endpoints. The defaults point at the
// Safaricom sandbox.
type Config struct {
	ConsumerKey    string        `env:"MPESA_CONSUMER_KEY,required"`
	ConsumerSecret string        `env:"MPESA_CONSUMER_SECRET,required"`
	ShortCode      string        `env:"MPESA_SHORTCODE" envDefault:"174379"`
	Passkey        string        `env:"MPESA_PASSKEY"`
	CallbackURL    string        `env:"MPESA_CALLBACK_URL" envDefault:"https://mydomain.com/path"`
	AuthURL        string        `env:"MPESA_AUTH_URL" envDefault:"https://sandbox.safaricom.co.ke/oauth/v1/generate?grant_type=client_credentials"`
	STKPushURL     string        `env:"MPESA_STKPUSH_URL" envDefault:"https://sandbox.safaricom.co.ke/mpesa/stkpush/v1/processrequest"`
	Timeout        time.Duration `env:"MPESA_TIMEOUT" envDefault:"30s"`
}

// Client talks to the Daraja API. It is safe for concurrent use.
type Client struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// NewClient validates the config and builds a client.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		return nil, fmt.Errorf("%w: consumer key and secret are required", ErrInvalidConfig)
	}
	if cfg.AuthURL == "" || cfg.STKPushURL == "" {
		return nil, fmt.Errorf("%w: endpoints are required", ErrInvalidConfig)
	}
	c := &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PushResult is the gateway's acceptance record for an initiated push.
type PushResult struct {
	MerchantRequestID   string `json:"merchant_request_id,omitempty"`
	CheckoutRequestID   string `json:"checkout_request_id,omitempty"`
	ResponseCode        string `json:"response_code,omitempty"`
	ResponseDescription string `json:"response_description,omitempty"`
	CustomerMessage     string `json:"customer_message,omitempty"`
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// stkPushPayload mirrors the processrequest body field for field; Daraja
// expects exactly these PascalCase keys.
type stkPushPayload struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            uint   `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// SendSTKPush prompts the customer's phone to approve a payment of the given
// amount. Amounts are whole currency units; Daraja does not accept cents.
func (c *Client) SendSTKPush(ctx context.Context, phoneNumber string, amount uint) (*PushResult, error) {
	token, err := c.fetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := c.now().UTC().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString([]byte(c.cfg.ShortCode + c.cfg.Passkey + timestamp))

	payload := stkPushPayload{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount,
		PartyA:            phoneNumber,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       phoneNumber,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  "YettaPastries",
		TransactionDesc:   "Payment for Order",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stk push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.STKPushURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrPushRejected, resp.StatusCode)
	}

	var pushed stkPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&pushed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	return &PushResult{
		MerchantRequestID:   pushed.MerchantRequestID,
		CheckoutRequestID:   pushed.CheckoutRequestID,
		ResponseCode:        pushed.ResponseCode,
		ResponseDescription: pushed.ResponseDescription,
		CustomerMessage:     pushed.CustomerMessage,
	}, nil
}

// fetchAccessToken exchanges the consumer credentials for a bearer token.
// Daraja tokens live for an hour; the client deliberately refetches per push
// because checkout volume does not justify a token cache.
func (c *Client) fetchAccessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.AuthURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenRequestFailed, err)
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrTokenRequestFailed, resp.StatusCode)
	}

	var token accessTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenRequestFailed, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrTokenRequestFailed)
	}
	return token.AccessToken, nil
}
