// Package checks implementa los checks externos del asistente contra el
// backend de validación: completitud de registro, estado de onboarding y
// códigos de registro de negocio.
package checks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vecindo/registro-api/internal/application/flow"
	"github.com/vecindo/registro-api/internal/domain"
	"github.com/vecindo/registro-api/pkg/config"
)

var (
	_ flow.RegistrationChecker = (*Client)(nil)
	_ flow.CodeValidator       = (*Client)(nil)
)

// Client cliente HTTP del backend de validación. Todos los endpoints reciben
// y devuelven JSON y autentican con API key por header.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient construye el cliente con el timeout de la configuración.
func NewClient(cfg config.ChecksConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type validateRegistrationResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ValidateRegistration pregunta al backend si el registro de la cuenta está
// completo. OK=false solo cuando la llamada no llegó; un registro incompleto
// llega como OK=true, Valid=false con el mensaje del faltante.
func (c *Client) ValidateRegistration(ctx context.Context, accountID string) (*flow.CheckResult, error) {
	var out validateRegistrationResponse
	err := c.post(ctx, "/v1/registro/validate", map[string]string{"account_id": accountID}, &out)
	if err != nil {
		return &flow.CheckResult{OK: false}, err
	}
	return &flow.CheckResult{OK: true, Valid: out.Valid, Message: out.Message}, nil
}

type onboardingResponse struct {
	Provider       string   `json:"provider"`
	Providers      []string `json:"providers"`
	EmailConfirmed bool     `json:"email_confirmed"`
}

// OnboardingCheck trae el estado fresco de la cuenta: proveedor de inicio de
// sesión y confirmación de email en este instante, nunca de un cache.
func (c *Client) OnboardingCheck(ctx context.Context, accountID string) (*flow.OnboardingStatus, error) {
	var out onboardingResponse
	err := c.post(ctx, "/v1/registro/onboarding-check", map[string]string{"account_id": accountID}, &out)
	if err != nil {
		return &flow.OnboardingStatus{OK: false}, err
	}
	return &flow.OnboardingStatus{
		OK:             true,
		Provider:       out.Provider,
		Providers:      out.Providers,
		EmailConfirmed: out.EmailConfirmed,
	}, nil
}

type validateCodeResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ValidateCode confirma la vigencia de un código de registro de negocio. La
// forma del código ya se validó en local; aquí solo se consulta la vigencia.
func (c *Client) ValidateCode(ctx context.Context, code string) error {
	var out validateCodeResponse
	if err := c.post(ctx, "/v1/registro/validate-code", map[string]string{"codigo": code}, &out); err != nil {
		return err
	}
	if !out.Valid {
		if out.Message != "" {
			return fmt.Errorf("%w: %s", domain.ErrCodigoInvalido, out.Message)
		}
		return domain.ErrCodigoInvalido
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("llamar backend de checks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend de checks respondió %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}
