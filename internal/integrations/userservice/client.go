package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

// Client клиент для работы с UserService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProfile получает профиль пользователя по email
func (c *Client) GetProfile(ctx context.Context, email string) (*Profile, error) {
	reqURL := fmt.Sprintf("%s/internal/users/by-email/%s", c.baseURL, url.PathEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &profile, nil
}

// GetByEmail получает пользователя по email с graceful degradation
// При недоступности UserService возвращает ErrServiceDegraded, и сессия использует данные токена
func (c *Client) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	c.log.Info("Fetching profile for email=%s", email)

	profile, err := c.GetProfile(ctx, email)
	if err != nil {
		// Отсутствие пользователя - бизнес-ошибка, пробрасываем её дальше
		if errors.Is(err, ErrUserNotFound) {
			c.log.Info("No profile found for email=%s", email)
			return nil, err
		}

		c.log.Error("UserService unavailable, applying graceful degradation for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: email=%s, error=%v", ErrServiceDegraded, email, err)
	}

	user := profile.ToDomain()
	if !user.Role.IsValid() {
		c.log.Warn("Profile for email=%s has unknown role=%q", email, profile.Role)
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidResponse, profile.Role)
	}

	c.log.Info("Successfully fetched profile for email=%s, role=%s", email, user.Role)
	return user, nil
}
