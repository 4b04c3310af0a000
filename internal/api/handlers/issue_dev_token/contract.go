package issue_dev_token

import (
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

type TokenIssuer interface {
	Issue(user domain.User, ttl time.Duration) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
