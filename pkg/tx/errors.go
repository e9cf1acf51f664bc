package tx

import (
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUnavailable - база не отвечает: соединение не установлено или оборвалось.
var ErrUnavailable = errors.New("storage unavailable")

// IsConnectionError отличает недоступность базы от ошибок самого запроса.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return pgconn.Timeout(err) || pgconn.SafeToRetry(err)
}
