package shared

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultProxyHeader = fiber.HeaderXForwardedFor

// ProxyConfig makes fiber honor header for the client address only when the
// socket peer is one of trusted (IPs or CIDRs). With no trusted proxies the
// header is always ignored.
func ProxyConfig(cfg fiber.Config, header string, trusted []string) fiber.Config {
	if header == "" {
		header = DefaultProxyHeader
	}
	cfg.ProxyHeader = header
	cfg.EnableTrustedProxyCheck = true
	cfg.TrustedProxies = trusted
	cfg.EnableIPValidation = true
	return cfg
}

// ParseTrustedProxies splits a comma separated TRUSTED_PROXIES value.
func ParseTrustedProxies(raw string) []string {
	var proxies []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}
	return proxies
}

// ClientIP resolves the caller address through fiber's trusted proxy check,
// falling back to the socket peer when a trusted proxy sent no usable header.
func ClientIP(c *fiber.Ctx) string {
	if ip := c.IP(); ip != "" {
		return ip
	}
	return c.Context().RemoteIP().String()
}

// LocalUserID returns the user id bound by the auth middleware, if any.
func LocalUserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals(UserID).(string); ok {
		return userID
	}
	return ""
}
