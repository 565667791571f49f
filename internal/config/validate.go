package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.AI.Model == "" {
		return fmt.Errorf("ai.model must not be empty")
	}
	if c.AI.MaxTokens <= 0 {
		return fmt.Errorf("ai.max_tokens must be > 0 (got %d)", c.AI.MaxTokens)
	}
	if c.AI.RequestTimeout <= 0 {
		return fmt.Errorf("ai.request_timeout must be > 0 (got %v)", c.AI.RequestTimeout)
	}

	if c.Chat.HistoryLimit <= 0 {
		return fmt.Errorf("chat.history_limit must be > 0 (got %d)", c.Chat.HistoryLimit)
	}
	if c.Chat.RecentInContext <= 0 {
		return fmt.Errorf("chat.recent_in_context must be > 0 (got %d)", c.Chat.RecentInContext)
	}
	if c.Chat.RecentInContext > c.Chat.HistoryLimit {
		return fmt.Errorf("chat.recent_in_context (%d) must not exceed chat.history_limit (%d)",
			c.Chat.RecentInContext, c.Chat.HistoryLimit)
	}

	return nil
}
