package internal

import (
	"chat-observer/observer"
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	LogLevel          string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	NotifyPolicy      string `env:"NOTIFY_POLICY,default=fail-fast" validate:"oneof=fail-fast isolate"`
	WelcomeMessage    string `env:"WELCOME_MESSAGE,default=Welcome in this chat room" validate:"required"`
	ConcurrentSenders int    `env:"CONCURRENT_SENDERS,default=4" validate:"min=1,max=256"`
	MessagesPerSender int    `env:"MESSAGES_PER_SENDER,default=25" validate:"min=1,max=10000"`
	Colours           bool   `env:"COLOURS,default=true"`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c Config) Policy() (observer.Policy, error) {
	return observer.ParsePolicy(c.NotifyPolicy)
}
