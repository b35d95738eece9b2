package config

import (
	"fmt"
	"os"
	"strconv"
)

type ServerConfig struct {
	Port int
}

func GetServerConfig() (*ServerConfig, error) {
	port := 8080
	if raw := os.Getenv("PORT"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val <= 0 {
			return nil, fmt.Errorf("PORT must be a positive integer")
		}
		port = val
	}

	return &ServerConfig{
		Port: port,
	}, nil
}
