// Package config loads runtime settings from a .env file and the
// process environment, with sensible local defaults.
package config

import (
	"bufio"
	"log"
	"os"
	"strings"
)

type Config struct {
	BackendURL string
	SocketURL  string
	RedisAddr  string
	RedisDB    int
}

// LoadEnv reads KEY=VALUE lines from the given file into the process
// environment. A missing file is not an error; the OS environment wins
// in that case.
func LoadEnv(filepath string) {
	file, err := os.Open(filepath)
	if err != nil {
		log.Println("No .env file found, using OS environment variables.")
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			os.Setenv(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Failed reading .env file: %v\n", err)
	}
}

func Load() Config {
	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:5000/api"
	}

	socketURL := os.Getenv("SOCKET_URL")
	if socketURL == "" {
		socketURL = "ws://localhost:5000/ws"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisHost := os.Getenv("REDIS_HOST")
		if redisHost == "" {
			redisHost = "localhost"
		}
		redisPort := os.Getenv("REDIS_PORT")
		if redisPort == "" {
			redisPort = "6379"
		}
		redisAddr = redisHost + ":" + redisPort
	}

	return Config{
		BackendURL: backendURL,
		SocketURL:  socketURL,
		RedisAddr:  redisAddr,
		RedisDB:    0,
	}
}
