package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	DefaultProvider string
	DefaultModel    string
	GroqKey         string
	GroqBaseURL     string
	OpenAIKey       string
	OpenAIBaseURL   string
	ProxyTimeout    time.Duration
}

func FromEnv() Config {
	c := Config{}
	c.Port = getenv("PORT", "8080")
	c.DefaultProvider = getenv("DEFAULT_PROVIDER", "groq")
	c.DefaultModel = getenv("DEFAULT_MODEL", "llama-3.3-70b-versatile")
	c.GroqKey = os.Getenv("GROQ_API_KEY")
	c.GroqBaseURL = os.Getenv("GROQ_BASE_URL")
	c.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	c.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	c.ProxyTimeout = time.Duration(getenvInt("PROXY_TIMEOUT_SECONDS", 90)) * time.Second
	return c
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
