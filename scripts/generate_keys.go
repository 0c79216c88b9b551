//go:build ignore

// This script generates a JWT signing secret and an API key for the inventory optimizer.
// Run with: go run scripts/generate_keys.go [client]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func main() {
	client := "default"
	if len(os.Args) > 1 && os.Args[1] != "" {
		client = os.Args[1]
	}

	fmt.Println("=== Inventory Optimizer Key Generator ===")
	fmt.Println()

	// 32 bytes = 256 bits for HS256
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating JWT secret: %v\n", err)
		os.Exit(1)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API keys, comma separated, each as client:key")
	fmt.Printf("API_KEYS=%s:%s\n", client, apiKey)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment")
}
