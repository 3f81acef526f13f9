package main

import (
	"flag"
	"fmt"
	"log"

	"cinesocial/pkg/config"
	"cinesocial/pkg/jwt"
)

// token issues an operator token for the admin API, signed with JWT_SECRET.
func main() {
	userID := flag.String("user", "", "operator user id")
	role := flag.String("role", "admin", "operator role (admin or moderator)")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}
	if *role != "admin" && *role != "moderator" {
		log.Fatalf("role %q cannot use the admin API", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	token, err := jwt.NewService(cfg.JWTSecret).GenerateToken(*userID, *role)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	fmt.Println(token)
}
