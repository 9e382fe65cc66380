// Command tokengen prints an uploader access token signed with the server's
// JWT secret. It is meant for development setups without an identity
// provider.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/server/auth"
)

func main() {
	userID := flag.String("user", "", "user id (required)")
	email := flag.String("email", "", "owner email")
	secret := flag.String("s", "secretKey", "JWT secret key of the server")
	ttl := flag.Duration("ttl", 24*time.Hour, "token validity")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	token, err := auth.GenerateToken(*userID, *email, []byte(*secret), *ttl)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(token)
}
