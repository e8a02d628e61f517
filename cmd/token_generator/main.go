package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	mw "devcred-backend/internal/http/middleware"
)

// Mints a session JWT for local testing, the same shape the OAuth callback
// issues. Feed it to the devcred_session cookie.
func main() {
	var (
		secret  = flag.String("secret", os.Getenv("SESSION_SECRET"), "session signing secret")
		ghToken = flag.String("gh-token", "gho_local_dev", "GitHub access token to wrap")
		login   = flag.String("login", "octocat", "GitHub login to embed")
		ttl     = flag.Duration("ttl", 24*time.Hour, "token lifetime")
	)
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "secret is required (flag -secret or SESSION_SECRET)")
		os.Exit(1)
	}

	token, err := mw.NewSessionToken(*secret, *ghToken, *login, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to sign token:", err)
		os.Exit(1)
	}

	fmt.Println("SESSION_TOKEN=" + token)
}
