// Command token mints a signed bearer token for a caller id and role.
// It is used to bootstrap the first admin and for local testing; issuing
// tokens to end users is the identity provider's job.
//
// Usage:
//
//	token --sub=user-123 --role=user [--ttl=1h]
//
// The signing secret and issuer come from the server configuration.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/todo-backend/internal/auth"
	"github.com/heartmarshall/todo-backend/internal/config"
	"github.com/heartmarshall/todo-backend/internal/rbac"
)

func main() {
	sub := flag.String("sub", "", "caller id placed in the token subject")
	role := flag.String("role", rbac.RoleUser, "role claim")
	ttl := flag.Duration("ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	flag.Parse()

	if *sub == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --sub=user-123 [--role=user] [--ttl=1h]")
		os.Exit(2)
	}

	table := rbac.DefaultTable()
	if !table.HasRole(*role) {
		log.Fatalf("unknown role %q (known: %s)", *role, strings.Join(table.Roles(), ", "))
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	tok, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).Issue(*sub, *role)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(tok)
	fmt.Fprintf(os.Stderr, "expires in %s\n", lifetime.Round(time.Second))
}
