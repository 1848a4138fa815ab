package auth

import (
	"testing"
	"time"

	"github.com/vporoshin/solace/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher()
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != bcrypt.DefaultCost {
		t.Fatalf("unexpected cost: %d", bcryptHasher.cost)
	}
}

func TestNewTokenStrategy_DefaultHMAC(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{SessionSecret: "top-secret"}})
	hmacStrategy, ok := strategy.(*HMACStrategy)
	if !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if string(hmacStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(hmacStrategy.secret))
	}
	if hmacStrategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", hmacStrategy.ttl)
	}
}

func TestNewTokenStrategy_ConfiguredTTL(t *testing.T) {
	cfg := &config.Config{SessionSecret: "top-secret", SessionTTL: 2 * time.Hour}
	strategy := newTokenStrategy(strategyParams{Config: cfg})
	hmacStrategy, ok := strategy.(*HMACStrategy)
	if !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if hmacStrategy.ttl != 2*time.Hour {
		t.Fatalf("unexpected ttl: %s", hmacStrategy.ttl)
	}
}

func TestNewTokenStrategy_JWT(t *testing.T) {
	cfg := &config.Config{SessionSecret: "top-secret", TokenStrategy: config.TokenStrategyJWT}
	strategy := newTokenStrategy(strategyParams{Config: cfg})
	jwtStrategy, ok := strategy.(*JWTStrategy)
	if !ok {
		t.Fatalf("expected *JWTStrategy, got %T", strategy)
	}
	if string(jwtStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(jwtStrategy.secret))
	}
}
