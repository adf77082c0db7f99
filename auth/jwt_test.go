package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AyaMohamed233/elreem/models"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{ID: "u1", Email: "u1@example.com", IsAdmin: true}
	tokenString, err := IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token failed to parse: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if claims["user_id"] != "u1" {
		t.Fatalf("user_id = %v, want u1", claims["user_id"])
	}
	if claims["email"] != "u1@example.com" {
		t.Fatalf("email = %v, want u1@example.com", claims["email"])
	}
	if claims["is_admin"] != true {
		t.Fatalf("is_admin = %v, want true", claims["is_admin"])
	}
}

func TestIssueTokenWrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := IssueToken(models.User{ID: "u1", Email: "u1@example.com"})
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil && token.Valid {
		t.Fatal("token signed with one secret must not validate with another")
	}
}
