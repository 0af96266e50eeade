package services

import (
	"testing"

	"invenBack/internal/models"
)

func TestCanAccess(t *testing.T) {
	cases := []struct {
		name      string
		requester models.Claims
		ownerID   int
		want      bool
	}{
		{"owner", models.Claims{UserID: 1, Role: models.RoleUser}, 1, true},
		{"stranger", models.Claims{UserID: 1, Role: models.RoleUser}, 2, false},
		{"admin over own", models.Claims{UserID: 3, Role: models.RoleAdmin}, 3, true},
		{"admin over foreign", models.Claims{UserID: 3, Role: models.RoleAdmin}, 1, true},
		{"zero owner", models.Claims{UserID: 1, Role: models.RoleUser}, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanAccess(tc.requester, tc.ownerID)
			if got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}
