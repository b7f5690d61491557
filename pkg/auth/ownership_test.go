package auth

import (
	"errors"
	"testing"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name        string
		principalID string
		ownerID     string
		wantAllow   bool
	}{
		{"owner matches", "user_a", "user_a", true},
		{"different user", "user_b", "user_a", false},
		{"empty principal", "", "user_a", false},
		{"empty both", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.principalID, tc.ownerID)
			if tc.wantAllow && err != nil {
				t.Errorf("Authorize(%q, %q) = %v, want allow", tc.principalID, tc.ownerID, err)
			}
			if !tc.wantAllow && !errors.Is(err, ErrForbidden) {
				t.Errorf("Authorize(%q, %q) = %v, want ErrForbidden", tc.principalID, tc.ownerID, err)
			}
		})
	}
}
