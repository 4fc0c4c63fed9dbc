package entity

import "testing"

func TestUserFullName(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		want      string
	}{
		{
			name:      "both names",
			firstName: "Ada",
			lastName:  "Lovelace",
			email:     "ada@example.com",
			want:      "Ada Lovelace",
		},
		{
			name:      "first name only",
			firstName: "Ada",
			email:     "ada@example.com",
			want:      "Ada",
		},
		{
			name:     "last name only",
			lastName: "Lovelace",
			email:    "ada@example.com",
			want:     "Lovelace",
		},
		{
			name:  "no names falls back to email",
			email: "ada@example.com",
			want:  "ada@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{Email: tt.email, FirstName: tt.firstName, LastName: tt.lastName}
			if got := u.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserHasCompleteProfile(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		want      bool
	}{
		{"both names", "Ada", "Lovelace", true},
		{"first only", "Ada", "", false},
		{"last only", "", "Lovelace", false},
		{"neither", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{FirstName: tt.firstName, LastName: tt.lastName}
			if got := u.HasCompleteProfile(); got != tt.want {
				t.Errorf("HasCompleteProfile() = %v, want %v", got, tt.want)
			}
		})
	}
}
