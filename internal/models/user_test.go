package models

import (
	"reflect"
	"testing"
)

func TestNewUser(t *testing.T) {
	type args struct {
		externalUserID string
		name           string
		email          string
		passwordHash   string
	}
	tests := []struct {
		name string
		args args
		want *User
	}{
		{
			name: "Create new user with all attributes",
			args: args{
				externalUserID: "ext-001",
				name:           "Thandi Nkosi",
				email:          "thandi@example.com",
				passwordHash:   "$2a$10$abcdefghijklmnopqrstuv",
			},
			want: &User{
				ID:             "", // ID is left empty for the database to populate
				ExternalUserID: "ext-001",
				Name:           "Thandi Nkosi",
				Email:          "thandi@example.com",
				PasswordHash:   "$2a$10$abcdefghijklmnopqrstuv",
			},
		},
		{
			name: "Create new user with empty attributes",
			args: args{},
			want: &User{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewUser(tt.args.externalUserID, tt.args.name, tt.args.email, tt.args.passwordHash)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewUser() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewCourse(t *testing.T) {
	got := NewCourse("Mathematics Grade 10")
	want := &Course{CourseName: "Mathematics Grade 10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NewCourse() = %v, want %v", got, want)
	}
}
