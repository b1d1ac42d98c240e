package services

import "testing"

func TestNormalizeRowSkillSynonyms(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"yes", "YES"},
		{"YES", "YES"},
		{"نعم", "YES"},
		{"good", "YES"},
		{"جيدة", "YES"},
		{"no", "NO"},
		{"لا", "NO"},
		{"willing", "WILLING"},
		{"مستعدة", "WILLING"},
	}
	for _, tc := range cases {
		fields := NormalizeRow(map[string]string{
			"full_name": "Maria Santos",
			"cleaning":  tc.raw,
		})
		if fields.Cleaning == nil {
			t.Fatalf("cleaning %q: got nil, want %q", tc.raw, tc.want)
		}
		if *fields.Cleaning != tc.want {
			t.Fatalf("cleaning %q: got %q, want %q", tc.raw, *fields.Cleaning, tc.want)
		}
	}
}

func TestNormalizeRowUnknownEnumPassesThrough(t *testing.T) {
	fields := NormalizeRow(map[string]string{
		"full_name": "Maria Santos",
		"cleaning":  "excellent with supervision",
	})
	if fields.Cleaning == nil || *fields.Cleaning != "excellent with supervision" {
		t.Fatalf("got %v, want operator text preserved", fields.Cleaning)
	}
}

func TestNormalizeRowDates(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1995-04-12", "1995-04-12"},
		{"12/04/1995", "1995-04-12"},
		{"12-04-1995", "1995-04-12"},
		{"1995/04/12", "1995-04-12"},
	}
	for _, tc := range cases {
		fields := NormalizeRow(map[string]string{
			"full_name":     "Maria Santos",
			"date_of_birth": tc.raw,
		})
		if fields.DateOfBirth == nil {
			t.Fatalf("date %q: got nil, want %q", tc.raw, tc.want)
		}
		if *fields.DateOfBirth != tc.want {
			t.Fatalf("date %q: got %q, want %q", tc.raw, *fields.DateOfBirth, tc.want)
		}
	}
}

func TestNormalizeRowMalformedDateBecomesAbsent(t *testing.T) {
	fields := NormalizeRow(map[string]string{
		"full_name":     "Maria Santos",
		"date_of_birth": "not a date",
	})
	if fields.DateOfBirth != nil {
		t.Fatalf("got %q, want nil", *fields.DateOfBirth)
	}
}

func TestNormalizeRowIntegers(t *testing.T) {
	fields := NormalizeRow(map[string]string{
		"full_name":          "Maria Santos",
		"number_of_children": "3.0",
		"age":                "29",
	})
	if fields.NumberOfChildren == nil || *fields.NumberOfChildren != 3 {
		t.Fatalf("children: got %v, want 3", fields.NumberOfChildren)
	}
	if fields.Age == nil || *fields.Age != 29 {
		t.Fatalf("age: got %v, want 29", fields.Age)
	}

	fields = NormalizeRow(map[string]string{
		"full_name": "Maria Santos",
		"age":       "29.5",
	})
	if fields.Age != nil {
		t.Fatalf("fractional age: got %v, want nil", *fields.Age)
	}
}

func TestNormalizeRowEmptyCellsAreAbsent(t *testing.T) {
	fields := NormalizeRow(map[string]string{
		"full_name": "  Maria Santos  ",
		"email":     "   ",
		"phone":     "",
	})
	if fields.FullName != "Maria Santos" {
		t.Fatalf("full name: got %q", fields.FullName)
	}
	if fields.Email != nil {
		t.Fatalf("email: got %q, want nil", *fields.Email)
	}
	if fields.Phone != nil {
		t.Fatalf("phone: got %q, want nil", *fields.Phone)
	}
}

func TestNormalizeRowMaritalStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"married", "MARRIED"},
		{"متزوجة", "MARRIED"},
		{"Single", "SINGLE"},
		{"أرملة", "WIDOWED"},
	}
	for _, tc := range cases {
		fields := NormalizeRow(map[string]string{
			"full_name":      "Maria Santos",
			"marital_status": tc.raw,
		})
		if fields.MaritalStatus == nil || *fields.MaritalStatus != tc.want {
			t.Fatalf("marital %q: got %v, want %q", tc.raw, fields.MaritalStatus, tc.want)
		}
	}
}
