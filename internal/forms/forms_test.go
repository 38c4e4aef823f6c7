package forms

import (
	"strings"
	"testing"
	"time"
)

func TestStrongPassword(t *testing.T) {
	v := New()
	cases := []struct {
		name     string
		password string
		ok       bool
	}{
		{"valid", "Idontknow123$", true},
		{"too short", "Short1$aB", false},
		{"no uppercase", "idontknow123$", false},
		{"no lowercase", "IDONTKNOW123$", false},
		{"no digit", "Idontknowabc$", false},
		{"no symbol", "Idontknow1234", false},
		{"long enough but only letters", "abcdefghijklmnop", false},
		{"multibyte runes below minimum", "ÉÉÉÉé1!a", false},
		{"multibyte runes at minimum", "Éléphants123!", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := RegisterForm{
				FirstName: "Sam",
				LastName:  "Porter",
				Email:     "sam@example.com",
				Password:  tc.password,
			}
			errs := Check(v, form)
			if tc.ok && errs.Any() {
				t.Fatalf("expected no errors, got %v", errs)
			}
			if !tc.ok && !errs.Any() {
				t.Fatalf("expected password rejection for %q", tc.password)
			}
		})
	}
}

func TestCheck_ErrorsInDeclarationOrder(t *testing.T) {
	v := New()
	form := RegisterForm{
		FirstName: "",
		LastName:  "x",
		Email:     "not-an-email",
		Password:  "weak",
	}

	errs := Check(v, form)
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d: %v", len(errs), errs)
	}

	wantFields := []string{"firstname", "lastname", "email", "password"}
	for i, want := range wantFields {
		if errs[i].Field != want {
			t.Fatalf("error %d: expected field %q, got %q", i, want, errs[i].Field)
		}
	}
}

func TestCheck_Messages(t *testing.T) {
	v := New()
	form := RegisterForm{LastName: "Porter", Email: "sam@example.com", Password: "Idontknow123$"}

	errs := Check(v, form)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Message != "First name is required." {
		t.Fatalf("unexpected message: %q", errs[0].Message)
	}

	msgs := errs.Messages()
	if len(msgs) != 1 || msgs[0] != errs[0].Message {
		t.Fatalf("Messages mismatch: %v", msgs)
	}
}

func TestModelYear(t *testing.T) {
	v := New()
	nextYear := time.Now().Year() + 1

	base := InventoryForm{
		ClassificationID: 1,
		Make:             "Ford",
		Model:            "Escape",
		Description:      "Compact SUV",
		Image:            "/images/vehicles/escape.jpg",
		Thumbnail:        "/images/vehicles/escape-tn.jpg",
		Price:            21000,
		Miles:            12000,
		Color:            "Blue",
	}

	cases := []struct {
		name string
		year int
		ok   bool
	}{
		{"current", time.Now().Year(), true},
		{"next model year", nextYear, true},
		{"oldest allowed", 1900, true},
		{"too old", 1899, false},
		{"too far out", nextYear + 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := base
			form.Year = tc.year
			errs := Check(v, form)
			if tc.ok && errs.Any() {
				t.Fatalf("expected year %d to pass, got %v", tc.year, errs)
			}
			if !tc.ok && !errs.Any() {
				t.Fatalf("expected year %d to fail", tc.year)
			}
		})
	}
}

func TestClassificationForm_Alphanum(t *testing.T) {
	v := New()

	if errs := Check(v, ClassificationForm{Name: "SUV"}); errs.Any() {
		t.Fatalf("expected SUV to pass, got %v", errs)
	}

	errs := Check(v, ClassificationForm{Name: "Sport Utility"})
	if !errs.Any() {
		t.Fatal("expected name with a space to fail")
	}
	if errs[0].Message != "Classification name must contain only letters and numbers." {
		t.Fatalf("unexpected message: %q", errs[0].Message)
	}
}

func TestReviewForm_Bounds(t *testing.T) {
	v := New()

	if errs := Check(v, ReviewForm{VehicleID: 3, Rating: 5, Comment: "Great car"}); errs.Any() {
		t.Fatalf("expected valid review, got %v", errs)
	}
	if errs := Check(v, ReviewForm{VehicleID: 3, Rating: 6, Comment: "x"}); !errs.Any() {
		t.Fatal("expected rating 6 to fail")
	}
	if errs := Check(v, ReviewForm{VehicleID: 3, Rating: 4, Comment: strings.Repeat("a", 501)}); !errs.Any() {
		t.Fatal("expected over-long comment to fail")
	}
}

func TestRegisterForm_Trim(t *testing.T) {
	form := RegisterForm{
		FirstName: "  Sam ",
		LastName:  " Porter ",
		Email:     " sam@example.com ",
		Password:  " Idontknow123$ ",
	}
	form.Trim()
	if form.FirstName != "Sam" || form.LastName != "Porter" ||
		form.Email != "sam@example.com" || form.Password != "Idontknow123$" {
		t.Fatalf("trim left whitespace: %+v", form)
	}
}
