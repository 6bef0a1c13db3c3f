package school

import (
	"errors"
	"testing"
)

func validSchool() School {
	return School{
		ID:            "school-001",
		AccountID:     "acct-001",
		Name:          "Hilltop College",
		OfficeContact: "0700000000",
		Region:        "Central",
		District:      "Kampala",
		AdminName:     "Jane Okello",
		Status:        StatusUnderReview,
	}
}

func TestValidate(t *testing.T) {
	s := validSchool()
	if err := s.Validate(); err != nil {
		t.Fatalf("valid school rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*School)
		want   error
	}{
		{"empty name", func(s *School) { s.Name = "" }, ErrEmptyName},
		{"empty contact", func(s *School) { s.OfficeContact = " " }, ErrEmptyContact},
		{"empty region", func(s *School) { s.Region = "" }, ErrEmptyRegion},
		{"empty district", func(s *School) { s.District = "" }, ErrEmptyDistrict},
		{"no owner", func(s *School) { s.AccountID = "" }, ErrEmptyAccountID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSchool()
			tc.mutate(&s)
			if err := s.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestOwnedBy(t *testing.T) {
	s := validSchool()
	if !s.OwnedBy("acct-001") {
		t.Error("owner not recognized")
	}
	if s.OwnedBy("acct-002") {
		t.Error("non-owner accepted")
	}
	if s.OwnedBy("") {
		t.Error("empty account id accepted")
	}
}
